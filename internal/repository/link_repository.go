package repository

import (
	"context"
	"sync"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

// link is one row of a many-to-many index between an owner (user or gig) and
// a skill.
type link struct {
	id    int64
	owner int64
	skill int64
}

// linkTable is a flat collection of links scanned linearly. Add checks for a
// duplicate pair and inserts under one lock, so two concurrent adds of the
// same pair cannot both succeed.
type linkTable struct {
	mu   sync.RWMutex
	next int64
	rows []link
}

func newLinkTable() *linkTable {
	return &linkTable{next: 1}
}

func (t *linkTable) add(owner, skill int64) (link, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, l := range t.rows {
		if l.owner == owner && l.skill == skill {
			return l, false
		}
	}
	l := link{id: t.next, owner: owner, skill: skill}
	t.next++
	t.rows = append(t.rows, l)
	return l, true
}

func (t *linkTable) remove(owner, skill int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, l := range t.rows {
		if l.owner == owner && l.skill == skill {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

func (t *linkTable) scan(match func(link) bool) []link {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]link, 0)
	for _, l := range t.rows {
		if match(l) {
			out = append(out, l)
		}
	}
	return out
}

func (t *linkTable) byOwner(owner int64) []link {
	return t.scan(func(l link) bool { return l.owner == owner })
}

func (t *linkTable) bySkill(skill int64) []link {
	return t.scan(func(l link) bool { return l.skill == skill })
}

// UserSkillRepository indexes which skills a user has.
type UserSkillRepository interface {
	Add(ctx context.Context, userID, skillID int64) (*models.UserSkill, error)
	Remove(ctx context.Context, userID, skillID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]models.UserSkill, error)
	ListBySkill(ctx context.Context, skillID int64) ([]models.UserSkill, error)
}

type userSkillRepository struct {
	t *linkTable
}

func NewUserSkillRepository() UserSkillRepository {
	return &userSkillRepository{t: newLinkTable()}
}

func toUserSkills(links []link) []models.UserSkill {
	out := make([]models.UserSkill, 0, len(links))
	for _, l := range links {
		out = append(out, models.UserSkill{ID: l.id, UserID: l.owner, SkillID: l.skill})
	}
	return out
}

// Add returns an already_exists error carrying the existing link id when the
// pair is present.
func (r *userSkillRepository) Add(ctx context.Context, userID, skillID int64) (*models.UserSkill, error) {
	l, inserted := r.t.add(userID, skillID)
	if !inserted {
		return nil, appErr.New(appErr.CodeAlreadyExists, "user skill already exists").WithMeta("user_skill_id", l.id)
	}
	return &models.UserSkill{ID: l.id, UserID: l.owner, SkillID: l.skill}, nil
}

func (r *userSkillRepository) Remove(ctx context.Context, userID, skillID int64) (bool, error) {
	return r.t.remove(userID, skillID), nil
}

func (r *userSkillRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserSkill, error) {
	return toUserSkills(r.t.byOwner(userID)), nil
}

func (r *userSkillRepository) ListBySkill(ctx context.Context, skillID int64) ([]models.UserSkill, error) {
	return toUserSkills(r.t.bySkill(skillID)), nil
}

// GigSkillRepository indexes which skills a gig asks for.
type GigSkillRepository interface {
	Add(ctx context.Context, gigID, skillID int64) (*models.GigSkill, error)
	Remove(ctx context.Context, gigID, skillID int64) (bool, error)
	ListByGig(ctx context.Context, gigID int64) ([]models.GigSkill, error)
	ListBySkill(ctx context.Context, skillID int64) ([]models.GigSkill, error)
}

type gigSkillRepository struct {
	t *linkTable
}

func NewGigSkillRepository() GigSkillRepository {
	return &gigSkillRepository{t: newLinkTable()}
}

func toGigSkills(links []link) []models.GigSkill {
	out := make([]models.GigSkill, 0, len(links))
	for _, l := range links {
		out = append(out, models.GigSkill{ID: l.id, GigID: l.owner, SkillID: l.skill})
	}
	return out
}

func (r *gigSkillRepository) Add(ctx context.Context, gigID, skillID int64) (*models.GigSkill, error) {
	l, inserted := r.t.add(gigID, skillID)
	if !inserted {
		return nil, appErr.New(appErr.CodeAlreadyExists, "gig skill already exists").WithMeta("gig_skill_id", l.id)
	}
	return &models.GigSkill{ID: l.id, GigID: l.owner, SkillID: l.skill}, nil
}

func (r *gigSkillRepository) Remove(ctx context.Context, gigID, skillID int64) (bool, error) {
	return r.t.remove(gigID, skillID), nil
}

func (r *gigSkillRepository) ListByGig(ctx context.Context, gigID int64) ([]models.GigSkill, error) {
	return toGigSkills(r.t.byOwner(gigID)), nil
}

func (r *gigSkillRepository) ListBySkill(ctx context.Context, skillID int64) ([]models.GigSkill, error) {
	return toGigSkills(r.t.bySkill(skillID)), nil
}
