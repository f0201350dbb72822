package services

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/repository"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

// Catalog assembles read models from the entity store and the skill indexes.
// Nothing it returns is cached.
type Catalog struct {
	users      repository.UserRepository
	skills     repository.SkillRepository
	gigs       repository.GigRepository
	userSkills repository.UserSkillRepository
	gigSkills  repository.GigSkillRepository
}

func NewCatalog(store *repository.Store) *Catalog {
	return &Catalog{
		users:      store.Users(),
		skills:     store.Skills(),
		gigs:       store.Gigs(),
		userSkills: store.UserSkills(),
		gigSkills:  store.GigSkills(),
	}
}

// resolveSkills maps skill ids to skills in the given order. Ids with no
// stored skill are dropped.
func (c *Catalog) resolveSkills(ctx context.Context, ids []int64) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(ids))
	for _, id := range ids {
		var s models.Skill
		if err := c.skills.GetByID(ctx, id, &s); err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Catalog) UserWithSkills(ctx context.Context, u models.User) (*models.UserWithSkills, error) {
	links, err := c.userSkills.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	skills, err := c.resolveSkills(ctx, lo.Map(links, func(l models.UserSkill, _ int) int64 { return l.SkillID }))
	if err != nil {
		return nil, err
	}
	return &models.UserWithSkills{User: u, Skills: skills}, nil
}

func (c *Catalog) GigWithSkills(ctx context.Context, g models.Gig) (*models.GigWithSkills, error) {
	links, err := c.gigSkills.ListByGig(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	skills, err := c.resolveSkills(ctx, lo.Map(links, func(l models.GigSkill, _ int) int64 { return l.SkillID }))
	if err != nil {
		return nil, err
	}
	return &models.GigWithSkills{Gig: g, Skills: skills}, nil
}

func (c *Catalog) decorateGigs(ctx context.Context, gigs []models.Gig) ([]models.GigWithSkills, error) {
	out := make([]models.GigWithSkills, 0, len(gigs))
	for _, g := range gigs {
		gw, err := c.GigWithSkills(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, *gw)
	}
	return out, nil
}

func (c *Catalog) decorateUsers(ctx context.Context, users []models.User) ([]models.UserWithSkills, error) {
	out := make([]models.UserWithSkills, 0, len(users))
	for _, u := range users {
		uw, err := c.UserWithSkills(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, *uw)
	}
	return out, nil
}

func (c *Catalog) AllGigsWithSkills(ctx context.Context) ([]models.GigWithSkills, error) {
	gigs, err := c.gigs.List(ctx)
	if err != nil {
		return nil, err
	}
	return c.decorateGigs(ctx, gigs)
}

// GigsBySkills returns every gig tagged with at least one of skillIDs, in id
// order. An empty skillIDs applies no filter.
func (c *Catalog) GigsBySkills(ctx context.Context, skillIDs []int64) ([]models.GigWithSkills, error) {
	if len(skillIDs) == 0 {
		return c.AllGigsWithSkills(ctx)
	}

	var gigIDs []int64
	for _, sid := range lo.Uniq(skillIDs) {
		links, err := c.gigSkills.ListBySkill(ctx, sid)
		if err != nil {
			return nil, err
		}
		gigIDs = append(gigIDs, lo.Map(links, func(l models.GigSkill, _ int) int64 { return l.GigID })...)
	}
	gigIDs = lo.Uniq(gigIDs)
	slices.Sort(gigIDs)

	gigs := make([]models.Gig, 0, len(gigIDs))
	for _, id := range gigIDs {
		var g models.Gig
		if err := c.gigs.GetByID(ctx, id, &g); err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				continue
			}
			return nil, err
		}
		gigs = append(gigs, g)
	}
	return c.decorateGigs(ctx, gigs)
}

func (c *Catalog) UsersWithSkillsByRole(ctx context.Context, role models.Role) ([]models.UserWithSkills, error) {
	users, err := c.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return c.decorateUsers(ctx, users)
}

// UsersBySkills returns users of the given role having at least one of
// skillIDs, in id order. An empty skillIDs filters by role only.
func (c *Catalog) UsersBySkills(ctx context.Context, skillIDs []int64, role models.Role) ([]models.UserWithSkills, error) {
	if len(skillIDs) == 0 {
		return c.UsersWithSkillsByRole(ctx, role)
	}

	var userIDs []int64
	for _, sid := range lo.Uniq(skillIDs) {
		links, err := c.userSkills.ListBySkill(ctx, sid)
		if err != nil {
			return nil, err
		}
		userIDs = append(userIDs, lo.Map(links, func(l models.UserSkill, _ int) int64 { return l.UserID })...)
	}
	userIDs = lo.Uniq(userIDs)
	slices.Sort(userIDs)

	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		var u models.User
		if err := c.users.GetByID(ctx, id, &u); err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				continue
			}
			return nil, err
		}
		if u.Role == role {
			users = append(users, u)
		}
	}
	return c.decorateUsers(ctx, users)
}
