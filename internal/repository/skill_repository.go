package repository

import (
	"context"
	"strings"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

type SkillRepository interface {
	BaseRepository[models.Skill]
	GetByName(ctx context.Context, name string, dest *models.Skill) error
}

type skillRepository struct {
	baseRepository[models.Skill, *models.Skill]
}

func NewSkillRepository() SkillRepository {
	return &skillRepository{baseRepository: newBaseRepository[models.Skill, *models.Skill]("Skill")}
}

// Create rejects a name already present, compared case-insensitively.
func (r *skillRepository) Create(ctx context.Context, obj *models.Skill) error {
	return r.t.insert(obj, func(candidate, existing *models.Skill) error {
		if strings.EqualFold(candidate.Name, existing.Name) {
			return appErr.New(appErr.CodeConflict, "Skill already exists").WithMeta("skill_id", existing.ID)
		}
		return nil
	})
}

func (r *skillRepository) GetByName(ctx context.Context, name string, dest *models.Skill) error {
	found := r.t.filter(func(s *models.Skill) bool { return strings.EqualFold(s.Name, name) })
	if len(found) == 0 {
		return appErr.New(appErr.CodeNotFound, "Skill not found")
	}
	*dest = found[0]
	return nil
}
