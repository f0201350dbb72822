package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/repository"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
	"github.com/oceanofgigs/engine/pkg/logger"
)

type SkillService interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, name string) (*models.Skill, error)
}

type skillService struct {
	skills repository.SkillRepository
}

func NewSkillService(skills repository.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

var _ SkillService = (*skillService)(nil)

func (s *skillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skills.List(ctx)
}

func (s *skillService) CreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name is required")
	}

	sk := &models.Skill{Name: name}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, err
	}

	logger.L().Info("skill created", zap.Int64("skill_id", sk.ID), zap.String("name", sk.Name))
	return sk, nil
}
