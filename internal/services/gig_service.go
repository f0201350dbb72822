package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/events"
	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/repository"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
	"github.com/oceanofgigs/engine/pkg/logger"
)

type GigService interface {
	CreateGig(ctx context.Context, input *CreateGigInput) (*models.Gig, error)
	GetGig(ctx context.Context, gigID int64) (*models.GigWithSkills, error)
	ListGigs(ctx context.Context, skillIDs []int64) ([]models.GigWithSkills, error)
	ListGigsByRecruiter(ctx context.Context, recruiterID int64) ([]models.Gig, error)

	// Skills
	AddSkill(ctx context.Context, gigID, skillID int64) (*models.GigSkill, error)
	RemoveSkill(ctx context.Context, gigID, skillID int64) error
}

type CreateGigInput struct {
	Title          string
	Description    string
	MinPrice       int
	MaxPrice       *int
	IsPriceHourly  bool
	EstimatedHours *string
	RecruiterID    int64
	CompanyName    string
}

type gigService struct {
	users     repository.UserRepository
	skills    repository.SkillRepository
	gigs      repository.GigRepository
	gigSkills repository.GigSkillRepository
	catalog   *Catalog
	bus       EventBus.BusPublisher
}

func NewGigService(store *repository.Store, catalog *Catalog, bus EventBus.BusPublisher) GigService {
	return &gigService{
		users:     store.Users(),
		skills:    store.Skills(),
		gigs:      store.Gigs(),
		gigSkills: store.GigSkills(),
		catalog:   catalog,
		bus:       bus,
	}
}

var _ GigService = (*gigService)(nil)

// CreateGig posts a gig on behalf of a recruiter. The poster must exist and
// carry the recruiter role.
func (s *gigService) CreateGig(ctx context.Context, input *CreateGigInput) (*models.Gig, error) {
	logger.L().Info("create gig called", zap.Int64("recruiter_id", input.RecruiterID), zap.String("title", input.Title))

	if input.MaxPrice != nil && *input.MaxPrice < input.MinPrice {
		return nil, appErr.New(appErr.CodeInvalid, "maxPrice must be greater than or equal to minPrice")
	}

	var recruiter models.User
	if err := s.users.GetByID(ctx, input.RecruiterID, &recruiter); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.Wrap(err, appErr.CodeNotFound, "Recruiter not found")
		}
		return nil, err
	}
	if recruiter.Role != models.RoleRecruiter {
		return nil, appErr.New(appErr.CodeForbidden, "Only recruiters can post gigs")
	}

	g := &models.Gig{
		Title:          input.Title,
		Description:    input.Description,
		MinPrice:       input.MinPrice,
		MaxPrice:       input.MaxPrice,
		IsPriceHourly:  input.IsPriceHourly,
		EstimatedHours: input.EstimatedHours,
		RecruiterID:    input.RecruiterID,
		CompanyName:    input.CompanyName,
	}
	if err := s.gigs.Create(ctx, g); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicGigPosted, events.GigPosted{GigID: g.ID, RecruiterID: g.RecruiterID, At: g.CreatedAt})
	logger.L().Info("gig created", zap.Int64("gig_id", g.ID), zap.Int64("recruiter_id", g.RecruiterID))
	return g, nil
}

func (s *gigService) GetGig(ctx context.Context, gigID int64) (*models.GigWithSkills, error) {
	var g models.Gig
	if err := s.gigs.GetByID(ctx, gigID, &g); err != nil {
		return nil, err
	}
	return s.catalog.GigWithSkills(ctx, g)
}

func (s *gigService) ListGigs(ctx context.Context, skillIDs []int64) ([]models.GigWithSkills, error) {
	return s.catalog.GigsBySkills(ctx, skillIDs)
}

func (s *gigService) ListGigsByRecruiter(ctx context.Context, recruiterID int64) ([]models.Gig, error) {
	return s.gigs.ListByRecruiter(ctx, recruiterID)
}

func (s *gigService) AddSkill(ctx context.Context, gigID, skillID int64) (*models.GigSkill, error) {
	logger.L().Info("add gig skill", zap.Int64("gig_id", gigID), zap.Int64("skill_id", skillID))

	var g models.Gig
	if err := s.gigs.GetByID(ctx, gigID, &g); err != nil {
		return nil, err
	}
	var sk models.Skill
	if err := s.skills.GetByID(ctx, skillID, &sk); err != nil {
		return nil, err
	}

	link, err := s.gigSkills.Add(ctx, gigID, skillID)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return nil, appErr.Wrap(err, appErr.CodeConflict, "Gig already has this skill")
		}
		return nil, err
	}
	return link, nil
}

func (s *gigService) RemoveSkill(ctx context.Context, gigID, skillID int64) error {
	logger.L().Info("remove gig skill", zap.Int64("gig_id", gigID), zap.Int64("skill_id", skillID))

	removed, err := s.gigSkills.Remove(ctx, gigID, skillID)
	if err != nil {
		return err
	}
	if !removed {
		return appErr.New(appErr.CodeNotFound, "Gig skill not found")
	}
	return nil
}
