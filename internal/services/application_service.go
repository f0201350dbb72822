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

type ApplicationService interface {
	Apply(ctx context.Context, input *ApplyInput) (*models.Application, error)
	GetApplication(ctx context.Context, applicationID int64) (*models.Application, error)
	ListByGig(ctx context.Context, gigID int64) ([]models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error)
	UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.Application, error)
}

type ApplyInput struct {
	GigID       int64
	StudentID   int64
	Status      models.ApplicationStatus
	CoverLetter *string
}

type applicationService struct {
	users        repository.UserRepository
	gigs         repository.GigRepository
	applications repository.ApplicationRepository
	bus          EventBus.BusPublisher
}

func NewApplicationService(store *repository.Store, bus EventBus.BusPublisher) ApplicationService {
	return &applicationService{
		users:        store.Users(),
		gigs:         store.Gigs(),
		applications: store.Applications(),
		bus:          bus,
	}
}

var _ ApplicationService = (*applicationService)(nil)

// Apply records a student's application. The gig and student must exist, the
// applicant must be a student, and a second application for the same gig is
// rejected by the store.
func (s *applicationService) Apply(ctx context.Context, input *ApplyInput) (*models.Application, error) {
	logger.L().Info("apply called", zap.Int64("gig_id", input.GigID), zap.Int64("student_id", input.StudentID))

	if input.Status != "" && !input.Status.Valid() {
		return nil, appErr.Newf(appErr.CodeInvalid, "unknown application status %q", input.Status)
	}

	var g models.Gig
	if err := s.gigs.GetByID(ctx, input.GigID, &g); err != nil {
		return nil, err
	}

	var student models.User
	if err := s.users.GetByID(ctx, input.StudentID, &student); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.Wrap(err, appErr.CodeNotFound, "Student not found")
		}
		return nil, err
	}
	if student.Role != models.RoleStudent {
		return nil, appErr.New(appErr.CodeForbidden, "Only students can apply to gigs")
	}

	a := &models.Application{
		GigID:       input.GigID,
		StudentID:   input.StudentID,
		Status:      input.Status,
		CoverLetter: input.CoverLetter,
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicApplicationSubmitted, events.ApplicationSubmitted{
		ApplicationID: a.ID,
		GigID:         a.GigID,
		StudentID:     a.StudentID,
		At:            a.CreatedAt,
	})
	logger.L().Info("application created", zap.Int64("application_id", a.ID))
	return a, nil
}

func (s *applicationService) GetApplication(ctx context.Context, applicationID int64) (*models.Application, error) {
	var a models.Application
	if err := s.applications.GetByID(ctx, applicationID, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *applicationService) ListByGig(ctx context.Context, gigID int64) ([]models.Application, error) {
	return s.applications.ListByGig(ctx, gigID)
}

func (s *applicationService) ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	return s.applications.ListByStudent(ctx, studentID)
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) (*models.Application, error) {
	logger.L().Info("update application status", zap.Int64("application_id", applicationID), zap.String("status", string(status)))

	if !status.Valid() {
		return nil, appErr.Newf(appErr.CodeInvalid, "unknown application status %q", status)
	}

	var a models.Application
	if err := s.applications.UpdateStatus(ctx, applicationID, status, &a); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicApplicationStatusChanged, events.ApplicationStatusChanged{ApplicationID: a.ID, Status: string(a.Status)})
	return &a, nil
}
