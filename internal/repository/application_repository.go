package repository

import (
	"context"
	"time"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

type ApplicationRepository interface {
	BaseRepository[models.Application]
	ListByGig(ctx context.Context, gigID int64) ([]models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, dest *models.Application) error
}

type applicationRepository struct {
	baseRepository[models.Application, *models.Application]
	now func() time.Time
}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{
		baseRepository: newBaseRepository[models.Application, *models.Application]("Application"),
		now:            time.Now,
	}
}

// Create allows one application per (gig, student) pair. An empty status
// becomes pending.
func (r *applicationRepository) Create(ctx context.Context, obj *models.Application) error {
	if obj.Status == "" {
		obj.Status = models.ApplicationPending
	}
	obj.CreatedAt = r.now().UTC()
	return r.t.insert(obj, func(candidate, existing *models.Application) error {
		if candidate.GigID == existing.GigID && candidate.StudentID == existing.StudentID {
			return appErr.New(appErr.CodeConflict, "Student already applied to this gig").WithMeta("application_id", existing.ID)
		}
		return nil
	})
}

func (r *applicationRepository) ListByGig(ctx context.Context, gigID int64) ([]models.Application, error) {
	return r.t.filter(func(a *models.Application) bool { return a.GigID == gigID }), nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	return r.t.filter(func(a *models.Application) bool { return a.StudentID == studentID }), nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, dest *models.Application) error {
	return r.t.update(id, func(a *models.Application) error {
		a.Status = status
		return nil
	}, nil, dest)
}
