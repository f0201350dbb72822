package repository

import (
	"context"
	"time"

	"github.com/oceanofgigs/engine/internal/models"
)

type GigRepository interface {
	BaseRepository[models.Gig]
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.Gig, error)
}

type gigRepository struct {
	baseRepository[models.Gig, *models.Gig]
	now func() time.Time
}

func NewGigRepository() GigRepository {
	return &gigRepository{baseRepository: newBaseRepository[models.Gig, *models.Gig]("Gig"), now: time.Now}
}

// Create stamps CreatedAt; callers cannot choose it.
func (r *gigRepository) Create(ctx context.Context, obj *models.Gig) error {
	obj.CreatedAt = r.now().UTC()
	return r.t.insert(obj, nil)
}

func (r *gigRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.Gig, error) {
	return r.t.filter(func(g *models.Gig) bool { return g.RecruiterID == recruiterID }), nil
}
