package repository

import (
	"context"
	"time"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

type SavedItemRepository interface {
	Create(ctx context.Context, obj *models.SavedItem) error
	GetByID(ctx context.Context, id int64, dest *models.SavedItem) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.SavedItem, error)
}

type savedItemRepository struct {
	baseRepository[models.SavedItem, *models.SavedItem]
	now func() time.Time
}

func NewSavedItemRepository() SavedItemRepository {
	return &savedItemRepository{
		baseRepository: newBaseRepository[models.SavedItem, *models.SavedItem]("Saved item"),
		now:            time.Now,
	}
}

// Create refuses bookmarks that target neither or both of a gig and a user.
func (r *savedItemRepository) Create(ctx context.Context, obj *models.SavedItem) error {
	if err := obj.Validate(); err != nil {
		return appErr.Wrap(err, appErr.CodeInvalid, err.Error())
	}
	obj.CreatedAt = r.now().UTC()
	return r.t.insert(obj, nil)
}

func (r *savedItemRepository) Delete(ctx context.Context, id int64) error {
	return r.t.remove(id)
}

func (r *savedItemRepository) ListByUser(ctx context.Context, userID int64) ([]models.SavedItem, error) {
	return r.t.filter(func(s *models.SavedItem) bool { return s.UserID == userID }), nil
}
