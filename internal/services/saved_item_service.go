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

type SavedItemService interface {
	Save(ctx context.Context, input *SaveItemInput) (*models.SavedItem, error)
	ListByUser(ctx context.Context, userID int64) ([]models.SavedItem, error)
	Remove(ctx context.Context, savedItemID int64) error
}

// SaveItemInput bookmarks either a gig or another user; exactly one of GigID
// and SavedUserID must be set.
type SaveItemInput struct {
	UserID      int64
	GigID       *int64
	SavedUserID *int64
}

type savedItemService struct {
	users      repository.UserRepository
	gigs       repository.GigRepository
	savedItems repository.SavedItemRepository
	bus        EventBus.BusPublisher
}

func NewSavedItemService(store *repository.Store, bus EventBus.BusPublisher) SavedItemService {
	return &savedItemService{
		users:      store.Users(),
		gigs:       store.Gigs(),
		savedItems: store.SavedItems(),
		bus:        bus,
	}
}

var _ SavedItemService = (*savedItemService)(nil)

func (s *savedItemService) Save(ctx context.Context, input *SaveItemInput) (*models.SavedItem, error) {
	logger.L().Info("save item called", zap.Int64("user_id", input.UserID))

	item := &models.SavedItem{UserID: input.UserID, GigID: input.GigID, SavedUserID: input.SavedUserID}
	if err := item.Validate(); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, err.Error())
	}

	var owner models.User
	if err := s.users.GetByID(ctx, input.UserID, &owner); err != nil {
		return nil, err
	}
	if input.GigID != nil {
		var g models.Gig
		if err := s.gigs.GetByID(ctx, *input.GigID, &g); err != nil {
			return nil, err
		}
	}
	if input.SavedUserID != nil {
		var saved models.User
		if err := s.users.GetByID(ctx, *input.SavedUserID, &saved); err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				return nil, appErr.Wrap(err, appErr.CodeNotFound, "Saved user not found")
			}
			return nil, err
		}
	}

	if err := s.savedItems.Create(ctx, item); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicItemSaved, events.ItemSaved{SavedItemID: item.ID, UserID: item.UserID})
	return item, nil
}

func (s *savedItemService) ListByUser(ctx context.Context, userID int64) ([]models.SavedItem, error) {
	return s.savedItems.ListByUser(ctx, userID)
}

func (s *savedItemService) Remove(ctx context.Context, savedItemID int64) error {
	logger.L().Info("remove saved item", zap.Int64("saved_item_id", savedItemID))
	return s.savedItems.Delete(ctx, savedItemID)
}
