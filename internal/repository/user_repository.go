package repository

import (
	"context"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

type UserRepository interface {
	BaseRepository[models.User]
	GetByUsername(ctx context.Context, username string, dest *models.User) error
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

type userRepository struct {
	baseRepository[models.User, *models.User]
}

func NewUserRepository() UserRepository {
	return &userRepository{baseRepository: newBaseRepository[models.User, *models.User]("User")}
}

func usernameClash(candidate, existing *models.User) error {
	if candidate.Username == existing.Username {
		return appErr.New(appErr.CodeConflict, "Username already exists").WithMeta("username", candidate.Username)
	}
	return nil
}

// Create rejects a username that is already taken.
func (r *userRepository) Create(ctx context.Context, obj *models.User) error {
	return r.t.insert(obj, usernameClash)
}

// Update rejects renaming onto a username held by another user.
func (r *userRepository) Update(ctx context.Context, id int64, apply func(*models.User) error, dest *models.User) error {
	return r.t.update(id, apply, usernameClash, dest)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string, dest *models.User) error {
	found := r.t.filter(func(u *models.User) bool { return u.Username == username })
	if len(found) == 0 {
		return appErr.New(appErr.CodeNotFound, "User not found")
	}
	*dest = found[0]
	return nil
}

func (r *userRepository) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return r.t.filter(func(u *models.User) bool { return u.Role == role }), nil
}
