package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/repository"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
	"github.com/oceanofgigs/engine/pkg/logger"
)

// Service interface and related DTOs
type UserService interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserWithSkills(ctx context.Context, userID int64) (*models.UserWithSkills, error)
	UpdateUser(ctx context.Context, userID int64, updates *UpdateUserInput) (*models.User, error)

	// Skills
	AddSkill(ctx context.Context, userID, skillID int64) (*models.UserSkill, error)
	RemoveSkill(ctx context.Context, userID, skillID int64) error

	// Search
	SearchUsers(ctx context.Context, role models.Role, skillIDs []int64) ([]models.UserWithSkills, error)
}

type CreateUserInput struct {
	Username       string
	Password       string
	Role           models.Role
	Name           string
	Email          string
	Photo          *string
	About          *string
	University     *string
	Major          *string
	GraduationYear *string
	Company        *string
	Location       *string
}

// UpdateUserInput carries only the fields to change; nil means untouched.
type UpdateUserInput struct {
	Username       *string
	Password       *string
	Role           *models.Role
	Name           *string
	Email          *string
	Photo          *string
	About          *string
	University     *string
	Major          *string
	GraduationYear *string
	Company        *string
	Location       *string
}

type userService struct {
	users      repository.UserRepository
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository
	catalog    *Catalog
}

func NewUserService(store *repository.Store, catalog *Catalog) UserService {
	return &userService{
		users:      store.Users(),
		skills:     store.Skills(),
		userSkills: store.UserSkills(),
		catalog:    catalog,
	}
}

// Ensure interfaces are satisfied at compile time
var _ UserService = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	logger.L().Info("create user called", zap.String("username", input.Username), zap.String("role", string(input.Role)))

	if !input.Role.Valid() {
		return nil, appErr.Newf(appErr.CodeInvalid, "role must be one of %q or %q", models.RoleStudent, models.RoleRecruiter)
	}

	u := &models.User{
		Username:       input.Username,
		Password:       input.Password,
		Role:           input.Role,
		Name:           input.Name,
		Email:          input.Email,
		Photo:          input.Photo,
		About:          input.About,
		University:     input.University,
		Major:          input.Major,
		GraduationYear: input.GraduationYear,
		Company:        input.Company,
		Location:       input.Location,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.L().Info("user created", zap.Int64("user_id", u.ID))
	return u, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	if err := s.users.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.users.GetByUsername(ctx, username, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) GetUserWithSkills(ctx context.Context, userID int64) (*models.UserWithSkills, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.UserWithSkills(ctx, *u)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtrIf[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// UpdateUser merges the provided fields over the stored user. The role is
// fixed at signup; repeating it is accepted, changing it is not.
func (s *userService) UpdateUser(ctx context.Context, userID int64, updates *UpdateUserInput) (*models.User, error) {
	logger.L().Info("update user", zap.Int64("user_id", userID))

	var u models.User
	err := s.users.Update(ctx, userID, func(cur *models.User) error {
		if updates.Role != nil && *updates.Role != cur.Role {
			return appErr.New(appErr.CodeInvalid, "role cannot be changed")
		}
		setIf(&cur.Username, updates.Username)
		setIf(&cur.Password, updates.Password)
		setIf(&cur.Name, updates.Name)
		setIf(&cur.Email, updates.Email)
		setPtrIf(&cur.Photo, updates.Photo)
		setPtrIf(&cur.About, updates.About)
		setPtrIf(&cur.University, updates.University)
		setPtrIf(&cur.Major, updates.Major)
		setPtrIf(&cur.GraduationYear, updates.GraduationYear)
		setPtrIf(&cur.Company, updates.Company)
		setPtrIf(&cur.Location, updates.Location)
		return nil
	}, &u)
	if err != nil {
		return nil, err
	}

	logger.L().Info("user updated", zap.Int64("user_id", userID))
	return &u, nil
}

func (s *userService) AddSkill(ctx context.Context, userID, skillID int64) (*models.UserSkill, error) {
	logger.L().Info("add user skill", zap.Int64("user_id", userID), zap.Int64("skill_id", skillID))

	var u models.User
	if err := s.users.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}
	var sk models.Skill
	if err := s.skills.GetByID(ctx, skillID, &sk); err != nil {
		return nil, err
	}

	link, err := s.userSkills.Add(ctx, userID, skillID)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return nil, appErr.Wrap(err, appErr.CodeConflict, "User already has this skill")
		}
		return nil, err
	}
	return link, nil
}

func (s *userService) RemoveSkill(ctx context.Context, userID, skillID int64) error {
	logger.L().Info("remove user skill", zap.Int64("user_id", userID), zap.Int64("skill_id", skillID))

	removed, err := s.userSkills.Remove(ctx, userID, skillID)
	if err != nil {
		return err
	}
	if !removed {
		return appErr.New(appErr.CodeNotFound, "User skill not found")
	}
	return nil
}

func (s *userService) SearchUsers(ctx context.Context, role models.Role, skillIDs []int64) ([]models.UserWithSkills, error) {
	logger.L().Debug("search users", zap.String("role", string(role)), zap.Int64s("skill_ids", skillIDs))

	if !role.Valid() {
		return nil, appErr.New(appErr.CodeInvalid, "Valid role parameter is required")
	}
	return s.catalog.UsersBySkills(ctx, skillIDs, role)
}
