package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.CreateUser(context.Background(), &CreateUserInput{Username: "x", Password: "p", Role: "admin", Name: "x", Email: "x@x"})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	f.user(t, "alice", models.RoleStudent)

	_, err := f.users.CreateUser(context.Background(), &CreateUserInput{Username: "alice", Password: "p", Role: models.RoleRecruiter, Name: "a", Email: "a@x"})
	require.Error(t, err)
	assert.Equal(t, 409, appErr.HTTPStatus(err))
}

func TestUpdateUserMergesAndKeepsRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "alice", models.RoleStudent)

	about := "likes Go"
	same := models.RoleStudent
	updated, err := f.users.UpdateUser(ctx, u.ID, &UpdateUserInput{About: &about, Role: &same})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	require.NotNil(t, updated.About)
	assert.Equal(t, "likes Go", *updated.About)

	other := models.RoleRecruiter
	_, err = f.users.UpdateUser(ctx, u.ID, &UpdateUserInput{Role: &other})
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	got, err := f.users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, got.Role)
}

func TestUpdateUserMissing(t *testing.T) {
	name := "n"
	_, err := newFixture(t).users.UpdateUser(context.Background(), 99, &UpdateUserInput{Name: &name})
	require.Error(t, err)
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "User not found", ae.Message)
}

func TestUserSkillLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "alice", models.RoleStudent)
	react := f.skillID(t, "React")

	link, err := f.users.AddSkill(ctx, u.ID, react)
	require.NoError(t, err)
	assert.Equal(t, react, link.SkillID)

	_, err = f.users.AddSkill(ctx, u.ID, react)
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeConflict, ae.Code)
	assert.Equal(t, "User already has this skill", ae.Message)

	withSkills, err := f.users.GetUserWithSkills(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, withSkills.Skills, 1)
	assert.Equal(t, "React", withSkills.Skills[0].Name)

	require.NoError(t, f.users.RemoveSkill(ctx, u.ID, react))
	err = f.users.RemoveSkill(ctx, u.ID, react)
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "User skill not found", ae.Message)
}

func TestAddSkillChecksUserBeforeSkill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.users.AddSkill(ctx, 42, 9999)
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "User not found", ae.Message)

	u := f.user(t, "alice", models.RoleStudent)
	_, err = f.users.AddSkill(ctx, u.ID, 9999)
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Skill not found", ae.Message)
}

func TestSearchUsersRequiresRole(t *testing.T) {
	_, err := newFixture(t).users.SearchUsers(context.Background(), "", nil)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}
