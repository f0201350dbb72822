package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func TestCreateSkillTrimsName(t *testing.T) {
	repo := new(mockSkillRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Skill) bool { return s.Name == "Rust" })).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Skill).ID = 23 }).
		Return(nil)

	s, err := NewSkillService(repo).CreateSkill(context.Background(), "  Rust ")
	require.NoError(t, err)
	assert.Equal(t, models.Skill{ID: 23, Name: "Rust"}, *s)
	repo.AssertExpectations(t)
}

func TestCreateSkillBlankName(t *testing.T) {
	repo := new(mockSkillRepository)

	_, err := NewSkillService(repo).CreateSkill(context.Background(), "   ")
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSkillPropagatesConflict(t *testing.T) {
	repo := new(mockSkillRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(appErr.New(appErr.CodeConflict, "Skill already exists"))

	_, err := NewSkillService(repo).CreateSkill(context.Background(), "react")
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
}

func TestListSkillsSeeded(t *testing.T) {
	skills, err := newFixture(t).skills.ListSkills(context.Background())
	require.NoError(t, err)
	assert.Len(t, skills, 22)
}
