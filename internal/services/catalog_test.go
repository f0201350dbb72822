package services

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
)

func gigTitles(gigs []models.GigWithSkills) []string {
	return lo.Map(gigs, func(g models.GigWithSkills, _ int) string { return g.Title })
}

func TestGigsBySkillsIsUnion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.user(t, "acme", models.RoleRecruiter)
	react, python := f.skillID(t, "React"), f.skillID(t, "Python")

	a := f.gig(t, rec.ID, "A")
	b := f.gig(t, rec.ID, "B")
	f.gig(t, rec.ID, "C")
	_, err := f.gigs.AddSkill(ctx, a.ID, react)
	require.NoError(t, err)
	_, err = f.gigs.AddSkill(ctx, b.ID, python)
	require.NoError(t, err)
	_, err = f.gigs.AddSkill(ctx, b.ID, react)
	require.NoError(t, err)

	both, err := f.catalog.GigsBySkills(ctx, []int64{python, react})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, gigTitles(both))
	assert.Len(t, both[1].Skills, 2)

	onlyPython, err := f.catalog.GigsBySkills(ctx, []int64{python, python})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, gigTitles(onlyPython))

	all, err := f.catalog.GigsBySkills(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, gigTitles(all))
	assert.NotNil(t, all[2].Skills)
	assert.Empty(t, all[2].Skills)

	none, err := f.catalog.GigsBySkills(ctx, []int64{9999})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUsersBySkillsFiltersRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	figma := f.skillID(t, "Figma")

	stu := f.user(t, "bob", models.RoleStudent)
	rec := f.user(t, "acme", models.RoleRecruiter)
	f.user(t, "carol", models.RoleStudent)
	_, err := f.users.AddSkill(ctx, stu.ID, figma)
	require.NoError(t, err)
	_, err = f.users.AddSkill(ctx, rec.ID, figma)
	require.NoError(t, err)

	students, err := f.users.SearchUsers(ctx, models.RoleStudent, []int64{figma})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "bob", students[0].Username)

	allStudents, err := f.users.SearchUsers(ctx, models.RoleStudent, nil)
	require.NoError(t, err)
	assert.Len(t, allStudents, 2)

	recruiters, err := f.catalog.UsersWithSkillsByRole(ctx, models.RoleRecruiter)
	require.NoError(t, err)
	require.Len(t, recruiters, 1)
	assert.Equal(t, "Figma", recruiters[0].Skills[0].Name)
}
