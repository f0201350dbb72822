package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func strp(s string) *string { return &s }

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()

	users := NewUserRepository()
	u := models.User{Username: "ada", Password: "pw", Role: models.RoleStudent, Name: "Ada", Email: "ada@uni.edu", Major: strp("Math")}
	require.NoError(t, users.Create(ctx, &u))
	assert.Equal(t, int64(1), u.ID)

	var got models.User
	require.NoError(t, users.GetByID(ctx, u.ID, &got))
	assert.Equal(t, u, got)

	gigs := NewGigRepository()
	g := models.Gig{Title: "Landing page", Description: "Build it", MinPrice: 100, RecruiterID: 9, CompanyName: "Acme"}
	require.NoError(t, gigs.Create(ctx, &g))
	assert.False(t, g.CreatedAt.IsZero())

	var gotGig models.Gig
	require.NoError(t, gigs.GetByID(ctx, g.ID, &gotGig))
	assert.Equal(t, g, gotGig)
}

func TestIdsAreSequentialPerType(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	gigs := NewGigRepository()

	for i := 1; i <= 3; i++ {
		u := models.User{Username: string(rune('a' + i)), Role: models.RoleRecruiter}
		require.NoError(t, users.Create(ctx, &u))
		assert.Equal(t, int64(i), u.ID)
	}
	g := models.Gig{Title: "x"}
	require.NoError(t, gigs.Create(ctx, &g))
	assert.Equal(t, int64(1), g.ID, "gig ids do not share the user counter")
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	u := models.User{Username: "bob", Role: models.RoleStudent, Name: "Bob", Email: "bob@uni.edu", University: strp("MIT")}
	require.NoError(t, users.Create(ctx, &u))

	var updated models.User
	err := users.Update(ctx, u.ID, func(x *models.User) error {
		x.About = strp("hello")
		return nil
	}, &updated)
	require.NoError(t, err)

	assert.Equal(t, "hello", *updated.About)
	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "MIT", *updated.University)
	assert.Equal(t, u.ID, updated.ID)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	users := NewUserRepository()
	err := users.Update(context.Background(), 42, func(*models.User) error { return nil }, nil)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpdateCannotChangeID(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	u := models.User{Username: "c"}
	require.NoError(t, users.Create(ctx, &u))

	var updated models.User
	require.NoError(t, users.Update(ctx, u.ID, func(x *models.User) error { x.ID = 99; return nil }, &updated))
	assert.Equal(t, u.ID, updated.ID)
}

func TestListIsOrderedByID(t *testing.T) {
	ctx := context.Background()
	skills := NewSkillRepository()
	for _, n := range []string{"Go", "Rust", "Zig"} {
		s := models.Skill{Name: n}
		require.NoError(t, skills.Create(ctx, &s))
	}
	list, err := skills.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Go", "Rust", "Zig"}, []string{list[0].Name, list[1].Name, list[2].Name})
}
