package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func TestSaveItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.user(t, "acme", models.RoleRecruiter)
	stu := f.user(t, "bob", models.RoleStudent)
	g := f.gig(t, rec.ID, "Site")

	gigItem, err := f.saved.Save(ctx, &SaveItemInput{UserID: stu.ID, GigID: &g.ID})
	require.NoError(t, err)
	userItem, err := f.saved.Save(ctx, &SaveItemInput{UserID: rec.ID, SavedUserID: &stu.ID})
	require.NoError(t, err)

	items, err := f.saved.ListByUser(ctx, stu.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, gigItem.ID, items[0].ID)

	require.NoError(t, f.saved.Remove(ctx, userItem.ID))
	err = f.saved.Remove(ctx, userItem.ID)
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Saved item not found", ae.Message)
}

func TestSaveItemChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stu := f.user(t, "bob", models.RoleStudent)
	missing := int64(999)

	cases := []struct {
		name    string
		input   *SaveItemInput
		code    appErr.Code
		message string
	}{
		{"no target", &SaveItemInput{UserID: stu.ID}, appErr.CodeInvalid, models.ErrSavedItemTarget.Error()},
		{"both targets", &SaveItemInput{UserID: stu.ID, GigID: &missing, SavedUserID: &stu.ID}, appErr.CodeInvalid, models.ErrSavedItemTarget.Error()},
		{"missing owner", &SaveItemInput{UserID: missing, GigID: &missing}, appErr.CodeNotFound, "User not found"},
		{"missing gig", &SaveItemInput{UserID: stu.ID, GigID: &missing}, appErr.CodeNotFound, "Gig not found"},
		{"missing saved user", &SaveItemInput{UserID: stu.ID, SavedUserID: &missing}, appErr.CodeNotFound, "Saved user not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.saved.Save(ctx, tc.input)
			ae, ok := appErr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
		})
	}
}
