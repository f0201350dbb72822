package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanofgigs/engine/internal/models"
	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func TestApplyFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.user(t, "acme", models.RoleRecruiter)
	stu := f.user(t, "bob", models.RoleStudent)
	g := f.gig(t, rec.ID, "Site")

	a, err := f.applications.Apply(ctx, &ApplyInput{GigID: g.ID, StudentID: stu.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, a.Status)

	_, err = f.applications.Apply(ctx, &ApplyInput{GigID: g.ID, StudentID: stu.ID})
	ae, ok := appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, appErr.CodeConflict, ae.Code)
	assert.Equal(t, "Student already applied to this gig", ae.Message)

	byGig, err := f.applications.ListByGig(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, byGig, 1)

	updated, err := f.applications.UpdateStatus(ctx, a.ID, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.Status)

	back, err := f.applications.UpdateStatus(ctx, a.ID, models.ApplicationPending)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, back.Status)

	_, err = f.applications.UpdateStatus(ctx, a.ID, "hired")
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = f.applications.UpdateStatus(ctx, 999, models.ApplicationRejected)
	ae, ok = appErr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Application not found", ae.Message)
}

func TestApplyChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := f.user(t, "acme", models.RoleRecruiter)
	g := f.gig(t, rec.ID, "Site")

	cases := []struct {
		name    string
		input   *ApplyInput
		code    appErr.Code
		message string
	}{
		{"missing gig", &ApplyInput{GigID: 999, StudentID: rec.ID}, appErr.CodeNotFound, "Gig not found"},
		{"missing student", &ApplyInput{GigID: g.ID, StudentID: 999}, appErr.CodeNotFound, "Student not found"},
		{"recruiter applies", &ApplyInput{GigID: g.ID, StudentID: rec.ID}, appErr.CodeForbidden, "Only students can apply to gigs"},
		{"bad status", &ApplyInput{GigID: g.ID, StudentID: rec.ID, Status: "hired"}, appErr.CodeInvalid, `unknown application status "hired"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.applications.Apply(ctx, tc.input)
			ae, ok := appErr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
		})
	}

	apps, err := f.applications.ListByGig(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}
