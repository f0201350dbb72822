package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=student recruiter"`
	MinPrice *int   `json:"minPrice" validate:"required,gte=0"`
}

func TestDescribeUsesJSONNames(t *testing.T) {
	neg := -1
	err := New().Struct(sample{Username: "ab", Email: "nope", Role: "admin", MinPrice: &neg})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "username must be at least 3 characters")
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "role must be one of [student recruiter]")
	assert.Contains(t, msg, "minPrice must be greater than or equal to 0")
}

func TestDescribeRequired(t *testing.T) {
	err := New().Struct(sample{})
	require.Error(t, err)
	assert.Contains(t, Describe(err), "minPrice is required")
}

func TestDescribePassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
