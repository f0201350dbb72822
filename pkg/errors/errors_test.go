package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", New(CodeInvalid, "bad"), http.StatusBadRequest},
		{"not found", New(CodeNotFound, "gone"), http.StatusNotFound},
		{"forbidden", New(CodeForbidden, "no"), http.StatusForbidden},
		{"conflict", New(CodeConflict, "dup"), http.StatusConflict},
		{"already exists", New(CodeAlreadyExists, "dup"), http.StatusConflict},
		{"internal", New(CodeInternal, "boom"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", New(CodeNotFound, "gone")), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestIsCodeAndUnwrap(t *testing.T) {
	base := errors.New("root cause")
	err := fmt.Errorf("ctx: %w", Wrap(base, CodeInternal, "store failed"))

	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "internal: store failed: root cause", Wrap(base, CodeInternal, "store failed").Error())
	assert.Equal(t, "not_found: User 7 not found", Newf(CodeNotFound, "User %d not found", 7).Error())
}
