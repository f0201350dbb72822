package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

func TestParseSkillIDs(t *testing.T) {
	cases := []struct {
		query string
		want  []int64
	}{
		{"", nil},
		{"skills=", nil},
		{"skills=1,2", []int64{1, 2}},
		{"skills=1&skills=2", []int64{1, 2}},
		{"skills=3,+4&skills=5", []int64{3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got, err := parseSkillIDs(httptest.NewRequest(http.MethodGet, "/gigs?"+tc.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := parseSkillIDs(httptest.NewRequest(http.MethodGet, "/gigs?skills=1,react", nil))
	assert.Error(t, err)
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	r := withParam(httptest.NewRequest(http.MethodGet, "/users/7", nil), "id", "7")
	rr := httptest.NewRecorder()
	id, ok := pathID(rr, r, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	for _, bad := range []string{"abc", "0", "-3"} {
		r = withParam(httptest.NewRequest(http.MethodGet, "/users/x", nil), "id", bad)
		rr = httptest.NewRecorder()
		_, ok = pathID(rr, r, "id")
		assert.False(t, ok, bad)
		assert.Equal(t, http.StatusBadRequest, rr.Code, bad)
		assert.Contains(t, rr.Body.String(), "Validation error")
	}
}
