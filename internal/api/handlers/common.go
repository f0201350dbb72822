package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/api/middleware"
	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/api/validators"
	"github.com/oceanofgigs/engine/pkg/logger"
)

type structValidator interface{ Struct(any) error }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := types.FromAppError(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, body)
}

func writeValidation(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Message: types.ValidationErrorMessage, Errors: detail})
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// the 400 response has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v structValidator, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			writeValidation(w, "request body is required")
		} else {
			writeValidation(w, "invalid JSON body: "+err.Error())
		}
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeValidation(w, validators.Describe(err))
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter, writing a 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeValidation(w, fmt.Sprintf("%s must be a positive integer, got %q", name, raw))
		return 0, false
	}
	return id, true
}

// parseSkillIDs accepts ?skills=1,2 as well as ?skills=1&skills=2. Blank
// entries are ignored, so an empty value yields no filter.
func parseSkillIDs(r *http.Request) ([]int64, error) {
	var ids []int64
	for _, v := range r.URL.Query()["skills"] {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("skills must be a comma separated list of integers, got %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
