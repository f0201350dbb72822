package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/services"
)

type SearchHandler struct {
	users services.UserService
}

func NewSearchHandler(users services.UserService) *SearchHandler {
	return &SearchHandler{users: users}
}

// Users serves GET /search/users?role=&skills=.
func (h *SearchHandler) Users(w http.ResponseWriter, r *http.Request) {
	role := models.Role(r.URL.Query().Get("role"))
	if !role.Valid() {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Message: "Valid role parameter is required"})
		return
	}
	skillIDs, err := parseSkillIDs(r)
	if err != nil {
		writeValidation(w, err.Error())
		return
	}
	users, err := h.users.SearchUsers(r.Context(), role, skillIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
