package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/services"
)

type UsersHandler struct {
	svc      services.UserService
	validate structValidator
}

func NewUsersHandler(svc services.UserService, v structValidator) *UsersHandler {
	return &UsersHandler{svc: svc, validate: v}
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	u, err := h.svc.CreateUser(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) GetWithSkills(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUserWithSkills(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.UpdateUserRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), id, req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.SkillIDRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	link, err := h.svc.AddSkill(r.Context(), userID, req.SkillID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *UsersHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	skillID, ok := pathID(w, r, "skillId")
	if !ok {
		return
	}
	if err := h.svc.RemoveSkill(r.Context(), userID, skillID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
