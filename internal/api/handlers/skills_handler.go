package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/services"
)

type SkillsHandler struct {
	svc      services.SkillService
	validate structValidator
}

func NewSkillsHandler(svc services.SkillService, v structValidator) *SkillsHandler {
	return &SkillsHandler{svc: svc, validate: v}
}

func (h *SkillsHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.ListSkills(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

func (h *SkillsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSkillRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	s, err := h.svc.CreateSkill(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}
