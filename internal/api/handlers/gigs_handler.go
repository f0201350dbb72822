package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/services"
)

type GigsHandler struct {
	svc      services.GigService
	validate structValidator
}

func NewGigsHandler(svc services.GigService, v structValidator) *GigsHandler {
	return &GigsHandler{svc: svc, validate: v}
}

func (h *GigsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateGigRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	g, err := h.svc.CreateGig(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// List returns every gig, or with ?skills= the gigs tagged with any of them.
func (h *GigsHandler) List(w http.ResponseWriter, r *http.Request) {
	skillIDs, err := parseSkillIDs(r)
	if err != nil {
		writeValidation(w, err.Error())
		return
	}
	gigs, err := h.svc.ListGigs(r.Context(), skillIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gigs)
}

func (h *GigsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	g, err := h.svc.GetGig(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *GigsHandler) ListByRecruiter(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := pathID(w, r, "recruiterId")
	if !ok {
		return
	}
	gigs, err := h.svc.ListGigsByRecruiter(r.Context(), recruiterID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gigs)
}

func (h *GigsHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	gigID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.SkillIDRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	link, err := h.svc.AddSkill(r.Context(), gigID, req.SkillID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *GigsHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	gigID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	skillID, ok := pathID(w, r, "skillId")
	if !ok {
		return
	}
	if err := h.svc.RemoveSkill(r.Context(), gigID, skillID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
