package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/models"
	"github.com/oceanofgigs/engine/internal/services"
)

type ApplicationsHandler struct {
	svc      services.ApplicationService
	validate structValidator
}

func NewApplicationsHandler(svc services.ApplicationService, v structValidator) *ApplicationsHandler {
	return &ApplicationsHandler{svc: svc, validate: v}
}

func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateApplicationRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	a, err := h.svc.Apply(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *ApplicationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *ApplicationsHandler) ListByGig(w http.ResponseWriter, r *http.Request) {
	gigID, ok := pathID(w, r, "gigId")
	if !ok {
		return
	}
	apps, err := h.svc.ListByGig(r.Context(), gigID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationsHandler) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathID(w, r, "studentId")
	if !ok {
		return
	}
	apps, err := h.svc.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.UpdateApplicationStatusRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	a, err := h.svc.UpdateStatus(r.Context(), id, models.ApplicationStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
