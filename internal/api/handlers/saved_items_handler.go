package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/api/types"
	"github.com/oceanofgigs/engine/internal/services"
)

type SavedItemsHandler struct {
	svc      services.SavedItemService
	validate structValidator
}

func NewSavedItemsHandler(svc services.SavedItemService, v structValidator) *SavedItemsHandler {
	return &SavedItemsHandler{svc: svc, validate: v}
}

func (h *SavedItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSavedItemRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}
	item, err := h.svc.Save(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ListByUser serves GET /saved-items/{id}, where id names the owning user.
func (h *SavedItemsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *SavedItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Remove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
