package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"streamverse/models"
	"streamverse/services/recents"
)

type recentsService interface {
	List() []models.WatchedItem
	Save(item models.WatchedItem) (models.WatchedItem, error)
	Clear() error
}

var _ recentsService = (*recents.Service)(nil)

// RecentsHandler exposes the recently-started list.
type RecentsHandler struct {
	Service recentsService
}

func NewRecentsHandler(service recentsService) *RecentsHandler {
	return &RecentsHandler{Service: service}
}

// List handles GET /api/recents.
func (h *RecentsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.List())
}

// Save handles POST /api/recents.
func (h *RecentsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var item models.WatchedItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.Service.Save(item)
	if err != nil {
		if errors.Is(err, recents.ErrItemIDRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Clear handles DELETE /api/recents.
func (h *RecentsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
