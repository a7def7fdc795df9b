package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"streamverse/models"
)

type browseService interface {
	BrowsePage(ctx context.Context, requests []models.CategoryRequest) ([]models.Category, []models.Show)
}

// BrowseHandler serves the listing pages: category rails plus the hero
// banner selection.
type BrowseHandler struct {
	Service browseService
}

func NewBrowseHandler(service browseService) *BrowseHandler {
	return &BrowseHandler{Service: service}
}

// GetPage handles GET /api/browse/{page}.
func (h *BrowseHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page := mux.Vars(r)["page"]
	requests, ok := pageRequests[page]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown page")
		return
	}

	categories, hero := h.Service.BrowsePage(r.Context(), requests)
	writeJSON(w, http.StatusOK, models.BrowseResponse{
		Categories: categories,
		Hero:       hero,
	})
}
