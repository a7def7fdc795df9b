package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"streamverse/models"
)

type searchService interface {
	Search(ctx context.Context, query string, page int) (*models.PaginatedShowResponse, error)
}

// SearchHandler serves multi-search across movies and series.
type SearchHandler struct {
	Service searchService
}

func NewSearchHandler(service searchService) *SearchHandler {
	return &SearchHandler{Service: service}
}

// Search handles GET /api/search?q[&page].
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing q query parameter")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	resp, err := h.Service.Search(r.Context(), query, page)
	if err != nil {
		log.Printf("[search] %q: %v", query, err)
		writeError(w, http.StatusInternalServerError, "Internal server error while searching")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
