package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"streamverse/models"
	"streamverse/services/tmdb"
)

type detailsService interface {
	Details(ctx context.Context, mediaKind models.MediaType, id int) (*models.Show, error)
	SeasonDetails(ctx context.Context, tvID, season int) (*models.SeasonResponse, error)
	Credits(ctx context.Context, mediaKind models.MediaType, id string) (*models.CreditsResponse, error)
	Recommendations(ctx context.Context, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error)
	Similar(ctx context.Context, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error)
}

var _ detailsService = (*tmdb.Service)(nil)

// DetailsHandler serves the details overlay: title details with videos,
// season episode lists, and the credits/recommendations proxy routes.
type DetailsHandler struct {
	Service detailsService
}

func NewDetailsHandler(service detailsService) *DetailsHandler {
	return &DetailsHandler{Service: service}
}

// requireIDAndType validates the id/type query parameters shared by the
// proxy routes. The error strings are part of the route contract.
func requireIDAndType(w http.ResponseWriter, r *http.Request) (string, models.MediaType, bool) {
	id := r.URL.Query().Get("id")
	mediaType := models.MediaType(r.URL.Query().Get("type"))

	if id == "" || mediaType == "" {
		writeError(w, http.StatusBadRequest, "Missing ID or type query parameter")
		return "", "", false
	}
	if !mediaType.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid type parameter. Must be 'tv' or 'movie'.")
		return "", "", false
	}
	return id, mediaType, true
}

// GetCredits handles GET /api/details/credits?id&type, forwarding to the
// upstream credits endpoint with status passthrough on failure.
func (h *DetailsHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	id, mediaType, ok := requireIDAndType(w, r)
	if !ok {
		return
	}

	credits, err := h.Service.Credits(r.Context(), mediaType, id)
	if err != nil {
		var uerr *tmdb.UpstreamError
		if errors.As(err, &uerr) {
			writeError(w, uerr.StatusCode, "Failed to fetch credits from TMDb: "+uerr.Message)
			return
		}
		log.Printf("[details] credits %s/%s: %v", mediaType, id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error while fetching credits")
		return
	}
	writeJSON(w, http.StatusOK, credits)
}

// GetRecommendations handles GET /api/details/recommendations?id&type.
// Empty or missing recommendations fall back to the similar-titles
// endpoint; if both come back empty or fail after a successful first
// call, the route answers an empty list rather than an error.
func (h *DetailsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, mediaType, ok := requireIDAndType(w, r)
	if !ok {
		return
	}

	recs, err := h.Service.Recommendations(r.Context(), mediaType, id)
	if err != nil {
		var uerr *tmdb.UpstreamError
		if !errors.As(err, &uerr) {
			log.Printf("[details] recommendations %s/%s: %v", mediaType, id, err)
			writeError(w, http.StatusInternalServerError, "Internal server error while fetching recommendations")
			return
		}
		if uerr.StatusCode != http.StatusNotFound {
			writeError(w, uerr.StatusCode, "Failed to fetch recommendations from TMDb: "+uerr.Message)
			return
		}

		similar, serr := h.Service.Similar(r.Context(), mediaType, id)
		if serr != nil {
			var suerr *tmdb.UpstreamError
			if errors.As(serr, &suerr) {
				writeError(w, suerr.StatusCode, "Failed to fetch recommendations or similar items from TMDb: "+suerr.Message)
				return
			}
			log.Printf("[details] similar %s/%s: %v", mediaType, id, serr)
			writeError(w, http.StatusInternalServerError, "Internal server error while fetching recommendations")
			return
		}
		writeJSON(w, http.StatusOK, resultsOrEmpty(similar))
		return
	}

	if len(recs.Results) == 0 {
		similar, serr := h.Service.Similar(r.Context(), mediaType, id)
		if serr != nil {
			// Recommendations succeeded but were empty; an empty list
			// beats erroring the whole overlay.
			log.Printf("[details] similar fallback %s/%s: %v", mediaType, id, serr)
			writeJSON(w, http.StatusOK, []models.Show{})
			return
		}
		writeJSON(w, http.StatusOK, resultsOrEmpty(similar))
		return
	}

	writeJSON(w, http.StatusOK, recs.Results)
}

// GetDetails handles GET /api/details/{type}/{id}, returning the title
// with its video list for the overlay.
func (h *DetailsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := models.MediaType(vars["type"])
	if !mediaType.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid type parameter. Must be 'tv' or 'movie'.")
		return
	}
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	show, err := h.Service.Details(r.Context(), mediaType, id)
	if err != nil {
		h.writeUpstreamError(w, err, "details")
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// GetSeason handles GET /api/details/tv/{id}/season/{season}.
func (h *DetailsHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}
	season, err := strconv.Atoi(vars["season"])
	if err != nil || season < 0 {
		writeError(w, http.StatusBadRequest, "Invalid season parameter")
		return
	}

	resp, err := h.Service.SeasonDetails(r.Context(), id, season)
	if err != nil {
		h.writeUpstreamError(w, err, "season")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DetailsHandler) writeUpstreamError(w http.ResponseWriter, err error, op string) {
	var uerr *tmdb.UpstreamError
	if errors.As(err, &uerr) {
		writeError(w, uerr.StatusCode, uerr.Message)
		return
	}
	log.Printf("[details] %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func resultsOrEmpty(resp *models.PaginatedShowResponse) []models.Show {
	if resp == nil || resp.Results == nil {
		return []models.Show{}
	}
	return resp.Results
}
