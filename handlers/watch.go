package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"streamverse/models"
	"streamverse/services/embed"
)

type embedResolver interface {
	Resolve(ctx context.Context, target models.EmbedTarget) (string, error)
}

var _ embedResolver = (*embed.Resolver)(nil)

// WatchHandler resolves playback to a third-party embed URL. Resolution
// runs fresh on every call; nothing is cached across navigations.
type WatchHandler struct {
	Resolver embedResolver
}

func NewWatchHandler(resolver embedResolver) *WatchHandler {
	return &WatchHandler{Resolver: resolver}
}

// Resolve handles GET /api/watch/resolve?id&type[&season&episode].
func (h *WatchHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, mediaType, ok := requireIDAndType(w, r)
	if !ok {
		return
	}

	target := models.EmbedTarget{
		ContentID: id,
		MediaKind: mediaType,
	}
	if mediaType == models.MediaTypeTV {
		target.SeasonNumber = intQuery(r, "season")
		target.EpisodeNumber = intQuery(r, "episode")
	}

	url, err := h.Resolver.Resolve(r.Context(), target)
	if err != nil {
		if errors.Is(err, embed.ErrNoStream) {
			writeError(w, http.StatusNotFound, "no working stream found")
			return
		}
		if r.Context().Err() != nil {
			// Client went away mid-probe; nothing useful to answer.
			return
		}
		log.Printf("[watch] resolve %s/%s: %v", mediaType, id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error while resolving stream")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func intQuery(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
