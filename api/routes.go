package api

import (
	"net/http"

	"streamverse/handlers"

	"github.com/gorilla/mux"
)

// corsMiddleware handles CORS for API routes
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Register mounts API endpoints onto the provided router.
func Register(
	r *mux.Router,
	browseHandler *handlers.BrowseHandler,
	detailsHandler *handlers.DetailsHandler,
	watchHandler *handlers.WatchHandler,
	searchHandler *handlers.SearchHandler,
	recentsHandler *handlers.RecentsHandler,
) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)

	api.HandleFunc("/browse/{page}", browseHandler.GetPage).Methods(http.MethodGet, http.MethodOptions)

	// Static detail routes register before the {type}/{id} patterns.
	api.HandleFunc("/details/credits", detailsHandler.GetCredits).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/details/recommendations", detailsHandler.GetRecommendations).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/details/tv/{id}/season/{season}", detailsHandler.GetSeason).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/details/{type}/{id}", detailsHandler.GetDetails).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/watch/resolve", watchHandler.Resolve).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/search", searchHandler.Search).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/recents", recentsHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/recents", recentsHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/recents", recentsHandler.Clear).Methods(http.MethodDelete)
}
