package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamverse/handlers"
	"streamverse/models"
	"streamverse/services/embed"
)

type fakeResolver struct {
	url    string
	err    error
	target models.EmbedTarget
}

func (f *fakeResolver) Resolve(ctx context.Context, target models.EmbedTarget) (string, error) {
	f.target = target
	return f.url, f.err
}

func TestWatchResolve_Success(t *testing.T) {
	resolver := &fakeResolver{url: "https://embed.example/movie/550"}
	handler := handlers.NewWatchHandler(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/watch/resolve?id=550&type=movie", nil)
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["url"] != "https://embed.example/movie/550" {
		t.Fatalf("unexpected url %q", response["url"])
	}
}

func TestWatchResolve_TVCarriesSeasonAndEpisode(t *testing.T) {
	resolver := &fakeResolver{url: "https://embed.example/tv"}
	handler := handlers.NewWatchHandler(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/watch/resolve?id=1399&type=tv&season=3&episode=9", nil)
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if resolver.target.SeasonNumber != 3 || resolver.target.EpisodeNumber != 9 {
		t.Fatalf("season/episode not forwarded: %+v", resolver.target)
	}
}

func TestWatchResolve_MovieIgnoresSeasonAndEpisode(t *testing.T) {
	resolver := &fakeResolver{url: "https://embed.example/movie/550"}
	handler := handlers.NewWatchHandler(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/watch/resolve?id=550&type=movie&season=3&episode=9", nil)
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	if resolver.target.SeasonNumber != 0 || resolver.target.EpisodeNumber != 0 {
		t.Fatalf("movie target should not carry season/episode: %+v", resolver.target)
	}
}

func TestWatchResolve_NoStream(t *testing.T) {
	resolver := &fakeResolver{err: embed.ErrNoStream}
	handler := handlers.NewWatchHandler(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/watch/resolve?id=550&type=movie", nil)
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "no working stream found" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestWatchResolve_MissingParams(t *testing.T) {
	handler := handlers.NewWatchHandler(&fakeResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/watch/resolve", nil)
	rec := httptest.NewRecorder()
	handler.Resolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "Missing ID or type query parameter" {
		t.Fatalf("unexpected error %q", got)
	}
}
