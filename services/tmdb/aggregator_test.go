package tmdb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"streamverse/models"
	"streamverse/services/tmdb"
)

func listBody(shows ...models.Show) models.PaginatedShowResponse {
	return models.PaginatedShowResponse{Page: 1, Results: shows, TotalPages: 1, TotalResults: len(shows)}
}

func TestAggregate_PreservesOrderAndVisibility(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/trending/"):
			json.NewEncoder(w).Encode(listBody(models.Show{ID: 1, Title: "First", MediaType: models.MediaTypeMovie}))
		case strings.HasSuffix(r.URL.Path, "/top_rated"):
			json.NewEncoder(w).Encode(listBody(models.Show{ID: 2, Name: "Second"}))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := tmdb.NewService(tmdb.NewClient(srv.URL, "", "", srv.Client()))
	requests := []models.CategoryRequest{
		{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Page: 1, Visible: true},
		{Title: "Top Rated", Kind: models.RequestTopRated, MediaKind: models.MediaTypeTV, Page: 1, Visible: false},
	}

	categories := svc.Aggregate(context.Background(), nil, requests)

	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Title != "Trending Now" || categories[1].Title != "Top Rated" {
		t.Fatalf("category order not preserved: %q, %q", categories[0].Title, categories[1].Title)
	}
	if !categories[0].Visible || categories[1].Visible {
		t.Fatalf("visibility flags not carried through")
	}
}

func TestAggregate_FailedCategoryComesBackEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/popular") {
			http.Error(w, `{"status_message":"boom"}`, http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(listBody(models.Show{ID: 1, Title: "First"}))
	}))
	defer srv.Close()

	svc := tmdb.NewService(tmdb.NewClient(srv.URL, "", "", srv.Client()))
	requests := []models.CategoryRequest{
		{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Page: 1, Visible: true},
		{Title: "Popular", Kind: models.RequestPopular, MediaKind: models.MediaTypeMovie, Page: 1, Visible: true},
	}

	categories := svc.Aggregate(context.Background(), nil, requests)

	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if len(categories[0].Shows) != 1 {
		t.Fatalf("healthy category affected by failing neighbour: %+v", categories[0])
	}
	if categories[1].Shows == nil || len(categories[1].Shows) != 0 {
		t.Fatalf("failed category should come back with an empty list, got %+v", categories[1].Shows)
	}
}

func TestAggregate_BackfillsMediaKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/top_rated"):
			// Upstream list endpoints omit the per-item kind.
			json.NewEncoder(w).Encode(listBody(models.Show{ID: 10, Name: "Series"}))
		case strings.HasPrefix(r.URL.Path, "/trending/"):
			json.NewEncoder(w).Encode(listBody(models.Show{ID: 11, Title: "Film", MediaType: models.MediaTypeMovie}))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := tmdb.NewService(tmdb.NewClient(srv.URL, "", "", srv.Client()))
	requests := []models.CategoryRequest{
		{Title: "Top Rated", Kind: models.RequestTopRated, MediaKind: models.MediaTypeTV, Page: 1, Visible: true},
		{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeTV, Page: 1, Visible: true},
	}

	categories := svc.Aggregate(context.Background(), nil, requests)

	if got := categories[0].Shows[0].MediaType; got != models.MediaTypeTV {
		t.Fatalf("top_rated item should carry the category's media kind, got %q", got)
	}
	// Trending payloads name their own kind and are left alone.
	if got := categories[1].Shows[0].MediaType; got != models.MediaTypeMovie {
		t.Fatalf("trending item kind overwritten, got %q", got)
	}
}

func TestAggregate_MemoizesIdenticalRequests(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(listBody(models.Show{ID: 1, Title: "First"}))
	}))
	defer srv.Close()

	svc := tmdb.NewService(tmdb.NewClient(srv.URL, "", "", srv.Client()))
	req := models.CategoryRequest{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Page: 1, Visible: true}
	requests := []models.CategoryRequest{req, req, req}

	cache := tmdb.NewRequestCache()
	categories := svc.Aggregate(context.Background(), cache, requests)

	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("identical requests within one pass should hit upstream once, got %d", got)
	}
}

func TestBrowsePage_BuildsHeroWithTrailerKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/trending/"):
			json.NewEncoder(w).Encode(listBody(
				models.Show{ID: 1, Title: "Film", BackdropPath: "/b1.jpg", MediaType: models.MediaTypeMovie},
			))
		case r.URL.Path == "/movie/1":
			json.NewEncoder(w).Encode(models.Show{
				ID: 1, Title: "Film",
				Videos: &models.VideoList{Results: []models.Video{
					{Key: "abc123", Site: "YouTube", Type: "Trailer", Official: true},
				}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := tmdb.NewService(tmdb.NewClient(srv.URL, "", "", srv.Client()))
	requests := []models.CategoryRequest{
		{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Page: 1, Visible: true},
	}

	categories, hero := svc.BrowsePage(context.Background(), requests)

	if len(categories) != 1 || len(hero) != 1 {
		t.Fatalf("unexpected page shape: %d categories, %d hero items", len(categories), len(hero))
	}
	if hero[0].HeroVideoKey != "abc123" {
		t.Fatalf("expected trailer key attached, got %q", hero[0].HeroVideoKey)
	}
}
