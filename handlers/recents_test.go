package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"streamverse/handlers"
	"streamverse/models"
	"streamverse/services/recents"
)

type fakeRecentsService struct {
	items []models.WatchedItem
	saved models.WatchedItem
	err   error
}

func (f *fakeRecentsService) List() []models.WatchedItem {
	return f.items
}

func (f *fakeRecentsService) Save(item models.WatchedItem) (models.WatchedItem, error) {
	if f.err != nil {
		return models.WatchedItem{}, f.err
	}
	f.saved = item
	return item, nil
}

func (f *fakeRecentsService) Clear() error {
	return f.err
}

func TestRecentsList(t *testing.T) {
	svc := &fakeRecentsService{items: []models.WatchedItem{
		{Show: models.Show{ID: 550, Title: "Fight Club", MediaType: models.MediaTypeMovie}},
	}}
	handler := handlers.NewRecentsHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/recents", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var response []models.WatchedItem
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 1 || response[0].ID != 550 {
		t.Fatalf("unexpected response %+v", response)
	}
}

func TestRecentsSave(t *testing.T) {
	svc := &fakeRecentsService{}
	handler := handlers.NewRecentsHandler(svc)

	item := models.WatchedItem{
		Show:          models.Show{ID: 1399, Name: "Game of Thrones", MediaType: models.MediaTypeTV},
		SeasonNumber:  1,
		EpisodeNumber: 1,
		CurrentTime:   420.5,
		Duration:      3600,
	}
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPost, "/api/recents", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if svc.saved.ID != 1399 || svc.saved.EpisodeNumber != 1 {
		t.Fatalf("unexpected saved item %+v", svc.saved)
	}
}

func TestRecentsSave_InvalidBody(t *testing.T) {
	handler := handlers.NewRecentsHandler(&fakeRecentsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/recents", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestRecentsSave_MissingID(t *testing.T) {
	handler := handlers.NewRecentsHandler(&fakeRecentsService{err: recents.ErrItemIDRequired})

	req := httptest.NewRequest(http.MethodPost, "/api/recents", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestRecentsClear(t *testing.T) {
	handler := handlers.NewRecentsHandler(&fakeRecentsService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/recents", nil)
	rec := httptest.NewRecorder()
	handler.Clear(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
