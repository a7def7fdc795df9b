package recents

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"streamverse/models"
)

var (
	ErrStorageDirRequired = errors.New("storage directory not provided")
	ErrItemIDRequired     = errors.New("item id is required")
)

// maxEntries caps the recently-started list; the oldest entries fall off.
const maxEntries = 20

// Service persists the "recently started" list to a JSON file,
// most-recent-first. Movies are identified by id; TV entries by
// id+season+episode, so distinct episodes of one show coexist. Writes are
// last-writer-wins, which matches the store's single-key contract.
type Service struct {
	mu    sync.Mutex
	path  string
	items []models.WatchedItem
}

// NewService constructs a recents service backed by a JSON file on disk.
func NewService(storageDir string) (*Service, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, ErrStorageDirRequired
	}

	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create recents dir: %w", err)
	}

	svc := &Service{
		path: filepath.Join(storageDir, "recents.json"),
	}
	if err := svc.load(); err != nil {
		return nil, err
	}
	return svc, nil
}

// List returns the stored entries, most recently started first.
func (s *Service) List() []models.WatchedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WatchedItem, len(s.items))
	copy(out, s.items)
	return out
}

// Save records that the item was just started. An existing entry with the
// same identity moves to the front rather than duplicating; the list is
// then truncated to the cap. The watched timestamp is stamped here.
func (s *Service) Save(item models.WatchedItem) (models.WatchedItem, error) {
	if item.ID == 0 {
		return models.WatchedItem{}, ErrItemIDRequired
	}

	item.LastWatchedTimestamp = time.Now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.WatchedItem, 0, len(s.items)+1)
	for _, existing := range s.items {
		if sameIdentity(existing, item) {
			continue
		}
		kept = append(kept, existing)
	}

	s.items = append([]models.WatchedItem{item}, kept...)
	if len(s.items) > maxEntries {
		s.items = s.items[:maxEntries]
	}

	if err := s.saveLocked(); err != nil {
		return models.WatchedItem{}, err
	}
	return item, nil
}

// Clear empties the list.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.saveLocked()
}

// sameIdentity matches the dedup contract: TV entries are distinct per
// season/episode, movies per id.
func sameIdentity(a, b models.WatchedItem) bool {
	if a.ID != b.ID {
		return false
	}
	if b.Show.MediaType == models.MediaTypeTV {
		return a.SeasonNumber == b.SeasonNumber && a.EpisodeNumber == b.EpisodeNumber
	}
	return true
}

func (s *Service) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.items = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("open recents: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read recents: %w", err)
	}
	if len(data) == 0 {
		s.items = nil
		return nil
	}

	var decoded []models.WatchedItem
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode recents: %w", err)
	}
	if len(decoded) > maxEntries {
		decoded = decoded[:maxEntries]
	}
	s.items = decoded
	return nil
}

func (s *Service) saveLocked() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recents: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write recents: %w", err)
	}
	return nil
}
