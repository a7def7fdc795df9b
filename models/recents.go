package models

// WatchedItem is one "recently started" entry. For TV the season/episode
// pair is part of the entry's identity, so two episodes of the same show
// coexist in the list; movies are deduplicated by id alone.
type WatchedItem struct {
	Show
	LastWatchedTimestamp int64   `json:"lastWatchedTimestamp"`
	CurrentTime          float64 `json:"currentTime,omitempty"`
	Duration             float64 `json:"duration,omitempty"`
	SeasonNumber         int     `json:"seasonNumber,omitempty"`
	EpisodeNumber        int     `json:"episodeNumber,omitempty"`
}
