package models

// RequestKind is the closed set of upstream query shapes a browsing rail
// can be built from. Each kind maps to exactly one upstream path shape in
// the request planner; an unknown kind is a configuration error.
type RequestKind string

const (
	RequestTrending RequestKind = "trending"
	RequestTopRated RequestKind = "top_rated"
	RequestPopular  RequestKind = "popular"
	RequestNetwork  RequestKind = "network"
	RequestGenre    RequestKind = "genre"
	RequestKorean   RequestKind = "korean"
)

// CategoryRequest declares one rail of a listing page. The lists are
// static per page and immutable.
type CategoryRequest struct {
	Title     string      `json:"title"`
	Kind      RequestKind `json:"kind"`
	MediaKind MediaType   `json:"mediaKind"`
	Genre     int         `json:"genre,omitempty"`
	Page      int         `json:"page,omitempty"`
	Visible   bool        `json:"visible"`
}

// EmbedTarget identifies the content a watch page wants to play. Season
// and episode apply to TV only and default to 1 when unset.
type EmbedTarget struct {
	ContentID     string    `json:"contentId"`
	MediaKind     MediaType `json:"mediaKind"`
	SeasonNumber  int       `json:"seasonNumber,omitempty"`
	EpisodeNumber int       `json:"episodeNumber,omitempty"`
}
