package models

// MediaType distinguishes the two media namespaces served by the upstream
// API. Identifiers are only unique within one namespace.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether the value is one of the two accepted media types.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// Show is a single movie or TV entry in the upstream API's list shape.
// Movies carry Title/ReleaseDate, series carry Name/FirstAirDate; both use
// the same struct the way the upstream mixes them in one results array.
type Show struct {
	ID               int       `json:"id"`
	Title            string    `json:"title,omitempty"`
	Name             string    `json:"name,omitempty"`
	Overview         string    `json:"overview"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	Popularity       float64   `json:"popularity"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	FirstAirDate     string    `json:"first_air_date,omitempty"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	MediaType        MediaType `json:"media_type,omitempty"`
	GenreIDs         []int     `json:"genre_ids,omitempty"`

	// Populated only by the detail endpoint.
	Genres           []Genre    `json:"genres,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	Videos           *VideoList `json:"videos,omitempty"`

	// Set server-side for hero items; never present in upstream payloads.
	HeroVideoKey string `json:"heroVideoKey,omitempty"`
}

// DisplayName returns the movie title or series name, whichever is set.
func (s Show) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is one entry of a title's video list (trailers, teasers, clips).
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

// PaginatedShowResponse is the upstream list envelope. Only Results is
// interpreted beyond passthrough.
type PaginatedShowResponse struct {
	Page         int    `json:"page"`
	Results      []Show `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Category is one named browsing rail on a listing page.
type Category struct {
	Title   string `json:"title"`
	Shows   []Show `json:"shows"`
	Visible bool   `json:"visible"`
}

// BrowseResponse is the payload for a listing page: its rails plus the
// rotating banner selection.
type BrowseResponse struct {
	Categories []Category `json:"categories"`
	Hero       []Show     `json:"hero"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	Job         string `json:"job,omitempty"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order,omitempty"`
}

type CreditsResponse struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CastMember `json:"crew"`
}

type Episode struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	StillPath     string `json:"still_path,omitempty"`
	AirDate       string `json:"air_date,omitempty"`
	Runtime       int    `json:"runtime,omitempty"`
}

// SeasonResponse is the upstream season detail shape for a TV series.
type SeasonResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	SeasonNumber int       `json:"season_number"`
	PosterPath   string    `json:"poster_path,omitempty"`
	AirDate      string    `json:"air_date,omitempty"`
	Episodes     []Episode `json:"episodes"`
}
