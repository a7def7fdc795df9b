package tmdb

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"streamverse/models"
)

// ErrUnknownRequestKind reports a request kind with no planned upstream
// query shape. This is a programming mistake in a page's request list and
// should surface at startup or in tests, never be swallowed at runtime.
var ErrUnknownRequestKind = errors.New("request kind not implemented")

// discoverNetworkID is the streaming network used by network-filtered
// rails ("Netflix" rows in the original pages).
const discoverNetworkID = 213

// excludedGenres removes Talk and News entries from popular and genre
// rails, which would otherwise dominate TV discovery results.
var excludedGenres = fmt.Sprintf("%d,%d", models.GenreTalk, models.GenreNews)

// PlanURL maps a request kind plus parameters onto an upstream path and
// query string. The mapping is deterministic and side-effect free; every
// kind resolves to exactly one path shape.
func PlanURL(kind models.RequestKind, mediaKind models.MediaType, genre, page int) (string, error) {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("page", strconv.Itoa(page))

	switch kind {
	case models.RequestTrending:
		q.Set("with_original_language", "en")
		return fmt.Sprintf("/trending/%s/day?%s", mediaKind, q.Encode()), nil

	case models.RequestTopRated:
		q.Set("with_original_language", "en")
		return fmt.Sprintf("/%s/top_rated?%s", mediaKind, q.Encode()), nil

	case models.RequestNetwork:
		q.Set("with_original_language", "en")
		q.Set("with_networks", strconv.Itoa(discoverNetworkID))
		return fmt.Sprintf("/discover/%s?%s", mediaKind, q.Encode()), nil

	case models.RequestPopular:
		q.Set("with_original_language", "en")
		q.Set("without_genres", excludedGenres)
		return fmt.Sprintf("/%s/popular?%s", mediaKind, q.Encode()), nil

	case models.RequestGenre:
		q.Set("with_original_language", "en")
		q.Set("with_genres", strconv.Itoa(genre))
		q.Set("without_genres", excludedGenres)
		return fmt.Sprintf("/discover/%s?%s", mediaKind, q.Encode()), nil

	case models.RequestKorean:
		q.Set("with_original_language", "ko")
		q.Set("with_genres", strconv.Itoa(genre))
		return fmt.Sprintf("/discover/%s?%s", mediaKind, q.Encode()), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRequestKind, kind)
}
