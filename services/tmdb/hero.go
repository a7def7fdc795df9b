package tmdb

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/pool"

	"streamverse/models"
)

// MaxHeroItems bounds the rotating banner selection.
const MaxHeroItems = 5

// SelectHero picks up to max distinct items to feature in the banner.
// The strict pass walks categories and items in order accepting only
// backdrop-bearing items; if that under-fills, a relaxed pass walks again
// accepting any remaining item. Insertion order is first-seen,
// first-selected; there is no shuffling or scoring. An empty input yields
// an empty selection, never an error.
func SelectHero(categories []models.Category, max int) []models.Show {
	if max <= 0 {
		max = MaxHeroItems
	}

	selected := make([]models.Show, 0, max)
	seen := make(map[int]bool, max)

	pick := func(requireBackdrop bool) {
		for _, category := range categories {
			for _, show := range category.Shows {
				if len(selected) >= max {
					return
				}
				if seen[show.ID] {
					continue
				}
				if requireBackdrop && show.BackdropPath == "" {
					continue
				}
				seen[show.ID] = true
				selected = append(selected, show)
			}
		}
	}

	pick(true)
	if len(selected) < max {
		pick(false)
	}
	return selected
}

// AttachTrailerKeys resolves a representative trailer for each hero item
// in place. Lookups are independent and run concurrently, bounded by the
// hero size. A missing trailer or failed lookup leaves the item without a
// key; it is not an error.
func (s *Service) AttachTrailerKeys(ctx context.Context, cache *RequestCache, hero []models.Show) {
	if len(hero) == 0 {
		return
	}

	p := pool.New().WithMaxGoroutines(len(hero))
	for i := range hero {
		i := i
		p.Go(func() {
			key, err := s.TrailerKey(ctx, cache, hero[i].MediaType, hero[i].ID)
			if err != nil {
				log.Printf("[tmdb] trailer lookup failed for %s %d: %v", hero[i].MediaType, hero[i].ID, err)
				return
			}
			hero[i].HeroVideoKey = key
		})
	}
	p.Wait()
}

// TrailerKey returns the YouTube key of a title's trailer, preferring an
// official one. An empty key means the title has no usable trailer.
func (s *Service) TrailerKey(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id int) (string, error) {
	show, err := s.client.FindWithVideos(ctx, cache, mediaKind, id)
	if err != nil {
		return "", err
	}
	if show.Videos == nil {
		return "", nil
	}

	fallback := ""
	for _, video := range show.Videos.Results {
		if video.Type != "Trailer" || video.Site != "YouTube" {
			continue
		}
		if video.Official {
			return video.Key, nil
		}
		if fallback == "" {
			fallback = video.Key
		}
	}
	return fallback, nil
}
