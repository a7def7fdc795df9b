package tmdb

import (
	"context"
	"log"

	"github.com/sourcegraph/conc"

	"streamverse/models"
)

// backfillKinds lists the request kinds whose upstream payloads omit or
// mis-set the per-item media kind, so it is overwritten from the
// category's declared kind. Trending payloads carry a correct per-item
// kind and are never overwritten. The allow-list is the contract; kinds
// are never guessed per response.
var backfillKinds = map[models.RequestKind]bool{
	models.RequestTopRated: true,
	models.RequestNetwork:  true,
	models.RequestPopular:  true,
	models.RequestGenre:    true,
	models.RequestKorean:   true,
}

// Service assembles browsing rails and hero selections on top of the
// upstream client.
type Service struct {
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

type categoryOutcome struct {
	resp *models.PaginatedShowResponse
	err  error
}

// Aggregate executes the category requests as a true fan-out: every
// upstream call is launched before any is awaited, and each outcome is
// handled independently so one slow or failing rail never delays or
// fails the others. The result has the same length and order as the
// input; a failed category comes back with an empty item list.
func (s *Service) Aggregate(ctx context.Context, cache *RequestCache, requests []models.CategoryRequest) []models.Category {
	if cache == nil {
		cache = NewRequestCache()
	}

	outcomes := make([]categoryOutcome, len(requests))
	var wg conc.WaitGroup
	for i, req := range requests {
		i, req := i, req
		wg.Go(func() {
			resp, err := s.client.ExecuteCategory(ctx, cache, req)
			outcomes[i] = categoryOutcome{resp: resp, err: err}
		})
	}
	wg.Wait()

	categories := make([]models.Category, 0, len(requests))
	for i, req := range requests {
		out := outcomes[i]
		if out.err != nil {
			log.Printf("[tmdb] pass %s: category %q failed: %v", cache.ID(), req.Title, out.err)
			categories = append(categories, models.Category{
				Title:   req.Title,
				Shows:   []models.Show{},
				Visible: req.Visible,
			})
			continue
		}

		shows := out.resp.Results
		if shows == nil {
			shows = []models.Show{}
		}
		if backfillKinds[req.Kind] {
			for j := range shows {
				shows[j].MediaType = req.MediaKind
			}
		}
		categories = append(categories, models.Category{
			Title:   req.Title,
			Shows:   shows,
			Visible: req.Visible,
		})
	}
	return categories
}

// BrowsePage builds a full listing page: all rails plus the hero
// selection with trailer keys. One request cache spans the whole pass so
// the rails and the trailer lookups share in-flight de-duplication.
func (s *Service) BrowsePage(ctx context.Context, requests []models.CategoryRequest) ([]models.Category, []models.Show) {
	cache := NewRequestCache()
	categories := s.Aggregate(ctx, cache, requests)
	hero := SelectHero(categories, MaxHeroItems)
	s.AttachTrailerKeys(ctx, cache, hero)
	return categories, hero
}
