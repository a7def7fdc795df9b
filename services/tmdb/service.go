package tmdb

import (
	"context"

	"streamverse/models"
)

// One-shot operations used by the details overlay, the watch page and
// search. Each runs outside a render pass, so no request cache applies.

func (s *Service) Details(ctx context.Context, mediaKind models.MediaType, id int) (*models.Show, error) {
	return s.client.FindWithVideos(ctx, nil, mediaKind, id)
}

func (s *Service) SeasonDetails(ctx context.Context, tvID, season int) (*models.SeasonResponse, error) {
	return s.client.SeasonDetails(ctx, nil, tvID, season)
}

func (s *Service) Credits(ctx context.Context, mediaKind models.MediaType, id string) (*models.CreditsResponse, error) {
	return s.client.Credits(ctx, nil, mediaKind, id)
}

func (s *Service) Recommendations(ctx context.Context, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error) {
	return s.client.Recommendations(ctx, nil, mediaKind, id)
}

func (s *Service) Similar(ctx context.Context, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error) {
	return s.client.Similar(ctx, nil, mediaKind, id)
}

func (s *Service) Search(ctx context.Context, query string, page int) (*models.PaginatedShowResponse, error) {
	return s.client.SearchMulti(ctx, nil, query, page)
}
