package embed

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"streamverse/models"
)

// ErrNoStream reports that every provider was probed without success.
// The watch page shows this as "no working stream found"; it is not
// retried automatically.
var ErrNoStream = errors.New("no working stream found")

// Resolver probes a priority-ordered list of third-party embed URL
// templates and returns the first one that answers 200. Templates
// interpolate {id}, and for TV {season} and {episode}.
type Resolver struct {
	movieTemplates []string
	tvTemplates    []string
	httpc          *http.Client
}

func NewResolver(movieTemplates, tvTemplates []string, httpc *http.Client) *Resolver {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Resolver{
		movieTemplates: movieTemplates,
		tvTemplates:    tvTemplates,
		httpc:          httpc,
	}
}

// Resolve probes the templates for the target's media kind strictly in
// priority order, one attempt each, and returns the first URL whose
// response status is exactly 200. Probes are sequential on purpose: a
// lower-priority provider must never preempt a higher-priority one by
// racing it. Network and DNS failures count as non-matches. Results are
// never cached; providers change availability over time, so every watch
// navigation probes fresh.
func (r *Resolver) Resolve(ctx context.Context, target models.EmbedTarget) (string, error) {
	templates := r.movieTemplates
	if target.MediaKind == models.MediaTypeTV {
		templates = r.tvTemplates
	}

	season := target.SeasonNumber
	if season < 1 {
		season = 1
	}
	episode := target.EpisodeNumber
	if episode < 1 {
		episode = 1
	}

	for _, template := range templates {
		candidate := expandTemplate(template, target.ContentID, season, episode)
		ok, err := r.probe(ctx, candidate)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Printf("[embed] probe error for %s: %v", candidate, err)
			continue
		}
		if ok {
			return candidate, nil
		}
	}
	return "", ErrNoStream
}

func (r *Resolver) probe(ctx context.Context, candidate string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode == http.StatusOK, nil
}

func expandTemplate(template, id string, season, episode int) string {
	return strings.NewReplacer(
		"{id}", id,
		"{season}", strconv.Itoa(season),
		"{episode}", strconv.Itoa(episode),
	).Replace(template)
}
