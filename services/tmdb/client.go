package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	retry "github.com/avast/retry-go/v4"

	"streamverse/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// UpstreamError is a non-2xx or transport-level failure from the media
// API. Callers decide whether it is fatal or recoverable.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream request failed: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream request failed: status %d", e.StatusCode)
}

// upstreamErrorBody is the API's error envelope; only the message is kept.
type upstreamErrorBody struct {
	StatusMessage string `json:"status_message"`
}

// Client issues GET requests against one fixed base origin. All calls
// carry language=en-US (or the configured language) and, when set, the
// API key. Memoization is handled by the RequestCache passed per call,
// never by the client itself.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	httpc    *http.Client
}

func NewClient(baseURL, apiKey, language string, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if language == "" {
		language = "en-US"
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpc:    httpc,
	}
}

// get fetches path (a path+query string relative to the base origin) and
// decodes the JSON body into v, memoizing through the cache when one is
// supplied.
func (c *Client) get(ctx context.Context, cache *RequestCache, path string, v any) error {
	endpoint := c.baseURL + path
	if c.apiKey != "" {
		sep := "?"
		if containsQuery(path) {
			sep = "&"
		}
		endpoint += sep + "api_key=" + url.QueryEscape(c.apiKey)
	}

	fetch := func() ([]byte, error) { return c.doGET(ctx, endpoint) }

	var (
		body []byte
		err  error
	)
	if cache != nil {
		body, err = cache.Do(path, fetch)
	} else {
		body, err = fetch()
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// doGET performs the HTTP GET, retrying rate limits and server errors
// with backoff. Client errors (4xx other than 429) are not retried.
func (c *Client) doGET(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpc.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := readBody(resp)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 400 {
				uerr := &UpstreamError{StatusCode: resp.StatusCode, Message: parseStatusMessage(data)}
				if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
					return uerr
				}
				return retry.Unrecoverable(uerr)
			}
			body = data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// readBody drains the response with an upper bound; upstream payloads are
// small paginated lists.
func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

func parseStatusMessage(data []byte) string {
	var body upstreamErrorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.StatusMessage
}

func containsQuery(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] == '?' {
			return true
		}
	}
	return false
}

// ExecuteCategory runs one category request through the planner.
func (c *Client) ExecuteCategory(ctx context.Context, cache *RequestCache, req models.CategoryRequest) (*models.PaginatedShowResponse, error) {
	path, err := PlanURL(req.Kind, req.MediaKind, req.Genre, req.Page)
	if err != nil {
		return nil, err
	}
	var resp models.PaginatedShowResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Find fetches a title's base details.
func (c *Client) Find(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id int) (*models.Show, error) {
	path := fmt.Sprintf("/%s/%d?language=%s", mediaKind, id, url.QueryEscape(c.language))
	var show models.Show
	if err := c.get(ctx, cache, path, &show); err != nil {
		return nil, err
	}
	if show.MediaType == "" {
		show.MediaType = mediaKind
	}
	return &show, nil
}

// FindWithVideos fetches a title's details with its video list appended,
// which drives the details overlay and trailer selection.
func (c *Client) FindWithVideos(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id int) (*models.Show, error) {
	path := fmt.Sprintf("/%s/%d?language=%s&append_to_response=videos", mediaKind, id, url.QueryEscape(c.language))
	var show models.Show
	if err := c.get(ctx, cache, path, &show); err != nil {
		return nil, err
	}
	if show.MediaType == "" {
		show.MediaType = mediaKind
	}
	return &show, nil
}

// SeasonDetails fetches one season of a TV series with its episodes.
func (c *Client) SeasonDetails(ctx context.Context, cache *RequestCache, tvID, season int) (*models.SeasonResponse, error) {
	path := fmt.Sprintf("/tv/%d/season/%d?language=%s", tvID, season, url.QueryEscape(c.language))
	var resp models.SeasonResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Credits fetches the cast and crew list for a title.
func (c *Client) Credits(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id string) (*models.CreditsResponse, error) {
	path := fmt.Sprintf("/%s/%s/credits?language=%s", mediaKind, url.PathEscape(id), url.QueryEscape(c.language))
	var resp models.CreditsResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommendations fetches page 1 of a title's recommendations.
func (c *Client) Recommendations(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error) {
	path := fmt.Sprintf("/%s/%s/recommendations?language=%s&page=1", mediaKind, url.PathEscape(id), url.QueryEscape(c.language))
	var resp models.PaginatedShowResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Similar fetches page 1 of titles similar to the given one. Used as the
// fallback when recommendations come back empty or missing.
func (c *Client) Similar(ctx context.Context, cache *RequestCache, mediaKind models.MediaType, id string) (*models.PaginatedShowResponse, error) {
	path := fmt.Sprintf("/%s/%s/similar?language=%s&page=1", mediaKind, url.PathEscape(id), url.QueryEscape(c.language))
	var resp models.PaginatedShowResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchMulti searches movies and series in one call, sorted by
// popularity descending. This is the only ranking the system applies.
func (c *Client) SearchMulti(ctx context.Context, cache *RequestCache, query string, page int) (*models.PaginatedShowResponse, error) {
	if page < 1 {
		page = 1
	}
	path := "/search/multi?query=" + url.QueryEscape(query) +
		"&language=" + url.QueryEscape(c.language) +
		"&page=" + strconv.Itoa(page)
	var resp models.PaginatedShowResponse
	if err := c.get(ctx, cache, path, &resp); err != nil {
		return nil, err
	}
	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].Popularity > resp.Results[j].Popularity
	})
	return &resp, nil
}
