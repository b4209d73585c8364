package kinopoisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"kinonote/internal/apierr"
	"kinonote/internal/logging"
	"kinonote/internal/validate"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.kinopoisk.dev"

	searchPath = "/v1.4/movie/search"
	moviePath  = "/v1.4/movie"

	authHeader = "X-API-KEY"

	// searchLimit caps how many documents one search request asks for.
	searchLimit = 50
)

// Fetcher defines the lookup operations the rest of the tool consumes.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]SearchItem, error)
	MovieByID(ctx context.Context, id int64) (*Movie, error)
	ValidateToken(ctx context.Context) bool
}

// Client talks to the metadata API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a metadata API client. Token validity is checked per call so
// that ValidateToken can probe without a construction error path.
func New(token, baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		token:      strings.TrimSpace(token),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Search looks up titles matching query and returns the raw documents.
func (c *Client) Search(ctx context.Context, query string) ([]SearchItem, error) {
	if !validate.Query(query) {
		return nil, fmt.Errorf("search: %w: query must not be blank", apierr.ErrInvalidInput)
	}
	if !validate.Token(c.token) {
		return nil, fmt.Errorf("search: %w: api token must not be blank", apierr.ErrInvalidInput)
	}

	params := url.Values{}
	setParam(params, "page", "1")
	setParam(params, "limit", strconv.Itoa(searchLimit))
	setParam(params, "query", strings.TrimSpace(query))

	var payload SearchResponse
	if err := c.get(ctx, searchPath, params, &payload); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(payload.Docs) == 0 {
		return nil, fmt.Errorf("search: %w: no matches for query %q", apierr.ErrEmptyResult, query)
	}
	return payload.Docs, nil
}

// MovieByID fetches the full record for one title.
func (c *Client) MovieByID(ctx context.Context, id int64) (*Movie, error) {
	if !validate.MovieID(id) {
		return nil, fmt.Errorf("fetch movie: %w: id must be positive", apierr.ErrInvalidInput)
	}
	if !validate.Token(c.token) {
		return nil, fmt.Errorf("fetch movie: %w: api token must not be blank", apierr.ErrInvalidInput)
	}

	var payload Movie
	if err := c.get(ctx, fmt.Sprintf("%s/%d", moviePath, id), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch movie %d: %w", id, err)
	}
	if payload.ID == 0 && strings.TrimSpace(payload.Name) == "" {
		return nil, fmt.Errorf("fetch movie %d: %w: empty record", id, apierr.ErrEmptyResult)
	}
	return &payload, nil
}

// ValidateToken issues a minimal probe request and reports whether the
// token is accepted. It never returns an error.
func (c *Client) ValidateToken(ctx context.Context) bool {
	if !validate.Token(c.token) {
		return false
	}
	params := url.Values{}
	setParam(params, "page", "1")
	setParam(params, "limit", "1")

	var payload SearchResponse
	if err := c.get(ctx, moviePath, params, &payload); err != nil {
		c.logger.Debug("token probe rejected", logging.Error(err))
		return false
	}
	return true
}

// get performs one GET and decodes the body, translating every failure.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	target, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return apierr.Translate(0, fmt.Errorf("parse url: %w", err))
	}
	if len(params) > 0 {
		target.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return apierr.Translate(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set(authHeader, c.token)

	requestID := uuid.NewString()
	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		c.logger.Error("api request failed",
			logging.String("endpoint", endpoint),
			logging.String("request_id", requestID),
			logging.Duration("latency", latency),
			logging.Error(err),
		)
		return apierr.Translate(0, fmt.Errorf("execute request (latency=%v): %w", latency, err))
	}
	defer resp.Body.Close()

	c.logger.Debug("api response",
		logging.String("endpoint", endpoint),
		logging.String("request_id", requestID),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)

	if resp.StatusCode != http.StatusOK {
		return apierr.Translate(resp.StatusCode, decodeAPIError(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.Translate(0, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// apiError is the error payload shape the API returns alongside non-200
// statuses.
type apiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func decodeAPIError(body io.Reader) error {
	var payload apiError
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil
	}
	if strings.TrimSpace(payload.Message) == "" {
		return nil
	}
	return fmt.Errorf("api message: %s", payload.Message)
}

// setParam stores a query parameter only when the value is non-empty.
func setParam(params url.Values, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	params.Set(key, value)
}
