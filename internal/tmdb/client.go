package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reelterm/reel/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "Reel/1.0"
)

// Client implements domain.CatalogRepository against the TMDB v3 API.
// The API key is injected as a query parameter on every call. Requests
// are never retried; the fixed client timeout is the only deadline
// beyond the caller's context.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, apiKey, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET and returns the raw body
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	if c.language != "" {
		query.Set("language", c.language)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var status statusResponse
		if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
			c.logger.Error("catalog error response", "path", path, "status", resp.StatusCode, "message", status.StatusMessage)
			return nil, fmt.Errorf("%w: %s (status %d)", domain.ErrUpstream, status.StatusMessage, resp.StatusCode)
		}
		c.logger.Error("catalog error response", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	return body, nil
}

// getList fetches a paginated listing and maps the results sequence
func (c *Client) getList(ctx context.Context, media domain.MediaType, path string, query url.Values) ([]domain.MediaItem, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	if media == domain.MediaTypeTV {
		var envelope tvListResponse
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
		}
		return mapTVs(envelope.Results), nil
	}

	var envelope movieListResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}
	return mapMovies(envelope.Results), nil
}

func pageQuery(page int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}

// Trending returns the weekly trending listing
func (c *Client) Trending(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	path := fmt.Sprintf("/trending/%s/week", media)
	return c.getList(ctx, media, path, pageQuery(page))
}

// Popular returns the popular listing
func (c *Client) Popular(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	path := fmt.Sprintf("/%s/popular", media)
	return c.getList(ctx, media, path, pageQuery(page))
}

// TopRated returns the top-rated listing
func (c *Client) TopRated(ctx context.Context, media domain.MediaType, page int) ([]domain.MediaItem, error) {
	path := fmt.Sprintf("/%s/top_rated", media)
	return c.getList(ctx, media, path, pageQuery(page))
}

// Search returns free-text search results
func (c *Client) Search(ctx context.Context, media domain.MediaType, query string, page int) ([]domain.MediaItem, error) {
	values := pageQuery(page)
	values.Set("query", query)
	path := fmt.Sprintf("/search/%s", media)
	return c.getList(ctx, media, path, values)
}

// Details returns the full record for a single item
func (c *Client) Details(ctx context.Context, media domain.MediaType, id int64) (*domain.MediaDetails, error) {
	path := fmt.Sprintf("/%s/%d", media, id)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	if media == domain.MediaTypeTV {
		var dto tvDetailsDTO
		if err := json.Unmarshal(body, &dto); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
		}
		return mapTVDetails(dto), nil
	}

	var dto movieDetailsDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPayload, err)
	}
	return mapMovieDetails(dto), nil
}
