package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/customHttpClient"
	"fdalabel-api/internal/data/cacheStore"
	"fdalabel-api/internal/domain/labelModel"
	"fdalabel-api/internal/metrics"
	"fdalabel-api/pkg/logger_i"
)

type apiResponse struct {
	Meta struct {
		Results struct {
			Total int `json:"total"`
		} `json:"results"`
	} `json:"meta"`
	Results []labelModel.DrugLabel `json:"results"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the openFDA drug-label endpoint. It is safe for concurrent
// use; the only mutable state is the shared connection pool and the cache.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      cacheStore.ResponseCache
	logger     *logger_i.Logger
}

func NewClient(cache cacheStore.ResponseCache) *Client {
	return &Client{
		baseURL:    config.OpenFDABaseURL,
		apiKey:     config.GetFDAAPIKey(),
		httpClient: customHttpClient.GetPooledClient(),
		cache:      cache,
		logger:     logger_i.NewLogger("OpenFDA Client"),
	}
}

// NewTestClient points the client at a stand-in server. Test use only.
func NewTestClient(baseURL string, httpClient *http.Client, cache cacheStore.ResponseCache) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      cache,
		logger:     logger_i.NewLogger("OpenFDA Test Client"),
	}
}

func (c *Client) Fetch(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
	requestURL := c.buildURL(searchExpr, skip, limit)

	body, err := c.fetchBody(ctx, requestURL)
	if err != nil {
		return labelModel.SearchResult{}, err
	}
	if body == "" {
		// openFDA answers 404 with a NOT_FOUND payload when nothing matches
		return labelModel.SearchResult{}, nil
	}

	var decoded apiResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return labelModel.SearchResult{}, fmt.Errorf("decoding openFDA response: %w", err)
	}

	return labelModel.SearchResult{
		Labels:     decoded.Results,
		TotalCount: decoded.Meta.Results.Total,
	}, nil
}

func (c *Client) buildURL(searchExpr string, skip int, limit int) string {
	params := url.Values{}
	if searchExpr != "" {
		params.Set("search", searchExpr)
	}
	params.Set("limit", strconv.Itoa(limit))
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	return c.baseURL + "?" + params.Encode()
}

func (c *Client) fetchBody(ctx context.Context, requestURL string) (string, error) {
	if c.cache != nil {
		if cached, found := c.cache.Get(ctx, requestURL); found {
			metrics.CountCacheHit()
			c.logger.Debug("Upstream response served from cache")
			return cached, nil
		}
		metrics.CountCacheMiss()
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("openfda_fetch", time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("building openFDA request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openFDA: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading openFDA response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Debug("openFDA returned no matches")
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("openFDA rejected the query (%d %s): %s",
				resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return "", fmt.Errorf("openFDA returned status %d", resp.StatusCode)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, requestURL, string(raw), config.ResponseCacheTTL); err != nil {
			c.logger.Error("Failed to cache upstream response", "error", err)
		}
	}
	return string(raw), nil
}
