package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/logger"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/models"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Spoonacular API endpoint.
const DefaultBaseURL = "https://api.spoonacular.com"

const (
	endpointSearch = "complexSearch"
	endpointDetail = "information"

	// maxErrorBody caps how much of a failed response is kept for logging.
	maxErrorBody = 512
)

// Client implements RecipeProvider against the Spoonacular REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Spoonacular client. The API key is sent as the
// apiKey query parameter on every request.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search runs a complex recipe search and returns one page of results.
func (c *Client) Search(ctx context.Context, params models.SearchParams) (*models.ResultPage, error) {
	if params.Number <= 0 {
		params.Number = models.DefaultPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	values := searchValues(params)
	values.Set("apiKey", c.apiKey)

	reqURL := fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURL, values.Encode())

	var page models.ResultPage
	if err := c.getJSON(ctx, endpointSearch, "recipes", reqURL, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []models.RecipeSummary{}
	}
	page.Offset = params.Offset
	page.Number = params.Number
	return &page, nil
}

// GetByID fetches the full information of a single recipe.
func (c *Client) GetByID(ctx context.Context, id int) (*models.RecipeDetail, error) {
	values := url.Values{}
	values.Set("apiKey", c.apiKey)
	values.Set("includeNutrition", "true")

	reqURL := fmt.Sprintf("%s/recipes/%d/information?%s", c.baseURL, id, values.Encode())

	var detail models.RecipeDetail
	if err := c.getJSON(ctx, endpointDetail, "recipe", reqURL, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// searchValues encodes the search parameters. Filters are trimmed and
// omitted entirely when empty.
func searchValues(params models.SearchParams) url.Values {
	values := url.Values{}
	values.Set("number", strconv.Itoa(params.Number))
	values.Set("offset", strconv.Itoa(params.Offset))
	setIfPresent(values, "query", params.Query)
	setIfPresent(values, "cuisine", params.Cuisine)
	setIfPresent(values, "maxReadyTime", params.MaxReadyTime)
	return values
}

func setIfPresent(values url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		values.Set(key, v)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint, resource, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		if isTimeout(err) {
			upstreamRequestsTotal.WithLabelValues(endpoint, "timeout").Inc()
			return newTimeoutError(resource, err)
		}
		upstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return newTransportError(resource, err)
	}
	defer resp.Body.Close()

	upstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Get().Warn("recipe API returned non-success status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return newStatusError(resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return newTimeoutError(resource, err)
		}
		return fmt.Errorf("failed to parse %s response: %w", resource, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
