package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dugout/internal/scoreboard"
)

const (
	// DefaultBaseURL is the public MLB Stats API host.
	DefaultBaseURL = "https://statsapi.mlb.com"

	defaultTimeout = 30 * time.Second
	sportID        = "1"
	hydrateClause  = "team,linescore,decisions,probablePitcher(note=true)"
	dateLayout     = "2006-01-02"
)

// httpDoer abstracts the HTTP client so tests can inject a fake transport.
type httpDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the MLB schedule and maps it to scoreboard games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// FetchSchedule retrieves the games scheduled for date (YYYY-MM-DD, defaulting
// to today in local time). An empty schedule returns a nil slice and nil error.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]scoreboard.Game, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}

	if len(payload.Dates) == 0 {
		return nil, nil
	}

	games := make([]scoreboard.Game, 0, len(payload.Dates[0].Games))
	for _, g := range payload.Dates[0].Games {
		games = append(games, mapGame(g))
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/schedule", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", sportID)
	q.Set("date", c.resolveDate(date))
	q.Set("hydrate", hydrateClause)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err == nil {
			return date
		}
	}
	return c.now().Format(dateLayout)
}
