// Package ergast provides the HTTP client for the Ergast-compatible
// racing statistics API (served by the Jolpica mirror).
//
// All endpoints are read-only GETs returning the MRData envelope.
// Transient network failures are retried with linear backoff behind a
// circuit breaker; a request that exhausts its retry budget surfaces as
// an error the aggregation layer treats as "no data", never as fatal.
package ergast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/f1nsight/f1nsight-api/internal/cache"
)

// RetryPolicy controls retry behavior for transient upstream failures.
// Delay before attempt n (1-based, first attempt has no delay) is
// n * BaseDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the upstream's documented fair-use guidance.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}

func (p RetryPolicy) delay(attempt int) time.Duration {
	return time.Duration(attempt) * p.BaseDelay
}

// ClientConfig configures the upstream client.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	Retry             RetryPolicy
}

// Client is the HTTP client for all statistics endpoints. Successful
// response bodies are written to the shared cache keyed by the exact
// request URL, so repeated aggregation calls within a cache window cost
// no upstream traffic.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.Cache
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	retry      RetryPolicy
	sleep      func(time.Duration) // injectable for retry tests
	logger     *slog.Logger
}

// NewClient creates a statistics API client with rate limiting and a
// circuit breaker.
func NewClient(cfg ClientConfig, appCache *cache.Cache, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 200
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryPolicy
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		cache:      appCache,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 5),
		retry:      cfg.Retry,
		sleep:      time.Sleep,
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "ergast",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("upstream breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// get fetches an API path (e.g. "/2024/driverStandings.json") and decodes
// the MRData envelope. The cache is consulted first; a hit skips the
// network entirely.
func (c *Client) get(ctx context.Context, path string) (*MRData, error) {
	u := c.baseURL + path

	if data, _, ok := c.cache.Get(u); ok {
		return decodeEnvelope(data)
	}

	body, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	c.cache.Set(u, body, cache.TTLSeason)
	return env, nil
}

// fetch performs the GET with retries. Only transport-level failures and
// non-200 statuses are retried; a 200 with an empty table is a valid
// response and is returned as-is.
func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			c.sleep(c.retry.delay(attempt))
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.doRequest(ctx, u)
		})
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Debug("upstream fetch retry", "url", u, "attempt", attempt+1, "error", err)
	}

	c.logger.Warn("upstream fetch failed", "url", u, "attempts", c.retry.MaxAttempts, "error", lastErr)
	return nil, fmt.Errorf("fetch %s after %d attempts: %w", u, c.retry.MaxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

func decodeEnvelope(body []byte) (*MRData, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &p.MRData, nil
}

// SetSleep replaces the backoff sleeper. Test hook.
func (c *Client) SetSleep(sleep func(time.Duration)) { c.sleep = sleep }

// --------------------------------------------------------------------------
// Endpoint methods — thin URL builders over get
// --------------------------------------------------------------------------

// Seasons returns the full season list (limit raised past the default 30).
func (c *Client) Seasons(ctx context.Context) (*MRData, error) {
	return c.get(ctx, "/seasons.json?limit=100")
}

// DriverSeasons returns the seasons a driver participated in.
func (c *Client) DriverSeasons(ctx context.Context, driverID string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/drivers/%s/seasons.json?limit=100", url.PathEscape(driverID)))
}

// Drivers returns the driver roster for a season.
func (c *Client) Drivers(ctx context.Context, season string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/drivers.json", url.PathEscape(season)))
}

// Driver returns a single driver's record.
func (c *Client) Driver(ctx context.Context, driverID string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/drivers/%s.json", url.PathEscape(driverID)))
}

// DriverStandings returns the driver championship standings for a season.
func (c *Client) DriverStandings(ctx context.Context, season string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/driverStandings.json", url.PathEscape(season)))
}

// DriverSeasonStanding returns a single driver's standing within a season.
func (c *Client) DriverSeasonStanding(ctx context.Context, season, driverID string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/drivers/%s/driverStandings.json",
		url.PathEscape(season), url.PathEscape(driverID)))
}

// ConstructorStandings returns the constructor championship standings.
func (c *Client) ConstructorStandings(ctx context.Context, season string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/constructorStandings.json", url.PathEscape(season)))
}

// Races returns the race calendar for a season.
func (c *Client) Races(ctx context.Context, season string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s.json", url.PathEscape(season)))
}

// RoundResults returns the full results of one race.
func (c *Client) RoundResults(ctx context.Context, season, round string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/%s/results.json",
		url.PathEscape(season), url.PathEscape(round)))
}

// DriverResults returns a driver's results across a season.
func (c *Client) DriverResults(ctx context.Context, season, driverID string) (*MRData, error) {
	return c.get(ctx, fmt.Sprintf("/%s/drivers/%s/results.json",
		url.PathEscape(season), url.PathEscape(driverID)))
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
