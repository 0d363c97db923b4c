package golfdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
	"github.com/fairwaypool/golf-pickem/internal/platform/resilience"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

const (
	defaultAPIHost   = "live-golf-data.p.rapidapi.com"
	defaultOrgID     = "1" // PGA Tour
	maxResponseBytes = 4 << 20
)

var errGolfDataTransient = crerr.New("golf data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the RapidAPI live golf data service. It implements
// usecase.EarningsProvider and usecase.RosterProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	apiHost        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		apiHost = defaultAPIHost
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://" + apiHost
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		apiHost:        apiHost,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchEarnings pulls the official money list for one tournament. The
// bool result is false when the provider has no leaderboard for it yet.
func (c *Client) FetchEarnings(ctx context.Context, tournamentID string, year int) ([]usecase.EarningsRecord, bool, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, false, fmt.Errorf("tournament id is required")
	}
	if year <= 0 {
		return nil, false, fmt.Errorf("year must be greater than zero")
	}

	query := map[string]string{
		"tournId": tournamentID,
		"year":    strconv.Itoa(year),
	}

	var doc earningsDocument
	if err := c.doJSON(ctx, "/earnings", query, &doc); err != nil {
		return nil, false, fmt.Errorf("fetch earnings tourn_id=%s year=%d: %w", tournamentID, year, err)
	}

	records := mapLeaderboard(doc.Leaderboard)
	if len(records) == 0 {
		return nil, false, nil
	}

	return records, true, nil
}

// FetchField pulls the entrant list for one tournament.
func (c *Client) FetchField(ctx context.Context, tournamentID string, year int) ([]usecase.FieldGolfer, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("tournament id is required")
	}
	if year <= 0 {
		return nil, fmt.Errorf("year must be greater than zero")
	}

	query := map[string]string{
		"orgId":   defaultOrgID,
		"tournId": tournamentID,
		"year":    strconv.Itoa(year),
	}

	var doc tournamentDocument
	if err := c.doJSON(ctx, "/tournament", query, &doc); err != nil {
		return nil, fmt.Errorf("fetch tournament field tourn_id=%s year=%d: %w", tournamentID, year, err)
	}
	if doc.Players == nil {
		return nil, fmt.Errorf("provider returned no players for tournament %s", tournamentID)
	}

	return mapFieldPlayers(doc.Players), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "golf data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: golf data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errGolfDataTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.apiHost)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errGolfDataTransient, redactSecret(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errGolfDataTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errGolfDataTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "golf data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func redactSecret(value, secret string) string {
	value = strings.TrimSpace(value)
	if secret == "" {
		return value
	}
	return strings.ReplaceAll(value, secret, "REDACTED")
}
