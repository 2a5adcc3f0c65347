// Package nba is the typed client for the NBA data, stats and media hosts.
package nba

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JerelRocktaschel/jumpshot/internal/endpoints"
	"github.com/JerelRocktaschel/jumpshot/internal/envelope"
	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/metrics"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
	"github.com/JerelRocktaschel/jumpshot/internal/season"
)

// Config controls how the client reaches the upstream hosts.
type Config struct {
	Catalog    endpoints.Catalog
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	Seasons    *season.Resolver
}

// Client fetches NBA records and maps them to domain models. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	catalog    endpoints.Catalog
	httpClient httpDoer
	userAgent  string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	seasons    *season.Resolver
	now        func() time.Time
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	seasons := cfg.Seasons
	if seasons == nil {
		seasons = season.NewResolver(season.DefaultCutoff)
	}
	return &Client{
		catalog:    cfg.Catalog.WithDefaults(),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		seasons:    seasons,
		now:        time.Now,
	}
}

// CurrentSeason returns the season year the client treats as current.
func (c *Client) CurrentSeason() string {
	return c.seasons.Current()
}

// checkSeason guards every season-scoped operation before a request is built.
func (c *Client) checkSeason(op endpoints.Kind, value string) error {
	if _, err := c.seasons.Validate(value); err != nil {
		return fmt.Errorf("%s: %w", op, &providers.InvalidParameterError{
			Name:   "season",
			Value:  value,
			Reason: err.Error(),
		})
	}
	return nil
}

// document fetches op and parses the payload.
func (c *Client) document(ctx context.Context, op endpoints.Operation) (envelope.Document, error) {
	body, err := c.fetch(ctx, op)
	if err != nil {
		return envelope.Document{}, err
	}
	doc, err := envelope.Parse(body)
	if err != nil {
		return envelope.Document{}, c.decodeFailed(ctx, op, err)
	}
	return doc, nil
}

// decodeFailed logs and wraps a normalization or decode failure.
func (c *Client) decodeFailed(ctx context.Context, op endpoints.Operation, err error) error {
	logging.Warn(logging.FromContext(ctx, c.logger), "decode failed",
		logging.FieldOperation, op.Kind.String(),
		logging.FieldError, err,
	)
	return fmt.Errorf("%s: %w", op.Kind, err)
}

// fetch issues exactly one GET for op and returns the body of a successful response.
func (c *Client) fetch(ctx context.Context, op endpoints.Operation) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resolved := c.catalog.Resolve(op)
	kind := op.Kind.String()
	logger := logging.FromContext(ctx, c.logger)

	logging.Debug(logger, "upstream request",
		logging.FieldOperation, kind,
		logging.FieldURL, resolved.URL(),
	)

	start := c.now()
	body, status, err := c.do(ctx, kind, resolved.URL())
	duration := c.now().Sub(start)

	outcome := ""
	if status > 0 {
		outcome = providers.Classify(status).String()
	}
	c.metrics.RecordUpstreamCall(kind, outcome, duration, err)

	if err != nil {
		logging.Warn(logger, "upstream request failed",
			logging.FieldOperation, kind,
			logging.FieldURL, resolved.URL(),
			logging.FieldStatusCode, status,
			logging.FieldDurationMS, duration.Milliseconds(),
			logging.FieldError, err,
		)
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, kind, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &providers.TransportError{Operation: kind, Err: err}
	}
	setBrowserHeaders(req, c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &providers.TransportError{Operation: kind, Err: err}
	}
	defer resp.Body.Close()

	if outcome := providers.Classify(resp.StatusCode); outcome != providers.OutcomeSuccess {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, &providers.StatusError{
			Operation:  kind,
			StatusCode: resp.StatusCode,
			Outcome:    outcome,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &providers.TransportError{Operation: kind, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, resp.StatusCode, fmt.Errorf("%s: %w", kind, providers.ErrNoData)
	}
	return body, resp.StatusCode, nil
}
