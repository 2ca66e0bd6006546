package swapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/metrics"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
)

// Request modes, used as metric and log labels.
const (
	ModePage   = "page"
	ModeSearch = "search"
	ModeDetail = "detail"
)

const maxBodyBytes = 8 << 20

// Client calls the upstream catalog. It is safe for concurrent use and shares
// one pooled transport across requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client from cfg. ConnectTimeout bounds dialing and
// ResponseTimeout bounds each whole request.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("swapi base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid swapi base URL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	transport.MaxIdleConnsPerHost = 32

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ResponseTimeout,
		},
		logger: logger.With(slog.String("component", "swapi_client")),
	}, nil
}

// ListPage fetches one page of a collection. A non-positive limit is omitted.
func (c *Client) ListPage(ctx context.Context, kind domain.ResourceKind, page, limit int) (*PageEnvelope, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var wire pageWire
	found, err := c.get(ctx, kind, ModePage, "", kind.Path(), params, &wire)
	if err != nil || !found {
		return nil, err
	}
	if wire.Results == nil {
		return nil, nil
	}
	return &PageEnvelope{
		Message:      wire.Message,
		TotalRecords: wire.TotalRecords,
		TotalPages:   wire.TotalPages,
		Previous:     wire.Previous,
		Next:         wire.Next,
		Items:        toItems(wire.Results),
	}, nil
}

// Search runs a name search against a collection.
func (c *Client) Search(ctx context.Context, kind domain.ResourceKind, query string) (*SearchEnvelope, error) {
	params := url.Values{}
	params.Set("search", query)

	var wire searchWire
	found, err := c.get(ctx, kind, ModeSearch, "", kind.Path(), params, &wire)
	if err != nil || !found {
		return nil, err
	}
	items := wire.Result
	if items == nil {
		items = wire.Results
	}
	if items == nil {
		return nil, nil
	}
	return &SearchEnvelope{Message: wire.Message, Items: toItems(items)}, nil
}

// Get fetches a single record by its upstream id.
func (c *Client) Get(ctx context.Context, kind domain.ResourceKind, id string) (*DetailEnvelope, error) {
	var wire detailWire
	found, err := c.get(ctx, kind, ModeDetail, id, kind.Path()+"/"+url.PathEscape(id), nil, &wire)
	if err != nil || !found {
		return nil, err
	}
	result := wire.Result
	if isNull(result) {
		result = nil
	}
	return &DetailEnvelope{Message: wire.Message, Result: result}, nil
}

// get performs the request and decodes a 2xx body into out. It reports false
// when the body was empty or null.
func (c *Client) get(
	ctx context.Context,
	kind domain.ResourceKind,
	mode, id, path string,
	params url.Values,
	out any,
) (bool, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(kind.String(), mode, metrics.OutcomeTransport, time.Since(start))
		log.DebugContext(ctx, "swapi request failed",
			"resource", kind.String(), "mode", mode, "id", id, "error", err)
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(kind.String(), mode, metrics.OutcomeTransport, elapsed)
		return false, fmt.Errorf("%w: reading body: %w", ErrUnavailable, err)
	}

	log.DebugContext(ctx, "swapi request completed",
		"resource", kind.String(),
		"mode", mode,
		"id", id,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(kind.String(), mode, statusOutcome(resp.StatusCode), elapsed)
		return false, &StatusError{
			StatusCode: resp.StatusCode,
			Kind:       kind,
			ID:         id,
			Body:       string(body),
		}
	}
	metrics.ObserveUpstream(kind.String(), mode, metrics.OutcomeSuccess, elapsed)

	if isNull(body) {
		return false, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return true, nil
}

func statusOutcome(code int) string {
	switch code {
	case http.StatusNotFound:
		return metrics.OutcomeNotFound
	case http.StatusTooManyRequests:
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeStatus
	}
}

func isNull(b []byte) bool {
	t := bytes.TrimSpace(b)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// IsStatus reports whether err is a *StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
