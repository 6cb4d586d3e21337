// Package rates talks to the third-party currency conversion service.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gisusafaris/faq-bot/internal/metrics"
)

const DefaultTimeout = 10 * time.Second

var (
	ErrNoResult = errors.New("conversion response has no result")
	ErrFetch    = errors.New("exchange rate fetch failed")
)

type Status int

const (
	StatusFailed Status = iota
	StatusNoResult
	StatusConverted
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusNoResult:
		return "no_result"
	default:
		return "failed"
	}
}

// Conversion is the outcome of a single lookup. Result is only meaningful
// when Status is StatusConverted; Err carries the cause otherwise.
type Conversion struct {
	Status Status
	Result float64
	Err    error
}

func Converted(result float64) Conversion {
	return Conversion{Status: StatusConverted, Result: result}
}

func NoResult() Conversion {
	return Conversion{Status: StatusNoResult, Err: ErrNoResult}
}

func Failed(err error) Conversion {
	return Conversion{Status: StatusFailed, Err: fmt.Errorf("%w: %v", ErrFetch, err)}
}

// Converter converts amount from one currency to another.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) Conversion
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	slog.Info("Creating exchange rate client", "baseURL", baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("exchange rate base URL cannot be empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid exchange rate base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type convertResponse struct {
	Result *float64 `json:"result"`
}

func (c *Client) Convert(ctx context.Context, amount float64, from, to string) Conversion {
	conv := c.convert(ctx, amount, from, to)
	metrics.RateLookups.WithLabelValues(conv.Status.String()).Inc()
	if conv.Err != nil {
		slog.Warn("Exchange rate lookup did not convert", "from", from, "to", to, "amount", amount, "status", conv.Status.String(), "error", conv.Err)
	}
	return conv
}

func (c *Client) convert(ctx context.Context, amount float64, from, to string) Conversion {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Failed(fmt.Errorf("amount %v is out of range", amount))
	}

	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/convert?"+q.Encode(), nil)
	if err != nil {
		return Failed(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Failed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Failed(fmt.Errorf("status %d", resp.StatusCode))
	}

	var body *convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Failed(fmt.Errorf("decode response: %w", err))
	}
	if body == nil {
		return Failed(errors.New("empty response body"))
	}
	if body.Result == nil {
		return NoResult()
	}
	return Converted(*body.Result)
}
