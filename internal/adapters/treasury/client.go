// Package treasury talks to the U.S. Treasury Fiscal Data "rates of exchange" endpoint.
package treasury

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

	"cloud.google.com/go/civil"
)

const (
	// PageSize is the fixed page size of the listing request.
	PageSize = 100

	listingFields = "country,country_currency_desc,record_date"
	rateFields    = "country_currency_desc,exchange_rate,record_date"
	sortNewest    = "-record_date"

	// maxErrorBody caps how much of an error body is kept for messages.
	maxErrorBody = 4 << 10
)

// Client issues GET requests against the configured base URL. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. A zero timeout leaves the http.Client without one.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a Client around an existing http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// ListCurrencies fetches one page of the country/currency listing, newest first.
func (c *Client) ListCurrencies(ctx context.Context, pageNumber int) (*CurrencyPage, error) {
	q := url.Values{}
	q.Set("sort", sortNewest)
	q.Set("format", "json")
	q.Set("page[number]", strconv.Itoa(pageNumber))
	q.Set("page[size]", strconv.Itoa(PageSize))
	q.Set("fields", listingFields)

	var page CurrencyPage
	if err := c.get(ctx, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// LatestRate fetches at most one rate for descriptor published within [from, to].
func (c *Client) LatestRate(ctx context.Context, descriptor string, from, to civil.Date) (*RateResponse, error) {
	q := url.Values{}
	q.Set("fields", rateFields)
	q.Set("filter", RateFilter(descriptor, from, to))
	q.Set("sort", sortNewest)
	q.Set("page[size]", "1")

	var resp RateResponse
	if err := c.get(ctx, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RateFilter renders the Fiscal Data filter expression for a descriptor and date window.
func RateFilter(descriptor string, from, to civil.Date) string {
	return fmt.Sprintf("country_currency_desc:in:(%s),record_date:gte:%s,record_date:lte:%s",
		descriptor, from, to)
}

func (c *Client) get(ctx context.Context, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return &UpstreamTransportError{Err: fmt.Errorf("invalid base url: %w", err)}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &UpstreamTransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling treasury API", slog.String("url", u.String()))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamTransportError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamTransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamTransportError{StatusCode: resp.StatusCode, Malformed: true, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
