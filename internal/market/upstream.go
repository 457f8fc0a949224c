package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Close is one daily closing price observed upstream.
type Close struct {
	Date  time.Time
	Price float64
}

// Fetcher retrieves daily closing prices for an upstream symbol over a
// named range (e.g. "5d", "3mo"). Implementations must honor ctx
// cancellation; the quote cache relies on it to bound refills.
type Fetcher interface {
	FetchCloses(ctx context.Context, symbol, rng string) ([]Close, error)
}

// ChartClient fetches closes from a Yahoo v8 compatible chart API.
type ChartClient struct {
	baseURL string
	client  *http.Client
}

// NewChartClient builds a ChartClient. timeout caps a single HTTP call in
// addition to whatever deadline the caller's context carries.
func NewChartClient(baseURL string, timeout time.Duration) *ChartClient {
	return &ChartClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// chartResponse mirrors the chart API JSON envelope. Closes are pointers
// because the API emits null for sessions without a print.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// FetchCloses requests {base}/v8/finance/chart/{symbol}?range={rng}&interval=1d
// and returns the non-null closes in chronological order.
func (c *ChartClient) FetchCloses(ctx context.Context, symbol, rng string) ([]Close, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(rng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build chart request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart request for %s: %w", symbol, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart request for %s: unexpected status %d", symbol, resp.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode chart response for %s: %w", symbol, err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %v", symbol, body.Chart.Error)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart response for %s: empty result", symbol)
	}

	res := body.Chart.Result[0]
	closes := res.Indicators.Quote[0].Close

	out := make([]Close, 0, len(closes))
	for i, p := range closes {
		if p == nil || i >= len(res.Timestamp) {
			continue
		}
		out = append(out, Close{
			Date:  time.Unix(res.Timestamp[i], 0).UTC(),
			Price: *p,
		})
	}
	return out, nil
}
