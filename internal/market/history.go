package market

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/logger"
)

// HistoryFetcher retrieves a chronologically ordered closing-price series
// for one ticker, bounded by a timeout.
//
// Unlike quotes, history is fetched fresh on every call: requests are
// lower-frequency and period-varying, so a cache at this granularity is
// not cost-effective.
type HistoryFetcher struct {
	fetcher Fetcher
	norm    *Normalizer
	timeout time.Duration
}

// NewHistoryFetcher builds a HistoryFetcher with a per-call timeout.
func NewHistoryFetcher(fetcher Fetcher, norm *Normalizer, timeout time.Duration) *HistoryFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HistoryFetcher{fetcher: fetcher, norm: norm, timeout: timeout}
}

// RangeForDays maps a day count onto an upstream range token. The chart API
// only accepts a fixed set of windows, so anything beyond 60 days widens to
// three months.
func RangeForDays(days int) string {
	if days <= 0 {
		days = 30
	}
	if days <= 60 {
		return fmt.Sprintf("%dd", days)
	}
	return "3mo"
}

// GetHistory fetches the series for one ticker over the named range.
// On timeout, upstream error or an empty series it reports absence; the
// caller decides whether to synthesize a placeholder.
func (h *HistoryFetcher) GetHistory(ctx context.Context, ticker, rng string) ([]models.HistoryPoint, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	symbol := h.norm.Upstream(ticker)
	closes, err := h.fetcher.FetchCloses(ctx, symbol, rng)
	if err != nil {
		logger.L().Warn().Str("ticker", ticker).Str("range", rng).Err(err).Msg("history fetch failed")
		return nil, false
	}
	if len(closes) == 0 {
		return nil, false
	}

	sort.Slice(closes, func(i, j int) bool { return closes[i].Date.Before(closes[j].Date) })

	points := make([]models.HistoryPoint, 0, len(closes))
	for _, cl := range closes {
		points = append(points, models.HistoryPoint{
			Date:  cl.Date.Format("2006-01-02"),
			Price: round2(cl.Price),
		})
	}
	return points, true
}
