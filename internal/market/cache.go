package market

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/logger"
)

// quoteRange is the upstream window a quote refill asks for: the last five
// trading sessions, enough to derive price and previous close.
const quoteRange = "5d"

// Clock supplies the current time; injectable for deterministic tests.
type Clock func() time.Time

// CacheStats reports the quote cache's operational state.
type CacheStats struct {
	EntryCount int
	TTLSeconds float64
}

// CacheOptions tunes a QuoteCache.
//
// Fields:
//   - TTL: cache-wide freshness window (not per entry).
//   - FetchTimeout: wall-clock bound on a whole refill.
//   - MaxConcurrent: cap on simultaneous in-flight upstream fetches.
//   - Now: clock override; defaults to time.Now.
type CacheOptions struct {
	TTL           time.Duration
	FetchTimeout  time.Duration
	MaxConcurrent int
	Now           Clock
}

// QuoteCache is the process-wide, time-bounded cache of per-ticker quote
// snapshots with concurrent multi-ticker refill.
//
// Freshness is tracked with a single lastRefill timestamp for the whole
// cache, not per entry: a batch request either short-circuits entirely
// (every requested ticker cached and the window fresh) or falls through to
// a full refill. There is deliberately no partial-hit fast path; callers
// poll the same ticker sets at high frequency and the global window keeps
// the refill logic simple. Do not "fix" this to per-key TTL — the refill
// semantics are observable and relied upon.
//
// All cache state sits behind one mutex; entries are published by
// whole-value replacement so readers never see a half-updated snapshot.
// Concurrent refills for overlapping ticker sets are allowed to race;
// last writer wins on overwrite, which costs redundant upstream calls but
// never corrupts state.
type QuoteCache struct {
	fetcher  Fetcher
	norm     *Normalizer
	fallback FallbackTable

	ttl           time.Duration
	fetchTimeout  time.Duration
	maxConcurrent int
	now           Clock

	mu         sync.Mutex
	entries    map[string]models.Quote
	lastRefill time.Time
}

// NewQuoteCache builds a QuoteCache around an upstream fetcher, a symbol
// normalizer and a static fallback table.
func NewQuoteCache(fetcher Fetcher, norm *Normalizer, fallback FallbackTable, opts CacheOptions) *QuoteCache {
	if opts.TTL <= 0 {
		opts.TTL = 60 * time.Second
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &QuoteCache{
		fetcher:       fetcher,
		norm:          norm,
		fallback:      fallback,
		ttl:           opts.TTL,
		fetchTimeout:  opts.FetchTimeout,
		maxConcurrent: opts.MaxConcurrent,
		now:           opts.Now,
		entries:       make(map[string]models.Quote),
	}
}

// GetQuotes returns a snapshot for each requested ticker, minimizing
// upstream calls and bounding total latency.
//
// Behavior:
//  1. If the cache-wide window is fresh and every requested ticker is
//     cached, the cached snapshots are returned with no upstream call.
//  2. Otherwise every distinct ticker is fetched concurrently, bounded by
//     the fan-out cap and the refill deadline. Results that finish in time
//     update the cache; stragglers are abandoned and their late results
//     discarded.
//  3. Tickers without a live result fall back to their most recent cached
//     snapshot (any age, provenance marked fallback), then to the static
//     fallback table, and are otherwise omitted from the result.
//
// Per-ticker fetch errors never propagate; the worst outcome for a ticker
// is absence from the returned map.
func (c *QuoteCache) GetQuotes(ctx context.Context, tickers []string) map[string]models.Quote {
	canon := c.canonicalSet(tickers)
	if len(canon) == 0 {
		return map[string]models.Quote{}
	}

	if out, ok := c.tryCached(canon); ok {
		return out
	}

	live := c.refill(ctx, canon)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Publish live snapshots; the window timestamp only advances when at
	// least one fetch succeeded, so a wholly failed refill stays stale.
	if len(live) > 0 {
		for t, q := range live {
			c.entries[t] = q
		}
		c.lastRefill = c.now()
	}

	out := make(map[string]models.Quote, len(canon))
	for _, t := range canon {
		if q, ok := live[t]; ok {
			out[t] = q
			continue
		}
		if q, ok := c.entries[t]; ok {
			// Stale snapshot reused past its window: no longer live data.
			q.Provenance = models.ProvenanceFallback
			out[t] = q
			continue
		}
		if q, ok := c.fallback.Lookup(t, c.now()); ok {
			out[t] = q
		}
		// Neither live, cached nor tabled: the ticker is omitted and the
		// caller must handle the missing key.
	}
	return out
}

// GetQuote is GetQuotes for a single ticker, projected to that key.
func (c *QuoteCache) GetQuote(ctx context.Context, ticker string) (models.Quote, bool) {
	canon := c.norm.Canonical(ticker)
	q, ok := c.GetQuotes(ctx, []string{canon})[canon]
	return q, ok
}

// Clear resets the cache to empty and zeroes the freshness window, forcing
// the next request to refill.
func (c *QuoteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]models.Quote)
	c.lastRefill = time.Time{}
}

// Stats reports entry count and configured TTL for operational visibility.
func (c *QuoteCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		EntryCount: len(c.entries),
		TTLSeconds: c.ttl.Seconds(),
	}
}

// canonicalSet normalizes and deduplicates the requested tickers,
// preserving first-seen order.
func (c *QuoteCache) canonicalSet(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		canon := c.norm.Canonical(t)
		if canon == "" {
			continue
		}
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	return out
}

// tryCached returns all requested snapshots iff the cache-wide window is
// fresh and every ticker has an entry. The check is all-or-nothing.
func (c *QuoteCache) tryCached(canon []string) (map[string]models.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastRefill.IsZero() || c.now().Sub(c.lastRefill) >= c.ttl {
		return nil, false
	}
	out := make(map[string]models.Quote, len(canon))
	for _, t := range canon {
		q, ok := c.entries[t]
		if !ok {
			return nil, false
		}
		out[t] = q
	}
	return out, true
}

// refill fetches every ticker concurrently and returns whatever completed
// before the deadline. Workers that resolve after the deadline publish
// nothing: the result map is snapshotted at the deadline boundary and late
// writes never reach it or the cache.
func (c *QuoteCache) refill(ctx context.Context, tickers []string) map[string]models.Quote {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]models.Quote, len(tickers))
	)

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, c.maxConcurrent)

	for _, t := range tickers {
		ticker := t
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return nil
			}

			q, err := c.fetchOne(gctx, ticker)
			if err != nil {
				// Per-ticker failures fall through to the fallback chain.
				logger.L().Warn().Str("ticker", ticker).Err(err).Msg("quote fetch failed")
				return nil
			}
			if gctx.Err() != nil {
				// Resolved past the deadline; the batch already moved on.
				return nil
			}
			mu.Lock()
			results[ticker] = q
			mu.Unlock()
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.L().Warn().Int("tickers", len(tickers)).Msg("quote refill timed out, using partial results")
	}

	mu.Lock()
	snap := make(map[string]models.Quote, len(results))
	for t, q := range results {
		snap[t] = q
	}
	mu.Unlock()
	return snap
}

// fetchOne fetches one ticker's recent closes and derives its snapshot.
func (c *QuoteCache) fetchOne(ctx context.Context, ticker string) (models.Quote, error) {
	symbol := c.norm.Upstream(ticker)

	closes, err := c.fetcher.FetchCloses(ctx, symbol, quoteRange)
	if err != nil {
		return models.Quote{}, fmt.Errorf("fetch closes for %s: %w", symbol, err)
	}
	if len(closes) == 0 {
		return models.Quote{}, fmt.Errorf("no closes returned for %s", symbol)
	}

	price := closes[len(closes)-1].Price
	prev := price
	if len(closes) > 1 {
		prev = closes[len(closes)-2].Price
	}
	return NewQuote(ticker, price, prev, c.now()), nil
}

// NewQuote builds a live snapshot, deriving change and change percent from
// price and previous close. Change percent is zero when previous close is
// zero.
func NewQuote(ticker string, price, previousClose float64, observedAt time.Time) models.Quote {
	change := price - previousClose
	var pct float64
	if previousClose != 0 {
		pct = change / previousClose * 100
	}
	return models.Quote{
		Ticker:        ticker,
		Price:         round2(price),
		PreviousClose: round2(previousClose),
		Change:        round2(change),
		ChangePercent: round2(pct),
		ObservedAt:    observedAt,
		Provenance:    models.ProvenanceLive,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
