package service

import (
	"context"
	"math"
	"time"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/market"
)

// QuoteSource is the read surface the quote cache exposes to the
// application layer.
type QuoteSource interface {
	GetQuotes(ctx context.Context, tickers []string) map[string]models.Quote
	GetQuote(ctx context.Context, ticker string) (models.Quote, bool)
	Clear()
	Stats() market.CacheStats
}

// HistorySource is the read surface of the history fetcher.
type HistorySource interface {
	GetHistory(ctx context.Context, ticker, rng string) ([]models.HistoryPoint, bool)
}

// QuoteService serves quotes, history, index overview and directory search
// to the HTTP layer.
type QuoteService interface {
	GetQuote(ctx context.Context, ticker string) (dto.QuoteResponse, bool)
	GetHistory(ctx context.Context, ticker string, days int) dto.HistoryResponse
	IndexOverview(ctx context.Context) dto.IndexResponse
	Search(query string) dto.SearchResponse
	CacheStats() dto.CacheStatsResponse
	ClearCache()
}

// indexComponentCount is how many directory stocks ride along with the
// index in the overview, all fetched in one bulk call.
const indexComponentCount = 10

type quoteService struct {
	quotes     QuoteSource
	history    HistorySource
	indexAlias string
	indexName  string
}

// NewQuoteService wires the quote cache and history fetcher into the
// application-facing quote operations.
func NewQuoteService(quotes QuoteSource, history HistorySource, indexAlias, indexName string) QuoteService {
	return &quoteService{
		quotes:     quotes,
		history:    history,
		indexAlias: indexAlias,
		indexName:  indexName,
	}
}

func (s *quoteService) GetQuote(ctx context.Context, ticker string) (dto.QuoteResponse, bool) {
	q, ok := s.quotes.GetQuote(ctx, ticker)
	if !ok || q.Price <= 0 {
		return dto.QuoteResponse{}, false
	}
	return dto.NewQuoteResponse(q), true
}

func (s *quoteService) GetHistory(ctx context.Context, ticker string, days int) dto.HistoryResponse {
	rng := market.RangeForDays(days)
	if points, ok := s.history.GetHistory(ctx, ticker, rng); ok {
		return dto.HistoryResponse{Ticker: ticker, Data: points}
	}
	// Degrade to a deterministic placeholder series rather than failing;
	// the client renders it flagged as synthetic.
	return dto.HistoryResponse{
		Ticker:    ticker,
		Data:      syntheticSeries(ticker, s.indexAlias, days),
		Synthetic: true,
	}
}

func (s *quoteService) IndexOverview(ctx context.Context) dto.IndexResponse {
	components := market.ListTickers(indexComponentCount)
	batch := append([]string{s.indexAlias}, components...)

	quotes := s.quotes.GetQuotes(ctx, batch)

	out := dto.IndexResponse{
		Timestamp: time.Now().Format("2006-01-02T15:04:05"),
	}
	if q, ok := quotes[s.indexAlias]; ok {
		out.Index = dto.IndexQuote{QuoteResponse: dto.NewQuoteResponse(q), Name: s.indexName}
	} else {
		out.Index = dto.IndexQuote{
			QuoteResponse: dto.QuoteResponse{Ticker: s.indexAlias, Source: "unavailable"},
			Name:          s.indexName,
		}
	}
	for _, t := range components {
		q, ok := quotes[t]
		if !ok || q.Price <= 0 {
			continue
		}
		name := t
		if info, ok := market.LookupInfo(t); ok {
			name = info.Name
		}
		out.Components = append(out.Components, dto.ComponentQuote{
			QuoteResponse: dto.NewQuoteResponse(q),
			Name:          name,
		})
	}
	return out
}

func (s *quoteService) Search(query string) dto.SearchResponse {
	var out dto.SearchResponse
	for _, info := range market.Search(query, 10) {
		out.Results = append(out.Results, dto.SearchResult{
			Ticker:   info.Ticker,
			Name:     info.Name,
			Exchange: "NSE",
		})
	}
	return out
}

func (s *quoteService) CacheStats() dto.CacheStatsResponse {
	st := s.quotes.Stats()
	return dto.CacheStatsResponse{EntryCount: st.EntryCount, TTLSeconds: st.TTLSeconds}
}

func (s *quoteService) ClearCache() {
	s.quotes.Clear()
}

// syntheticSeries builds a plausible placeholder series when no real
// history is available. It is deterministic per ticker so repeated renders
// are stable.
func syntheticSeries(ticker, indexAlias string, days int) []models.HistoryPoint {
	if days <= 0 {
		days = 30
	}
	if days > 30 {
		days = 30
	}

	base := 1500.0
	if ticker == indexAlias {
		base = 22000.0
	}
	if price, ok := market.DefaultFallbackPrices()[ticker]; ok {
		base = price
	}

	// Small per-ticker phase so different tickers don't render identically.
	var phase float64
	for _, r := range ticker {
		phase += float64(r)
	}

	points := make([]models.HistoryPoint, 0, days)
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, i-days+1)
		wiggle := math.Sin(phase+float64(i)/3) * base * 0.01
		drift := float64(i) * base * 0.001
		points = append(points, models.HistoryPoint{
			Date:  date.Format("2006-01-02"),
			Price: math.Round((base+wiggle+drift)*100) / 100,
		})
	}
	return points
}
