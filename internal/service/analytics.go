package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stonksbro/nsepulse/internal/analytics"
	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/market"
	"github.com/stonksbro/nsepulse/internal/sentiment"
)

// AnalyticsService computes technical indicators, fundamentals, alerts,
// the sector heatmap and headline sentiment. Indicator and heatmap results
// are memoized since they are pure functions of slow-moving upstream data.
type AnalyticsService interface {
	Technical(ctx context.Context, ticker string) (analytics.TechnicalReport, error)
	Fundamentals(ctx context.Context, ticker string) analytics.Fundamentals
	Alerts(ctx context.Context, ticker string) (analytics.AlertsReport, error)
	Heatmap(ctx context.Context) ([]analytics.SectorPerformance, error)
	Sentiment(req dto.SentimentRequest) dto.SentimentResponse
}

const (
	technicalMemoTTL = 10 * time.Minute
	heatmapMemoTTL   = 5 * time.Minute
	technicalRange   = "3mo"
)

type analyticsService struct {
	quotes    QuoteSource
	history   HistorySource
	technical *market.Memo[analytics.TechnicalReport]
	heatmap   *market.Memo[[]analytics.SectorPerformance]
}

// NewAnalyticsService wires the quote cache and history fetcher into the
// analytics operations.
func NewAnalyticsService(quotes QuoteSource, history HistorySource) AnalyticsService {
	return &analyticsService{
		quotes:    quotes,
		history:   history,
		technical: market.NewMemo[analytics.TechnicalReport](technicalMemoTTL),
		heatmap:   market.NewMemo[[]analytics.SectorPerformance](heatmapMemoTTL),
	}
}

func (s *analyticsService) Technical(ctx context.Context, ticker string) (analytics.TechnicalReport, error) {
	return s.technical.Get(ticker, func() (analytics.TechnicalReport, error) {
		points, ok := s.history.GetHistory(ctx, ticker, technicalRange)
		if !ok || len(points) == 0 {
			return analytics.TechnicalReport{}, fmt.Errorf("no price history for %s", ticker)
		}
		closes := make([]float64, 0, len(points))
		for _, p := range points {
			closes = append(closes, p.Price)
		}
		return analytics.Report(ticker, closes), nil
	})
}

// Fundamentals serves the fundamental profile from the market directory,
// falling back to an unknown-shaped document for tickers outside it. The
// quote snapshot pins the canonical ticker spelling.
func (s *analyticsService) Fundamentals(ctx context.Context, ticker string) analytics.Fundamentals {
	canon := strings.ToUpper(strings.TrimSpace(ticker))
	if q, ok := s.quotes.GetQuote(ctx, ticker); ok {
		canon = q.Ticker
	}

	f := analytics.Fundamentals{
		Ticker:             canon,
		Name:               canon,
		Sector:             "Unknown",
		Industry:           "Unknown",
		MarketCapFormatted: "N/A",
		CapCategory:        "Unknown",
		Source:             "fallback",
	}
	info, ok := market.LookupInfo(canon)
	if !ok {
		return f
	}

	f.Name = info.Name
	f.Sector = info.Sector
	f.MarketCap = info.MarketCap
	f.MarketCapFormatted = analytics.FormatMarketCap(info.MarketCap)
	f.CapCategory = analytics.CapCategory(info.MarketCap)
	f.Source = "directory"
	return f
}

// Alerts derives alert conditions from the (memoized) technical report.
func (s *analyticsService) Alerts(ctx context.Context, ticker string) (analytics.AlertsReport, error) {
	rep, err := s.Technical(ctx, ticker)
	if err != nil {
		return analytics.AlertsReport{}, err
	}
	return analytics.AlertsFor(rep), nil
}

func (s *analyticsService) Heatmap(ctx context.Context) ([]analytics.SectorPerformance, error) {
	return s.heatmap.Get("heatmap", func() ([]analytics.SectorPerformance, error) {
		quotes := s.quotes.GetQuotes(ctx, market.ListTickers(0))
		if len(quotes) == 0 {
			return nil, fmt.Errorf("no quotes available for heatmap")
		}
		return analytics.SectorHeatmap(quotes, market.SectorBuckets), nil
	})
}

func (s *analyticsService) Sentiment(req dto.SentimentRequest) dto.SentimentResponse {
	res := sentiment.Analyze(req.Headlines)
	return dto.SentimentResponse{
		Ticker:            req.Ticker,
		Score:             res.Score,
		Label:             sentiment.Label(res.Score),
		PositiveCount:     res.PositiveCount,
		NegativeCount:     res.NegativeCount,
		HeadlinesAnalyzed: res.HeadlinesAnalyzed,
	}
}
