package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/market"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// ErrUnknownTicker is returned when a holding or watch refers to a ticker
// outside the served directory.
var ErrUnknownTicker = errors.New("unknown ticker")

// brokerColors maps broker apps to the chart colors the dashboard renders
// holdings with.
var brokerColors = map[string]string{
	"Zerodha":   "#387ed1",
	"Groww":     "#00d09c",
	"Upstox":    "#6950ff",
	"Angel One": "#ff6b00",
	"Kite":      "#387ed1",
	"Manual":    "#888888",
}

const defaultBrokerColor = "#888888"

// PortfolioService manages a user's holdings and watchlist and enriches
// them with live quotes.
type PortfolioService interface {
	List(ctx context.Context, userID int64) ([]dto.EnrichedHolding, error)
	Add(ctx context.Context, userID int64, req dto.HoldingCreateRequest) (*dto.EnrichedHolding, error)
	Update(ctx context.Context, userID, id int64, req dto.HoldingUpdateRequest) (*dto.EnrichedHolding, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64) (*dto.PortfolioSummary, error)
	ExportCSV(ctx context.Context, userID int64) ([]byte, error)

	Watchlist(ctx context.Context, userID int64) ([]models.WatchItem, error)
	Watch(ctx context.Context, userID int64, ticker string) (*models.WatchItem, error)
	Unwatch(ctx context.Context, userID int64, ticker string) error
}

type portfolioService struct {
	repo   storage.PortfolioRepository
	quotes QuoteSource
	norm   *market.Normalizer
}

// NewPortfolioService builds a PortfolioService over the repository and the
// quote cache.
func NewPortfolioService(repo storage.PortfolioRepository, quotes QuoteSource, norm *market.Normalizer) PortfolioService {
	return &portfolioService{repo: repo, quotes: quotes, norm: norm}
}

func (s *portfolioService) List(ctx context.Context, userID int64) ([]dto.EnrichedHolding, error) {
	holdings, err := s.repo.ListHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, holdings), nil
}

func (s *portfolioService) Add(ctx context.Context, userID int64, req dto.HoldingCreateRequest) (*dto.EnrichedHolding, error) {
	ticker, err := s.resolveTicker(req.Ticker)
	if err != nil {
		return nil, err
	}
	source := req.SourceApp
	if source == "" {
		source = "Manual"
	}
	h := models.Holding{
		UserID:    userID,
		Ticker:    ticker,
		Quantity:  req.Quantity,
		BuyPrice:  req.BuyPrice,
		SourceApp: source,
	}
	if err := s.repo.InsertHolding(ctx, &h); err != nil {
		return nil, err
	}
	out := s.enrich(ctx, []models.Holding{h})
	return &out[0], nil
}

func (s *portfolioService) Update(ctx context.Context, userID, id int64, req dto.HoldingUpdateRequest) (*dto.EnrichedHolding, error) {
	h, err := s.repo.GetHolding(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Ticker != nil {
		ticker, err := s.resolveTicker(*req.Ticker)
		if err != nil {
			return nil, err
		}
		h.Ticker = ticker
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive")
		}
		h.Quantity = *req.Quantity
	}
	if req.BuyPrice != nil {
		if *req.BuyPrice <= 0 {
			return nil, fmt.Errorf("buy price must be positive")
		}
		h.BuyPrice = *req.BuyPrice
	}
	if req.SourceApp != nil {
		h.SourceApp = *req.SourceApp
	}
	if err := s.repo.UpdateHolding(ctx, h); err != nil {
		return nil, err
	}
	out := s.enrich(ctx, []models.Holding{*h})
	return &out[0], nil
}

func (s *portfolioService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteHolding(ctx, userID, id)
}

func (s *portfolioService) Summary(ctx context.Context, userID int64) (*dto.PortfolioSummary, error) {
	enriched, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := dto.PortfolioSummary{
		HoldingsCount: len(enriched),
		BySector:      make(map[string]float64),
		ByBroker:      make(map[string]float64),
	}
	for _, h := range enriched {
		sum.TotalInvested += h.InvestedValue
		sum.TotalCurrent += h.CurrentValue
		sector := h.Sector
		if sector == "" {
			sector = "Other"
		}
		sum.BySector[sector] += h.CurrentValue
		sum.ByBroker[h.SourceApp] += h.CurrentValue
	}
	sum.TotalInvested = round2(sum.TotalInvested)
	sum.TotalCurrent = round2(sum.TotalCurrent)
	sum.TotalGainLoss = round2(sum.TotalCurrent - sum.TotalInvested)
	if sum.TotalInvested > 0 {
		sum.GainLossPercent = round2(sum.TotalGainLoss / sum.TotalInvested * 100)
	}
	for k, v := range sum.BySector {
		sum.BySector[k] = round2(v)
	}
	for k, v := range sum.ByBroker {
		sum.ByBroker[k] = round2(v)
	}
	return &sum, nil
}

func (s *portfolioService) ExportCSV(ctx context.Context, userID int64) ([]byte, error) {
	enriched, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"ticker", "quantity", "buy_price", "source_app", "bought_at",
		"current_price", "invested_value", "current_value", "gain_loss", "gain_loss_percent",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, h := range enriched {
		row := []string{
			h.Ticker,
			strconv.FormatFloat(h.Quantity, 'f', -1, 64),
			strconv.FormatFloat(h.BuyPrice, 'f', 2, 64),
			h.SourceApp,
			h.BoughtAt,
			strconv.FormatFloat(h.CurrentPrice, 'f', 2, 64),
			strconv.FormatFloat(h.InvestedValue, 'f', 2, 64),
			strconv.FormatFloat(h.CurrentValue, 'f', 2, 64),
			strconv.FormatFloat(h.GainLoss, 'f', 2, 64),
			strconv.FormatFloat(h.GainLossPercent, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *portfolioService) Watchlist(ctx context.Context, userID int64) ([]models.WatchItem, error) {
	return s.repo.ListWatchlist(ctx, userID)
}

func (s *portfolioService) Watch(ctx context.Context, userID int64, ticker string) (*models.WatchItem, error) {
	t, err := s.resolveTicker(ticker)
	if err != nil {
		return nil, err
	}
	return s.repo.AddWatch(ctx, userID, t)
}

func (s *portfolioService) Unwatch(ctx context.Context, userID int64, ticker string) error {
	return s.repo.RemoveWatch(ctx, userID, s.norm.Canonical(ticker))
}

// resolveTicker canonicalizes and validates a ticker against the served
// directory.
func (s *portfolioService) resolveTicker(ticker string) (string, error) {
	t := s.norm.Canonical(ticker)
	if _, ok := market.LookupInfo(t); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	return t, nil
}

// enrich joins holdings with one bulk quote call and computes valuation
// figures. Holdings whose ticker has no quote are carried with a zero
// current price rather than dropped.
func (s *portfolioService) enrich(ctx context.Context, holdings []models.Holding) []dto.EnrichedHolding {
	out := make([]dto.EnrichedHolding, 0, len(holdings))
	if len(holdings) == 0 {
		return out
	}

	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		tickers = append(tickers, h.Ticker)
	}
	quotes := s.quotes.GetQuotes(ctx, tickers)

	for _, h := range holdings {
		e := dto.EnrichedHolding{
			ID:            h.ID,
			Ticker:        h.Ticker,
			Quantity:      h.Quantity,
			BuyPrice:      h.BuyPrice,
			SourceApp:     h.SourceApp,
			BoughtAt:      h.BoughtAt.Format("2006-01-02"),
			InvestedValue: round2(h.Quantity * h.BuyPrice),
			BrokerColor:   brokerColor(h.SourceApp),
		}
		if info, ok := market.LookupInfo(h.Ticker); ok {
			e.Sector = info.Sector
			e.CapCategory = info.CapClass
		}
		if q, ok := quotes[h.Ticker]; ok && q.Price > 0 {
			e.CurrentPrice = q.Price
			e.CurrentValue = round2(h.Quantity * q.Price)
			e.GainLoss = round2(e.CurrentValue - e.InvestedValue)
			if e.InvestedValue > 0 {
				e.GainLossPercent = round2(e.GainLoss / e.InvestedValue * 100)
			}
		}
		out = append(out, e)
	}
	return out
}

func brokerColor(sourceApp string) string {
	if c, ok := brokerColors[sourceApp]; ok {
		return c
	}
	return defaultBrokerColor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
