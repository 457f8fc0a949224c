package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/market"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// memRepo is an in-memory PortfolioRepository for service tests.
type memRepo struct {
	nextID   int64
	holdings map[int64]models.Holding
	watches  map[string]models.WatchItem
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextID:   1,
		holdings: make(map[int64]models.Holding),
		watches:  make(map[string]models.WatchItem),
	}
}

func (m *memRepo) ListHoldings(_ context.Context, userID int64) ([]models.Holding, error) {
	var out []models.Holding
	for id := int64(1); id < m.nextID; id++ {
		if h, ok := m.holdings[id]; ok && h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) GetHolding(_ context.Context, userID, id int64) (*models.Holding, error) {
	h, ok := m.holdings[id]
	if !ok || h.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return &h, nil
}

func (m *memRepo) InsertHolding(_ context.Context, h *models.Holding) error {
	h.ID = m.nextID
	h.BoughtAt = time.Now()
	m.nextID++
	m.holdings[h.ID] = *h
	return nil
}

func (m *memRepo) UpdateHolding(_ context.Context, h *models.Holding) error {
	old, ok := m.holdings[h.ID]
	if !ok || old.UserID != h.UserID {
		return storage.ErrNotFound
	}
	m.holdings[h.ID] = *h
	return nil
}

func (m *memRepo) DeleteHolding(_ context.Context, userID, id int64) error {
	h, ok := m.holdings[id]
	if !ok || h.UserID != userID {
		return storage.ErrNotFound
	}
	delete(m.holdings, id)
	return nil
}

func (m *memRepo) ListWatchlist(_ context.Context, userID int64) ([]models.WatchItem, error) {
	var out []models.WatchItem
	for _, w := range m.watches {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memRepo) AddWatch(_ context.Context, userID int64, ticker string) (*models.WatchItem, error) {
	if _, ok := m.watches[ticker]; ok {
		return nil, storage.ErrDuplicate
	}
	w := models.WatchItem{ID: m.nextID, UserID: userID, Ticker: ticker, AddedAt: time.Now()}
	m.nextID++
	m.watches[ticker] = w
	return &w, nil
}

func (m *memRepo) RemoveWatch(_ context.Context, userID int64, ticker string) error {
	w, ok := m.watches[ticker]
	if !ok || w.UserID != userID {
		return storage.ErrNotFound
	}
	delete(m.watches, ticker)
	return nil
}

func newPortfolioFixture(quotes map[string]models.Quote) (PortfolioService, *memRepo, *stubQuotes) {
	repo := newMemRepo()
	src := &stubQuotes{quotes: quotes}
	norm := market.NewNormalizer(".NS", "NIFTY50", "^NSEI")
	return NewPortfolioService(repo, src, norm), repo, src
}

func TestPortfolioService_AddAndList(t *testing.T) {
	svc, _, src := newPortfolioFixture(map[string]models.Quote{
		"INFY": liveQuote("INFY", 1550, 1540),
	})

	added, err := svc.Add(context.Background(), 7, dto.HoldingCreateRequest{
		Ticker: "infy.ns", Quantity: 12, BuyPrice: 1500.50,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Ticker != "INFY" {
		t.Fatalf("ticker not canonicalized: %+v", added)
	}
	if added.SourceApp != "Manual" || added.BrokerColor != "#888888" {
		t.Fatalf("source app default not applied: %+v", added)
	}

	list, err := svc.List(context.Background(), 7)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %+v err=%v", list, err)
	}
	h := list[0]
	if h.InvestedValue != 18006 || h.CurrentValue != 18600 {
		t.Fatalf("valuation wrong: %+v", h)
	}
	if h.GainLoss != 594 || h.GainLossPercent != 3.3 {
		t.Fatalf("gain wrong: %+v", h)
	}
	if h.Sector != "IT" || h.CapCategory != "Large Cap" {
		t.Fatalf("directory join wrong: %+v", h)
	}
	// One bulk quote call for the whole list.
	if src.calls != 2 { // one for Add's enrichment, one for List
		t.Fatalf("unexpected quote calls: %d", src.calls)
	}
}

func TestPortfolioService_Add_UnknownTicker(t *testing.T) {
	svc, _, _ := newPortfolioFixture(nil)

	_, err := svc.Add(context.Background(), 7, dto.HoldingCreateRequest{
		Ticker: "DOGE", Quantity: 1, BuyPrice: 1,
	})
	if !errors.Is(err, ErrUnknownTicker) {
		t.Fatalf("want ErrUnknownTicker, got %v", err)
	}
}

func TestPortfolioService_Update(t *testing.T) {
	svc, _, _ := newPortfolioFixture(map[string]models.Quote{
		"TCS": liveQuote("TCS", 3800, 3790),
	})

	added, err := svc.Add(context.Background(), 7, dto.HoldingCreateRequest{
		Ticker: "TCS", Quantity: 10, BuyPrice: 3500, SourceApp: "Zerodha",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	qty := 15.0
	updated, err := svc.Update(context.Background(), 7, added.ID, dto.HoldingUpdateRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 15 || updated.BuyPrice != 3500 || updated.SourceApp != "Zerodha" {
		t.Fatalf("partial update wrong: %+v", updated)
	}
	if updated.BrokerColor != "#387ed1" {
		t.Fatalf("broker color wrong: %+v", updated)
	}

	// Another user cannot touch the row.
	if _, err := svc.Update(context.Background(), 8, added.ID, dto.HoldingUpdateRequest{Quantity: &qty}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("cross-user update: want ErrNotFound, got %v", err)
	}

	bad := -1.0
	if _, err := svc.Update(context.Background(), 7, added.ID, dto.HoldingUpdateRequest{Quantity: &bad}); err == nil {
		t.Fatalf("negative quantity accepted")
	}
}

func TestPortfolioService_Delete(t *testing.T) {
	svc, _, _ := newPortfolioFixture(map[string]models.Quote{
		"TCS": liveQuote("TCS", 3800, 3790),
	})

	added, err := svc.Add(context.Background(), 7, dto.HoldingCreateRequest{
		Ticker: "TCS", Quantity: 10, BuyPrice: 3500,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Delete(context.Background(), 7, added.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 7, added.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
}

func TestPortfolioService_Summary(t *testing.T) {
	svc, _, _ := newPortfolioFixture(map[string]models.Quote{
		"TCS":  liveQuote("TCS", 3800, 3790),
		"SBIN": liveQuote("SBIN", 800, 790),
	})

	ctx := context.Background()
	if _, err := svc.Add(ctx, 7, dto.HoldingCreateRequest{Ticker: "TCS", Quantity: 10, BuyPrice: 3500, SourceApp: "Zerodha"}); err != nil {
		t.Fatalf("add tcs: %v", err)
	}
	if _, err := svc.Add(ctx, 7, dto.HoldingCreateRequest{Ticker: "SBIN", Quantity: 20, BuyPrice: 700, SourceApp: "Groww"}); err != nil {
		t.Fatalf("add sbin: %v", err)
	}

	sum, err := svc.Summary(ctx, 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.HoldingsCount != 2 {
		t.Fatalf("count: %+v", sum)
	}
	if sum.TotalInvested != 49000 || sum.TotalCurrent != 54000 {
		t.Fatalf("totals: %+v", sum)
	}
	if sum.TotalGainLoss != 5000 || sum.GainLossPercent != 10.2 {
		t.Fatalf("gain: %+v", sum)
	}
	if sum.BySector["IT"] != 38000 || sum.BySector["Banking"] != 16000 {
		t.Fatalf("by sector: %+v", sum.BySector)
	}
	if sum.ByBroker["Zerodha"] != 38000 || sum.ByBroker["Groww"] != 16000 {
		t.Fatalf("by broker: %+v", sum.ByBroker)
	}
}

func TestPortfolioService_ExportCSV(t *testing.T) {
	svc, _, _ := newPortfolioFixture(map[string]models.Quote{
		"TCS": liveQuote("TCS", 3800, 3790),
	})

	ctx := context.Background()
	if _, err := svc.Add(ctx, 7, dto.HoldingCreateRequest{Ticker: "TCS", Quantity: 10, BuyPrice: 3500, SourceApp: "Zerodha"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := svc.ExportCSV(ctx, 7)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ticker,quantity,buy_price") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "TCS,10,3500.00,Zerodha") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestPortfolioService_Watchlist(t *testing.T) {
	svc, _, _ := newPortfolioFixture(nil)
	ctx := context.Background()

	w, err := svc.Watch(ctx, 7, "tcs.ns")
	if err != nil || w.Ticker != "TCS" {
		t.Fatalf("watch: w=%+v err=%v", w, err)
	}
	if _, err := svc.Watch(ctx, 7, "TCS"); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("duplicate watch: want ErrDuplicate, got %v", err)
	}
	if _, err := svc.Watch(ctx, 7, "DOGE"); !errors.Is(err, ErrUnknownTicker) {
		t.Fatalf("unknown watch: want ErrUnknownTicker, got %v", err)
	}

	list, err := svc.Watchlist(ctx, 7)
	if err != nil || len(list) != 1 {
		t.Fatalf("watchlist: %+v err=%v", list, err)
	}

	if err := svc.Unwatch(ctx, 7, "TCS"); err != nil {
		t.Fatalf("unwatch: %v", err)
	}
	if err := svc.Unwatch(ctx, 7, "TCS"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("double unwatch: want ErrNotFound, got %v", err)
	}
}
