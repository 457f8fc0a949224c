package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/auth"
	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/domain/models"
	"github.com/stonksbro/nsepulse/internal/middleware"
	"github.com/stonksbro/nsepulse/internal/service"
	"github.com/stonksbro/nsepulse/internal/storage"
)

type mockPortfolioService struct {
	holdings []dto.EnrichedHolding
	added    *dto.EnrichedHolding
	addErr   error
	delErr   error
	summary  *dto.PortfolioSummary
	csv      []byte

	lastUserID int64
}

func (m *mockPortfolioService) List(_ context.Context, userID int64) ([]dto.EnrichedHolding, error) {
	m.lastUserID = userID
	return m.holdings, nil
}

func (m *mockPortfolioService) Add(_ context.Context, userID int64, _ dto.HoldingCreateRequest) (*dto.EnrichedHolding, error) {
	m.lastUserID = userID
	return m.added, m.addErr
}

func (m *mockPortfolioService) Update(_ context.Context, userID, _ int64, _ dto.HoldingUpdateRequest) (*dto.EnrichedHolding, error) {
	m.lastUserID = userID
	return m.added, m.addErr
}

func (m *mockPortfolioService) Delete(_ context.Context, userID, _ int64) error {
	m.lastUserID = userID
	return m.delErr
}

func (m *mockPortfolioService) Summary(_ context.Context, userID int64) (*dto.PortfolioSummary, error) {
	m.lastUserID = userID
	return m.summary, nil
}

func (m *mockPortfolioService) ExportCSV(_ context.Context, userID int64) ([]byte, error) {
	m.lastUserID = userID
	return m.csv, nil
}

func (m *mockPortfolioService) Watchlist(_ context.Context, _ int64) ([]models.WatchItem, error) {
	return nil, nil
}

func (m *mockPortfolioService) Watch(_ context.Context, _ int64, ticker string) (*models.WatchItem, error) {
	return &models.WatchItem{ID: 1, Ticker: ticker}, nil
}

func (m *mockPortfolioService) Unwatch(_ context.Context, _ int64, _ string) error { return nil }

var _ service.PortfolioService = (*mockPortfolioService)(nil)

func setupPortfolioRouter(pf service.PortfolioService, issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, nil, nil, pf)
	r := gin.New()
	group := r.Group("/api/v1/portfolio")
	group.Use(middleware.RequireAuth(issuer))
	group.GET("", h.ListPortfolio)
	group.POST("", h.AddHolding)
	group.DELETE("/:id", h.DeleteHolding)
	group.GET("/summary", h.GetPortfolioSummary)
	group.GET("/export", h.ExportPortfolio)
	return r
}

func bearerFor(t *testing.T, issuer *auth.TokenIssuer, userID int64) string {
	t.Helper()
	token, err := issuer.Issue(userID, "trader42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestListPortfolio_RequiresAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	r := setupPortfolioRouter(&mockPortfolioService{}, issuer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestListPortfolio_ScopedToTokenUser(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := &mockPortfolioService{holdings: []dto.EnrichedHolding{{ID: 1, Ticker: "TCS"}}}
	r := setupPortfolioRouter(svc, issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	req.Header.Set("Authorization", bearerFor(t, issuer, 42))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastUserID != 42 {
		t.Fatalf("user id from token not used: %d", svc.lastUserID)
	}
	var out []dto.EnrichedHolding
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 1 {
		t.Fatalf("unexpected body: %s err=%v", w.Body.String(), err)
	}
}

func TestAddHolding_StatusMapping(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	cases := []struct {
		name   string
		svc    *mockPortfolioService
		body   string
		status int
	}{
		{
			name:   "created",
			svc:    &mockPortfolioService{added: &dto.EnrichedHolding{ID: 1, Ticker: "TCS"}},
			body:   `{"ticker":"TCS","quantity":10,"buy_price":3500}`,
			status: http.StatusCreated,
		},
		{
			name:   "unknown ticker",
			svc:    &mockPortfolioService{addErr: service.ErrUnknownTicker},
			body:   `{"ticker":"DOGE","quantity":1,"buy_price":1}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "missing fields",
			svc:    &mockPortfolioService{},
			body:   `{"ticker":"TCS"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupPortfolioRouter(tc.svc, issuer)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio", bytes.NewBufferString(tc.body))
			req.Header.Set("Authorization", bearerFor(t, issuer, 7))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteHolding_NotFound(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	r := setupPortfolioRouter(&mockPortfolioService{delErr: storage.ErrNotFound}, issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/portfolio/99", nil)
	req.Header.Set("Authorization", bearerFor(t, issuer, 7))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExportPortfolio_CSVHeaders(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := &mockPortfolioService{csv: []byte("ticker,quantity\nTCS,10\n")}
	r := setupPortfolioRouter(svc, issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/export", nil)
	req.Header.Set("Authorization", bearerFor(t, issuer, 7))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type: %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Fatalf("missing content disposition")
	}
}
