package dto

import "github.com/stonksbro/nsepulse/internal/domain/models"

// QuoteResponse is the JSON body for GET /api/v1/stocks/price/:ticker.
//
// High/Low/Open/Volume are presentation fields the web client expects; the
// backend fills them from the snapshot (intraday granularity is a non-goal).
type QuoteResponse struct {
	Ticker        string            `json:"ticker" example:"TCS"`
	Price         float64           `json:"price" example:"3800.00"`
	Change        float64           `json:"change" example:"10.00"`
	ChangePercent float64           `json:"change_percent" example:"0.26"`
	PreviousClose float64           `json:"previous_close" example:"3790.00"`
	Currency      string            `json:"currency" example:"INR"`
	High          float64           `json:"high"`
	Low           float64           `json:"low"`
	Open          float64           `json:"open"`
	Volume        int64             `json:"volume"`
	ObservedAt    string            `json:"timestamp"`
	Source        models.Provenance `json:"source" example:"live"`
}

// NewQuoteResponse maps a quote snapshot onto the client contract.
func NewQuoteResponse(q models.Quote) QuoteResponse {
	return QuoteResponse{
		Ticker:        q.Ticker,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		PreviousClose: q.PreviousClose,
		Currency:      "INR",
		High:          q.Price,
		Low:           q.Price,
		Open:          q.PreviousClose,
		ObservedAt:    q.ObservedAt.Format("2006-01-02T15:04:05"),
		Source:        q.Provenance,
	}
}

// HistoryResponse is the JSON body for GET /api/v1/stocks/history/:ticker.
type HistoryResponse struct {
	Ticker    string                `json:"ticker" example:"TCS"`
	Data      []models.HistoryPoint `json:"data"`
	Synthetic bool                  `json:"synthetic,omitempty"` // true when the series is a generated placeholder
}

// IndexResponse is the JSON body for GET /api/v1/stocks/index: the domestic
// index quote plus its top component stocks, all from one bulk fetch.
type IndexResponse struct {
	Index      IndexQuote       `json:"index"`
	Components []ComponentQuote `json:"components"`
	Timestamp  string           `json:"timestamp"`
}

// IndexQuote is the index leg of IndexResponse.
type IndexQuote struct {
	QuoteResponse
	Name string `json:"name" example:"NIFTY 50 Index"`
}

// ComponentQuote is one component stock leg of IndexResponse.
type ComponentQuote struct {
	QuoteResponse
	Name string `json:"name" example:"Tata Consultancy Services"`
}

// SearchResponse is the JSON body for GET /api/v1/stocks/search/:query.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is one directory match.
type SearchResult struct {
	Ticker   string `json:"ticker" example:"TCS"`
	Name     string `json:"name" example:"Tata Consultancy Services"`
	Exchange string `json:"exchange" example:"NSE"`
}

// CacheStatsResponse reports the quote cache's operational state.
type CacheStatsResponse struct {
	EntryCount int     `json:"entry_count" example:"19"`
	TTLSeconds float64 `json:"ttl_seconds" example:"60"`
}
