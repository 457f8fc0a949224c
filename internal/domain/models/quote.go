package models

import "time"

// Provenance tags where a quote's data came from.
//
// Values:
//   - ProvenanceLive: produced by a successful upstream fetch.
//   - ProvenanceFallback: reused stale cache entry or static fallback table.
type Provenance string

const (
	ProvenanceLive     Provenance = "live"
	ProvenanceFallback Provenance = "fallback"
)

// Quote represents one ticker's most recent observed price state.
//
// Change and ChangePercent are always derived together from Price and
// PreviousClose; they are never carried over from an older snapshot.
//
// swagger:model Quote
type Quote struct {
	Ticker        string     `json:"ticker" example:"TCS"`
	Price         float64    `json:"price" example:"3800.00"`
	PreviousClose float64    `json:"previous_close" example:"3790.00"`
	Change        float64    `json:"change" example:"10.00"`
	ChangePercent float64    `json:"change_percent" example:"0.26"`
	ObservedAt    time.Time  `json:"observed_at"`
	Provenance    Provenance `json:"provenance" example:"live"`
}

// HistoryPoint is one (date, closing price) sample of a historical series.
type HistoryPoint struct {
	Date  string  `json:"date" example:"2026-08-28"` // YYYY-MM-DD
	Price float64 `json:"price" example:"3785.40"`
}

// StockInfo describes a listed instrument from the market directory.
// MarketCap is a shipped last-known figure in rupees, like the fallback
// price table; zero means unknown.
type StockInfo struct {
	Ticker    string `json:"ticker" example:"TCS"`
	Name      string `json:"name" example:"Tata Consultancy Services"`
	Sector    string `json:"sector" example:"IT"`
	CapClass  string `json:"cap_class" example:"Large Cap"`
	MarketCap int64  `json:"market_cap,omitempty" example:"13900000000000"`
}
