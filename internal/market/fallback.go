package market

import (
	"time"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

// FallbackTable is a static mapping of canonical ticker to last-known-good
// price. It is loaded once at process start and never mutated; lookups that
// miss simply report absence and the ticker drops out of the result.
type FallbackTable map[string]float64

// DefaultFallbackPrices are the shipped last-known-good prices for the
// directory tickers and the domestic index.
func DefaultFallbackPrices() FallbackTable {
	return FallbackTable{
		"RELIANCE": 1450.0, "TCS": 3800.0, "HDFCBANK": 1650.0, "INFY": 1550.0,
		"ICICIBANK": 1100.0, "HINDUNILVR": 2400.0, "SBIN": 780.0, "BHARTIARTL": 1650.0,
		"ITC": 470.0, "KOTAKBANK": 1750.0, "WIPRO": 480.0, "TATAMOTORS": 980.0,
		"MARUTI": 12500.0, "SUNPHARMA": 1850.0, "LT": 3600.0, "BEL": 320.0,
		"COALINDIA": 480.0, "NIFTY50": 22500.0, "AXISBANK": 1150.0,
	}
}

// Lookup builds a fallback quote snapshot for a canonical ticker.
// Change and change percent are zero: the table only knows one price.
func (f FallbackTable) Lookup(ticker string, now time.Time) (models.Quote, bool) {
	price, ok := f[ticker]
	if !ok {
		return models.Quote{}, false
	}
	return models.Quote{
		Ticker:        ticker,
		Price:         price,
		PreviousClose: price,
		Change:        0,
		ChangePercent: 0,
		ObservedAt:    now,
		Provenance:    models.ProvenanceFallback,
	}, true
}
