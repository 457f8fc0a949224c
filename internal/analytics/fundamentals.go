package analytics

import "fmt"

// Fundamentals is the fundamental profile served for one ticker. Ratio
// fields are nil when no figure is known; the directory only carries
// name, sector and market cap, so the ratios stay nil until a richer
// data source is wired.
type Fundamentals struct {
	Ticker             string   `json:"ticker" example:"TCS"`
	Name               string   `json:"name" example:"Tata Consultancy Services"`
	Sector             string   `json:"sector" example:"IT"`
	Industry           string   `json:"industry" example:"Unknown"`
	PERatio            *float64 `json:"pe_ratio"`
	ForwardPE          *float64 `json:"forward_pe"`
	DividendYield      float64  `json:"dividend_yield"`
	MarketCap          int64    `json:"market_cap"`
	MarketCapFormatted string   `json:"market_cap_formatted" example:"₹1.39L Cr"`
	CapCategory        string   `json:"cap_category" example:"Large Cap"`
	BookValue          *float64 `json:"book_value"`
	PriceToBook        *float64 `json:"price_to_book"`
	EPS                *float64 `json:"eps"`
	ROE                *float64 `json:"roe"`
	DebtToEquity       *float64 `json:"debt_to_equity"`
	Week52High         *float64 `json:"52_week_high"`
	Week52Low          *float64 `json:"52_week_low"`
	Source             string   `json:"source" example:"directory"`
}

// FormatMarketCap renders a market cap (in rupees) in crore notation.
// Unknown caps read "N/A".
func FormatMarketCap(cap int64) string {
	switch {
	case cap >= 10_000_000_000_000: // 1 lakh crore
		return fmt.Sprintf("₹%.2fL Cr", float64(cap)/10_000_000_000_000)
	case cap >= 100_000_000_000: // 10,000 crore
		return fmt.Sprintf("₹%.0f Cr", float64(cap)/10_000_000)
	case cap >= 10_000_000: // 1 crore
		return fmt.Sprintf("₹%.2f Cr", float64(cap)/10_000_000)
	case cap > 0:
		return fmt.Sprintf("₹%d", cap)
	}
	return "N/A"
}

// CapCategory buckets a market cap (in rupees) into the standard class.
// Unknown caps read "Unknown".
func CapCategory(cap int64) string {
	switch {
	case cap >= 500_000_000_000: // 50,000 crore
		return "Large Cap"
	case cap >= 100_000_000_000: // 10,000 crore
		return "Mid Cap"
	case cap > 0:
		return "Small Cap"
	}
	return "Unknown"
}
