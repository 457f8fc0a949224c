package market

import (
	"strings"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

// Normalizer maps user-facing ticker symbols to the upstream provider's
// symbol form for the configured market.
//
// Rules:
//   - Canonical form is uppercase with the exchange suffix stripped.
//   - The domestic index alias maps to the index's upstream symbol.
//   - Every other ticker gets the exchange suffix appended.
//
// Normalization is idempotent: feeding an already-normalized symbol back in
// yields the same upstream symbol.
type Normalizer struct {
	suffix      string // exchange suffix, e.g. ".NS"
	indexAlias  string // user-facing index name, e.g. "NIFTY50"
	indexSymbol string // upstream index symbol, e.g. "^NSEI"
}

// NewNormalizer builds a Normalizer for one market.
func NewNormalizer(suffix, indexAlias, indexSymbol string) *Normalizer {
	return &Normalizer{
		suffix:      strings.ToUpper(suffix),
		indexAlias:  strings.ToUpper(indexAlias),
		indexSymbol: indexSymbol,
	}
}

// Canonical returns the canonical form of a ticker: trimmed, uppercased,
// exchange suffix removed. The upstream index symbol canonicalizes to the
// index alias so both spellings address the same cache entry.
func (n *Normalizer) Canonical(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	t = strings.TrimSuffix(t, n.suffix)
	if t == strings.ToUpper(n.indexSymbol) {
		return n.indexAlias
	}
	return t
}

// Upstream converts a ticker to the provider's symbol form.
func (n *Normalizer) Upstream(ticker string) string {
	c := n.Canonical(ticker)
	if c == n.indexAlias {
		return n.indexSymbol
	}
	return c + n.suffix
}

// directory lists the instruments this dashboard serves. Arbitrary global
// tickers are out of scope; everything here trades on the configured market.
var directory = map[string]models.StockInfo{
	"RELIANCE":   {Ticker: "RELIANCE", Name: "Reliance Industries", Sector: "Energy", CapClass: "Large Cap", MarketCap: 19_800_000_000_000},
	"TCS":        {Ticker: "TCS", Name: "Tata Consultancy Services", Sector: "IT", CapClass: "Large Cap", MarketCap: 13_900_000_000_000},
	"HDFCBANK":   {Ticker: "HDFCBANK", Name: "HDFC Bank", Sector: "Banking", CapClass: "Large Cap", MarketCap: 15_200_000_000_000},
	"INFY":       {Ticker: "INFY", Name: "Infosys", Sector: "IT", CapClass: "Large Cap", MarketCap: 6_400_000_000_000},
	"ICICIBANK":  {Ticker: "ICICIBANK", Name: "ICICI Bank", Sector: "Banking", CapClass: "Large Cap", MarketCap: 10_100_000_000_000},
	"HINDUNILVR": {Ticker: "HINDUNILVR", Name: "Hindustan Unilever", Sector: "FMCG", CapClass: "Large Cap", MarketCap: 5_600_000_000_000},
	"SBIN":       {Ticker: "SBIN", Name: "State Bank of India", Sector: "Banking", CapClass: "Large Cap", MarketCap: 7_300_000_000_000},
	"BHARTIARTL": {Ticker: "BHARTIARTL", Name: "Bharti Airtel", Sector: "Telecom", CapClass: "Large Cap", MarketCap: 11_600_000_000_000},
	"ITC":        {Ticker: "ITC", Name: "ITC Limited", Sector: "FMCG", CapClass: "Large Cap", MarketCap: 5_200_000_000_000},
	"KOTAKBANK":  {Ticker: "KOTAKBANK", Name: "Kotak Mahindra Bank", Sector: "Banking", CapClass: "Large Cap", MarketCap: 4_300_000_000_000},
	"WIPRO":      {Ticker: "WIPRO", Name: "Wipro", Sector: "IT", CapClass: "Large Cap", MarketCap: 2_600_000_000_000},
	"TATAMOTORS": {Ticker: "TATAMOTORS", Name: "Tata Motors", Sector: "Auto", CapClass: "Large Cap", MarketCap: 3_400_000_000_000},
	"MARUTI":     {Ticker: "MARUTI", Name: "Maruti Suzuki", Sector: "Auto", CapClass: "Large Cap", MarketCap: 4_100_000_000_000},
	"SUNPHARMA":  {Ticker: "SUNPHARMA", Name: "Sun Pharma", Sector: "Pharma", CapClass: "Large Cap", MarketCap: 4_400_000_000_000},
	"LT":         {Ticker: "LT", Name: "Larsen & Toubro", Sector: "Infra", CapClass: "Large Cap", MarketCap: 5_000_000_000_000},
	"BEL":        {Ticker: "BEL", Name: "Bharat Electronics", Sector: "Defence", CapClass: "Mid Cap", MarketCap: 450_000_000_000},
	"COALINDIA":  {Ticker: "COALINDIA", Name: "Coal India", Sector: "Energy", CapClass: "Large Cap", MarketCap: 2_400_000_000_000},
	"AXISBANK":   {Ticker: "AXISBANK", Name: "Axis Bank", Sector: "Banking", CapClass: "Large Cap", MarketCap: 3_700_000_000_000},
	"TITAN":      {Ticker: "TITAN", Name: "Titan Company", Sector: "Consumer", CapClass: "Large Cap", MarketCap: 3_100_000_000_000},
	"BAJFINANCE": {Ticker: "BAJFINANCE", Name: "Bajaj Finance", Sector: "Finance", CapClass: "Large Cap", MarketCap: 5_800_000_000_000},
}

// directoryOrder fixes a stable listing order for index components and search.
var directoryOrder = []string{
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "ICICIBANK",
	"HINDUNILVR", "SBIN", "BHARTIARTL", "ITC", "KOTAKBANK",
	"WIPRO", "TATAMOTORS", "MARUTI", "SUNPHARMA", "LT",
	"BEL", "COALINDIA", "AXISBANK", "TITAN", "BAJFINANCE",
}

// SectorBuckets groups directory tickers per sector for the heatmap.
var SectorBuckets = map[string][]string{
	"IT":      {"TCS", "INFY", "WIPRO"},
	"Banking": {"HDFCBANK", "ICICIBANK", "SBIN", "KOTAKBANK", "AXISBANK"},
	"Energy":  {"RELIANCE", "COALINDIA"},
	"Pharma":  {"SUNPHARMA"},
	"Auto":    {"TATAMOTORS", "MARUTI"},
	"FMCG":    {"HINDUNILVR", "ITC"},
	"Infra":   {"LT"},
	"Telecom": {"BHARTIARTL"},
}

// LookupInfo returns the directory entry for a canonical ticker.
func LookupInfo(ticker string) (models.StockInfo, bool) {
	info, ok := directory[ticker]
	return info, ok
}

// ListTickers returns the directory tickers in stable order, capped at limit
// (limit <= 0 means all).
func ListTickers(limit int) []string {
	if limit <= 0 || limit > len(directoryOrder) {
		limit = len(directoryOrder)
	}
	out := make([]string, limit)
	copy(out, directoryOrder[:limit])
	return out
}

// Search matches the query against tickers and company names,
// case-insensitively, returning at most max results in stable order.
func Search(query string, max int) []models.StockInfo {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.StockInfo
	for _, t := range directoryOrder {
		info := directory[t]
		if strings.Contains(t, q) || strings.Contains(strings.ToUpper(info.Name), q) {
			out = append(out, info)
			if max > 0 && len(out) >= max {
				break
			}
		}
	}
	return out
}
