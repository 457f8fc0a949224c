package analytics

import (
	"math"
	"testing"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func rising(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestRSI(t *testing.T) {
	// Monotonic rise: no losses, RSI pegs at 100.
	if got := RSI(rising(30, 100, 1), 14); got != 100 {
		t.Fatalf("rising RSI=%v, want 100", got)
	}
	// Monotonic fall: no gains, RSI 0.
	if got := RSI(rising(30, 100, -1), 14); got != 0 {
		t.Fatalf("falling RSI=%v, want 0", got)
	}
	// Too short: neutral.
	if got := RSI([]float64{1, 2, 3}, 14); got != 50 {
		t.Fatalf("short RSI=%v, want 50", got)
	}
}

func TestMACD_Trend(t *testing.T) {
	up := MACD(rising(60, 100, 1))
	if up.Trend != "Bullish" {
		t.Fatalf("rising trend=%q, want Bullish", up.Trend)
	}
	if !almost(up.Histogram, up.MACD-up.Signal) {
		t.Fatalf("histogram %v != macd-signal %v", up.Histogram, up.MACD-up.Signal)
	}

	down := MACD(rising(60, 200, -1))
	if down.Trend != "Bearish" {
		t.Fatalf("falling trend=%q, want Bearish", down.Trend)
	}

	if MACD([]float64{100}).Trend != "Neutral" {
		t.Fatalf("degenerate series should be Neutral")
	}
}

func TestBollinger(t *testing.T) {
	// Flat series: zero width, position parks at 50.
	flat := make([]float64, 25)
	for i := range flat {
		flat[i] = 100
	}
	b := Bollinger(flat, 20, 2)
	if b.Position != 50 || b.Signal != "Neutral" {
		t.Fatalf("flat bollinger: %+v", b)
	}
	if b.Upper != 100 || b.Lower != 100 || b.Middle != 100 {
		t.Fatalf("flat bands: %+v", b)
	}

	// Last close at the top of a rising window reads overbought.
	r := Bollinger(rising(25, 100, 1), 20, 2)
	if r.Signal != "Overbought" {
		t.Fatalf("rising window signal=%q position=%v", r.Signal, r.Position)
	}

	// Short series: neutral defaults.
	s := Bollinger([]float64{1, 2}, 20, 2)
	if s.Position != 50 || s.Signal != "Neutral" {
		t.Fatalf("short bollinger: %+v", s)
	}
}

func TestLongEMAs(t *testing.T) {
	short := LongEMAs(rising(60, 100, 1))
	if short.EMA50 == nil || short.EMA200 != nil {
		t.Fatalf("60 samples: %+v", short)
	}
	if short.AboveEMA50 == nil || !*short.AboveEMA50 {
		t.Fatalf("last close of a rising series sits above its EMA50: %+v", short)
	}
	if short.CrossSignal != "" {
		t.Fatalf("no cross signal without both EMAs: %q", short.CrossSignal)
	}

	long := LongEMAs(rising(250, 100, 1))
	if long.EMA50 == nil || long.EMA200 == nil {
		t.Fatalf("250 samples: %+v", long)
	}
	if long.CrossSignal != "Golden Cross" {
		t.Fatalf("rising series cross=%q, want Golden Cross", long.CrossSignal)
	}

	fall := LongEMAs(rising(250, 1000, -1))
	if fall.CrossSignal != "Death Cross" {
		t.Fatalf("falling series cross=%q, want Death Cross", fall.CrossSignal)
	}
}

func TestReport(t *testing.T) {
	rep := Report("TCS", rising(60, 100, 1))
	if rep.Ticker != "TCS" {
		t.Fatalf("ticker=%q", rep.Ticker)
	}
	if rep.RSI != 100 || rep.MACD.Trend != "Bullish" {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestSectorHeatmap(t *testing.T) {
	quotes := map[string]models.Quote{
		"TCS":  {Ticker: "TCS", ChangePercent: 2.0},
		"INFY": {Ticker: "INFY", ChangePercent: 1.0},
		"SBIN": {Ticker: "SBIN", ChangePercent: -0.5},
	}
	buckets := map[string][]string{
		"IT":      {"TCS", "INFY", "WIPRO"}, // WIPRO unquoted, skipped
		"Banking": {"SBIN"},
		"Pharma":  {"SUNPHARMA"}, // nothing quoted, dropped
	}

	out := SectorHeatmap(quotes, buckets)
	if len(out) != 2 {
		t.Fatalf("got %d sectors, want 2: %+v", len(out), out)
	}
	if out[0].Sector != "IT" || !almost(out[0].ChangePercent, 1.5) || out[0].QuotedCount != 2 {
		t.Fatalf("unexpected leader: %+v", out[0])
	}
	if out[1].Sector != "Banking" || !almost(out[1].ChangePercent, -0.5) {
		t.Fatalf("unexpected second: %+v", out[1])
	}
}
