// Package analytics derives technical signals from closing-price series.
// All functions are pure; the service layer feeds them series from the
// market core and memoizes the results.
package analytics

import "math"

// TechnicalReport bundles the indicators served for one ticker.
type TechnicalReport struct {
	Ticker    string          `json:"ticker" example:"TCS"`
	RSI       float64         `json:"rsi" example:"56.20"`
	MACD      MACDResult      `json:"macd"`
	Bollinger BollingerResult `json:"bollinger"`
	EMA       EMAResult       `json:"ema"`
}

// MACDResult is the MACD(12,26,9) reading.
type MACDResult struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
	Trend     string  `json:"trend" example:"Bullish"`
}

// BollingerResult is the Bollinger(20,2) reading. Position is where the
// last close sits within the bands, 0–100.
type BollingerResult struct {
	Upper    float64 `json:"upper"`
	Middle   float64 `json:"middle"`
	Lower    float64 `json:"lower"`
	Position float64 `json:"position"`
	Signal   string  `json:"signal" example:"Neutral"`
}

// EMAResult carries the long EMAs and the cross signal. The EMA values are
// nil when the series is shorter than their span.
type EMAResult struct {
	EMA50       *float64 `json:"ema50"`
	EMA200      *float64 `json:"ema200"`
	AboveEMA50  *bool    `json:"above_ema50"`
	AboveEMA200 *bool    `json:"above_ema200"`
	CrossSignal string   `json:"cross_signal,omitempty" example:"Golden Cross"`
}

// Report computes all indicators for one close series.
func Report(ticker string, closes []float64) TechnicalReport {
	return TechnicalReport{
		Ticker:    ticker,
		RSI:       RSI(closes, 14),
		MACD:      MACD(closes),
		Bollinger: Bollinger(closes, 20, 2),
		EMA:       LongEMAs(closes),
	}
}

// RSI computes the Relative Strength Index over the trailing period using
// simple averages of gains and losses. Returns the neutral 50 when the
// series is too short.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}
	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	gain /= float64(period)
	loss /= float64(period)
	if loss == 0 {
		return 100
	}
	rs := gain / loss
	return round2(100 - 100/(1+rs))
}

// ema computes an exponential moving average series with alpha 2/(span+1),
// seeded at the first sample.
func ema(closes []float64, span int) []float64 {
	if len(closes) == 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1)
	out := make([]float64, len(closes))
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = alpha*closes[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD computes MACD(12,26,9) with a Bullish/Bearish trend label.
func MACD(closes []float64) MACDResult {
	if len(closes) < 2 {
		return MACDResult{Trend: "Neutral"}
	}
	e12 := ema(closes, 12)
	e26 := ema(closes, 26)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = e12[i] - e26[i]
	}
	signal := ema(line, 9)

	last := len(closes) - 1
	trend := "Bearish"
	if line[last] > signal[last] {
		trend = "Bullish"
	}
	return MACDResult{
		MACD:      round2(line[last]),
		Signal:    round2(signal[last]),
		Histogram: round2(line[last] - signal[last]),
		Trend:     trend,
	}
}

// Bollinger computes the Bollinger bands over the trailing period with the
// given standard-deviation multiplier.
func Bollinger(closes []float64, period int, mult float64) BollingerResult {
	if len(closes) < period {
		return BollingerResult{Position: 50, Signal: "Neutral"}
	}
	window := closes[len(closes)-period:]

	var sum float64
	for _, v := range window {
		sum += v
	}
	mean := sum / float64(period)

	var sq float64
	for _, v := range window {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(period-1))

	upper := mean + mult*std
	lower := mean - mult*std
	price := closes[len(closes)-1]

	position := 50.0
	if width := upper - lower; width > 0 {
		position = (price - lower) / width * 100
	}

	signal := "Neutral"
	switch {
	case position > 80:
		signal = "Overbought"
	case position < 20:
		signal = "Oversold"
	}

	return BollingerResult{
		Upper:    round2(upper),
		Middle:   round2(mean),
		Lower:    round2(lower),
		Position: round2(position),
		Signal:   signal,
	}
}

// LongEMAs computes EMA50/EMA200 with above/below flags and the
// golden/death cross signal. EMAs whose span exceeds the series length are
// left nil.
func LongEMAs(closes []float64) EMAResult {
	var out EMAResult
	if len(closes) == 0 {
		return out
	}
	price := closes[len(closes)-1]

	if len(closes) >= 50 {
		v := round2(ema(closes, 50)[len(closes)-1])
		above := price > v
		out.EMA50, out.AboveEMA50 = &v, &above
	}
	if len(closes) >= 200 {
		v := round2(ema(closes, 200)[len(closes)-1])
		above := price > v
		out.EMA200, out.AboveEMA200 = &v, &above
	}
	if out.EMA50 != nil && out.EMA200 != nil {
		if *out.EMA50 > *out.EMA200 {
			out.CrossSignal = "Golden Cross"
		} else {
			out.CrossSignal = "Death Cross"
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
