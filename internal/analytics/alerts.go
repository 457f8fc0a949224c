package analytics

import "fmt"

// Alert is one triggered technical condition on a ticker.
type Alert struct {
	Type     string `json:"type" example:"RSI_OVERSOLD"`
	Severity string `json:"severity" example:"high"`
	Message  string `json:"message" example:"TCS is Oversold! RSI: 24.1"`
	Action   string `json:"action" example:"Potential BUY signal"`
}

// AlertsReport bundles the alerts triggered for one ticker.
type AlertsReport struct {
	Ticker     string  `json:"ticker" example:"TCS"`
	Alerts     []Alert `json:"alerts"`
	AlertCount int     `json:"alert_count"`
}

// AlertsFor derives alert conditions from a technical report: RSI
// extremes, a bullish MACD posture and closes pinned to a Bollinger band.
// An uneventful report yields an empty alert list, not an error.
func AlertsFor(rep TechnicalReport) AlertsReport {
	var alerts []Alert

	switch {
	case rep.RSI < 30:
		alerts = append(alerts, Alert{
			Type:     "RSI_OVERSOLD",
			Severity: "high",
			Message:  fmt.Sprintf("%s is Oversold! RSI: %v", rep.Ticker, rep.RSI),
			Action:   "Potential BUY signal",
		})
	case rep.RSI > 70:
		alerts = append(alerts, Alert{
			Type:     "RSI_OVERBOUGHT",
			Severity: "high",
			Message:  fmt.Sprintf("%s is Overbought! RSI: %v", rep.Ticker, rep.RSI),
			Action:   "Consider taking profits",
		})
	}

	if rep.MACD.Histogram > 0 && rep.MACD.MACD > rep.MACD.Signal {
		alerts = append(alerts, Alert{
			Type:     "MACD_BULLISH",
			Severity: "medium",
			Message:  fmt.Sprintf("%s MACD turned bullish", rep.Ticker),
			Action:   "Momentum is positive",
		})
	}

	switch {
	case rep.Bollinger.Position < 10:
		alerts = append(alerts, Alert{
			Type:     "BB_LOWER",
			Severity: "medium",
			Message:  fmt.Sprintf("%s near lower Bollinger Band", rep.Ticker),
			Action:   "Potential reversal zone",
		})
	case rep.Bollinger.Position > 90:
		alerts = append(alerts, Alert{
			Type:     "BB_UPPER",
			Severity: "medium",
			Message:  fmt.Sprintf("%s near upper Bollinger Band", rep.Ticker),
			Action:   "Extended from mean",
		})
	}

	return AlertsReport{Ticker: rep.Ticker, Alerts: alerts, AlertCount: len(alerts)}
}
