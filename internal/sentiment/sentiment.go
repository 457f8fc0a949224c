// Package sentiment scores news headlines with keyword counting. It is a
// deliberately simple signal: a handful of finance-flavored word lists, no
// model, bounded to a 10–90 score centered at 50.
package sentiment

import "strings"

var positiveWords = []string{
	"up", "rise", "gain", "growth", "profit", "surge", "rally", "jump", "boost",
	"strong", "bullish", "optimistic", "positive", "record", "high", "success",
	"beat", "exceed", "outperform", "upgrade", "buy", "recommend", "expansion",
	"dividend", "earnings", "revenue", "increase", "momentum", "breakout", "soar",
}

var negativeWords = []string{
	"down", "fall", "drop", "decline", "loss", "plunge", "crash", "sink", "weak",
	"bearish", "pessimistic", "negative", "low", "miss", "fail", "underperform",
	"downgrade", "sell", "cut", "layoff", "debt", "warning", "risk", "concern",
	"volatile", "uncertain", "slump", "tumble", "correction", "recession",
}

// maxHeadlines caps how many headlines feed one score.
const maxHeadlines = 3

// Result is the outcome of scoring a headline set.
type Result struct {
	Score             int `json:"score"`
	PositiveCount     int `json:"positive_count"`
	NegativeCount     int `json:"negative_count"`
	HeadlinesAnalyzed int `json:"headlines_analyzed"`
}

// Analyze scores up to maxHeadlines headlines. An empty set is neutral.
func Analyze(headlines []string) Result {
	if len(headlines) == 0 {
		return Result{Score: 50}
	}
	if len(headlines) > maxHeadlines {
		headlines = headlines[:maxHeadlines]
	}

	var pos, neg int
	for _, h := range headlines {
		lower := strings.ToLower(h)
		for _, w := range positiveWords {
			if strings.Contains(lower, w) {
				pos++
			}
		}
		for _, w := range negativeWords {
			if strings.Contains(lower, w) {
				neg++
			}
		}
	}

	score := 50
	if total := pos + neg; total > 0 {
		ratio := float64(pos-neg) / float64(total)
		score = 50 + int(ratio*40)
	}
	if score < 10 {
		score = 10
	}
	if score > 90 {
		score = 90
	}

	return Result{
		Score:             score,
		PositiveCount:     pos,
		NegativeCount:     neg,
		HeadlinesAnalyzed: len(headlines),
	}
}

// Label maps a score to its display bucket.
func Label(score int) string {
	switch {
	case score >= 70:
		return "Bullish"
	case score >= 55:
		return "Slightly Bullish"
	case score >= 45:
		return "Neutral"
	case score >= 30:
		return "Slightly Bearish"
	default:
		return "Bearish"
	}
}
