package dto

// SentimentRequest is the JSON body for POST /api/v1/sentiment.
type SentimentRequest struct {
	Ticker    string   `json:"ticker" binding:"required" example:"TCS"`
	Headlines []string `json:"headlines,omitempty"`
}

// SentimentResponse is the scored sentiment for a ticker.
type SentimentResponse struct {
	Ticker            string `json:"ticker" example:"TCS"`
	Score             int    `json:"score" example:"62"`
	Label             string `json:"label" example:"Slightly Bullish"`
	PositiveCount     int    `json:"positive_count"`
	NegativeCount     int    `json:"negative_count"`
	HeadlinesAnalyzed int    `json:"headlines_analyzed"`
}
