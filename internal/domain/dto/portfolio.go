package dto

// HoldingCreateRequest is the JSON body for POST /api/v1/portfolio.
type HoldingCreateRequest struct {
	Ticker    string  `json:"ticker" binding:"required" example:"INFY"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0" example:"12"`
	BuyPrice  float64 `json:"buy_price" binding:"required,gt=0" example:"1500.50"`
	SourceApp string  `json:"source_app" example:"Zerodha"`
}

// HoldingUpdateRequest is the JSON body for PUT /api/v1/portfolio/:id.
// Nil fields are left unchanged.
type HoldingUpdateRequest struct {
	Ticker    *string  `json:"ticker,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	BuyPrice  *float64 `json:"buy_price,omitempty"`
	SourceApp *string  `json:"source_app,omitempty"`
}

// EnrichedHolding is a portfolio row joined with its live quote and the
// derived valuation figures.
type EnrichedHolding struct {
	ID              int64   `json:"id"`
	Ticker          string  `json:"ticker" example:"INFY"`
	Quantity        float64 `json:"quantity" example:"12"`
	BuyPrice        float64 `json:"buy_price" example:"1500.50"`
	SourceApp       string  `json:"source_app" example:"Zerodha"`
	BoughtAt        string  `json:"bought_at,omitempty"`
	CurrentPrice    float64 `json:"current_price" example:"1550.00"`
	InvestedValue   float64 `json:"invested_value" example:"18006.00"`
	CurrentValue    float64 `json:"current_value" example:"18600.00"`
	GainLoss        float64 `json:"gain_loss" example:"594.00"`
	GainLossPercent float64 `json:"gain_loss_percent" example:"3.30"`
	Sector          string  `json:"sector" example:"IT"`
	CapCategory     string  `json:"cap_category" example:"Large Cap"`
	BrokerColor     string  `json:"broker_color" example:"#387ed1"`
}

// PortfolioSummary aggregates a user's whole portfolio.
type PortfolioSummary struct {
	TotalInvested   float64            `json:"total_invested"`
	TotalCurrent    float64            `json:"total_current"`
	TotalGainLoss   float64            `json:"total_gain_loss"`
	GainLossPercent float64            `json:"gain_loss_percent"`
	HoldingsCount   int                `json:"holdings_count"`
	BySector        map[string]float64 `json:"by_sector"`  // sector -> current value
	ByBroker        map[string]float64 `json:"by_broker"`  // source app -> current value
}
