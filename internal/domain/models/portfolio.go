package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" example:"trader42"`
	Email        string    `json:"email" example:"trader42@example.com"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Holding is one portfolio row: a quantity of a ticker bought at a price
// through a broker app.
type Holding struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Ticker    string    `json:"ticker" example:"INFY"`
	Quantity  float64   `json:"quantity" example:"12"`
	BuyPrice  float64   `json:"buy_price" example:"1500.50"`
	SourceApp string    `json:"source_app" example:"Zerodha"`
	BoughtAt  time.Time `json:"bought_at"`
}

// WatchItem is one watchlist row for a user.
type WatchItem struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"-"`
	Ticker  string    `json:"ticker" example:"TCS"`
	AddedAt time.Time `json:"added_at"`
}
