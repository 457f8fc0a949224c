package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// user.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint rejects an insert
// (username/email already registered, ticker already watched).
var ErrDuplicate = errors.New("already exists")

// UsersRepository defines the contract for account rows.
type UsersRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// PortfolioRepository defines the contract for holdings and watchlist rows.
type PortfolioRepository interface {
	ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error)
	GetHolding(ctx context.Context, userID, id int64) (*models.Holding, error)
	InsertHolding(ctx context.Context, h *models.Holding) error
	UpdateHolding(ctx context.Context, h *models.Holding) error
	DeleteHolding(ctx context.Context, userID, id int64) error

	ListWatchlist(ctx context.Context, userID int64) ([]models.WatchItem, error)
	AddWatch(ctx context.Context, userID int64, ticker string) (*models.WatchItem, error)
	RemoveWatch(ctx context.Context, userID int64, ticker string) error
}

type repository struct {
	db *sql.DB
}

// NewUsersRepository builds a UsersRepository over an open connection pool.
func NewUsersRepository(db *sql.DB) UsersRepository {
	return &repository{db: db}
}

// NewPortfolioRepository builds a PortfolioRepository over an open
// connection pool.
func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return &repository{db: db}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *repository) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at
	`, username, email, passwordHash).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *repository) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, ticker, quantity, buy_price, source_app, bought_at
		FROM holdings WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select holdings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.UserID, &h.Ticker, &h.Quantity, &h.BuyPrice, &h.SourceApp, &h.BoughtAt); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repository) GetHolding(ctx context.Context, userID, id int64) (*models.Holding, error) {
	var h models.Holding
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, ticker, quantity, buy_price, source_app, bought_at
		FROM holdings WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&h.ID, &h.UserID, &h.Ticker, &h.Quantity, &h.BuyPrice, &h.SourceApp, &h.BoughtAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select holding: %w", err)
	}
	return &h, nil
}

func (r *repository) InsertHolding(ctx context.Context, h *models.Holding) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO holdings (user_id, ticker, quantity, buy_price, source_app)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, bought_at
	`, h.UserID, h.Ticker, h.Quantity, h.BuyPrice, h.SourceApp).Scan(&h.ID, &h.BoughtAt)
	if err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}
	return nil
}

func (r *repository) UpdateHolding(ctx context.Context, h *models.Holding) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE holdings
		SET ticker = $1, quantity = $2, buy_price = $3, source_app = $4
		WHERE id = $5 AND user_id = $6
	`, h.Ticker, h.Quantity, h.BuyPrice, h.SourceApp, h.ID, h.UserID)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update holding rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteHolding(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete holding rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ListWatchlist(ctx context.Context, userID int64) ([]models.WatchItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, ticker, added_at
		FROM watchlist WHERE user_id = $1
		ORDER BY added_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select watchlist: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.WatchItem
	for rows.Next() {
		var w models.WatchItem
		if err := rows.Scan(&w.ID, &w.UserID, &w.Ticker, &w.AddedAt); err != nil {
			return nil, fmt.Errorf("scan watch item: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *repository) AddWatch(ctx context.Context, userID int64, ticker string) (*models.WatchItem, error) {
	var w models.WatchItem
	w.UserID = userID
	w.Ticker = ticker
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO watchlist (user_id, ticker)
		VALUES ($1, $2)
		RETURNING id, added_at
	`, userID, ticker).Scan(&w.ID, &w.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert watch item: %w", err)
	}
	return &w, nil
}

func (r *repository) RemoveWatch(ctx context.Context, userID int64, ticker string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE user_id = $1 AND ticker = $2`, userID, ticker)
	if err != nil {
		return fmt.Errorf("delete watch item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete watch rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
