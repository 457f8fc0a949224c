package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &repository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestCreateUser_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(int64(1), "trader42", "t@example.com", "hash", now)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("trader42", "t@example.com", "hash").
		WillReturnRows(rows)

	u, err := repo.CreateUser(context.Background(), "trader42", "t@example.com", "hash")
	if err != nil || u.ID != 1 || u.Username != "trader42" {
		t.Fatalf("unexpected: u=%+v err=%v", u, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListHoldings_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "ticker", "quantity", "buy_price", "source_app", "bought_at"}).
		AddRow(int64(1), int64(7), "TCS", 10.0, 3500.0, "Zerodha", now).
		AddRow(int64(2), int64(7), "INFY", 5.0, 1500.0, "Manual", now)
	mock.ExpectQuery(`SELECT id, user_id, ticker, quantity, buy_price, source_app, bought_at`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	out, err := repo.ListHoldings(context.Background(), 7)
	if err != nil || len(out) != 2 {
		t.Fatalf("unexpected: out=%+v err=%v", out, err)
	}
	if out[0].Ticker != "TCS" || out[1].Ticker != "INFY" {
		t.Fatalf("unexpected rows: %+v", out)
	}
}

func TestInsertHolding_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO holdings`).
		WithArgs(int64(7), "TCS", 10.0, 3500.0, "Zerodha").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bought_at"}).AddRow(int64(3), now))

	h := &models.Holding{UserID: 7, Ticker: "TCS", Quantity: 10, BuyPrice: 3500, SourceApp: "Zerodha"}
	if err := repo.InsertHolding(context.Background(), h); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if h.ID != 3 || h.BoughtAt.IsZero() {
		t.Fatalf("ids not backfilled: %+v", h)
	}
}

func TestUpdateHolding_RowChecks(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	h := &models.Holding{ID: 3, UserID: 7, Ticker: "TCS", Quantity: 12, BuyPrice: 3400, SourceApp: "Groww"}

	mock.ExpectExec(`UPDATE holdings`).
		WithArgs("TCS", 12.0, 3400.0, "Groww", int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.UpdateHolding(context.Background(), h); err != nil {
		t.Fatalf("update: %v", err)
	}

	mock.ExpectExec(`UPDATE holdings`).
		WithArgs("TCS", 12.0, 3400.0, "Groww", int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.UpdateHolding(context.Background(), h); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound on zero rows, got %v", err)
	}
}

func TestDeleteHolding_RowChecks(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`DELETE FROM holdings`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.DeleteHolding(context.Background(), 7, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec(`DELETE FROM holdings`).
		WithArgs(int64(9), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.DeleteHolding(context.Background(), 7, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestWatchlist_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO watchlist`).
		WithArgs(int64(7), "TCS").
		WillReturnRows(sqlmock.NewRows([]string{"id", "added_at"}).AddRow(int64(1), now))

	w, err := repo.AddWatch(context.Background(), 7, "TCS")
	if err != nil || w.ID != 1 || w.Ticker != "TCS" {
		t.Fatalf("unexpected: w=%+v err=%v", w, err)
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "ticker", "added_at"}).
		AddRow(int64(1), int64(7), "TCS", now)
	mock.ExpectQuery(`SELECT id, user_id, ticker, added_at`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	list, err := repo.ListWatchlist(context.Background(), 7)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected: list=%+v err=%v", list, err)
	}

	mock.ExpectExec(`DELETE FROM watchlist`).
		WithArgs(int64(7), "TCS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.RemoveWatch(context.Background(), 7, "TCS"); err != nil {
		t.Fatalf("remove: %v", err)
	}
}
