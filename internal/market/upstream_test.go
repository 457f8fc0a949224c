package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func chartServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestChartClient_FetchCloses(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1756080000,1756166400,1756252800],
		"indicators":{"quote":[{"close":[3750.0,null,3800.5]}]}}],"error":null}}`
	srv := chartServer(t, http.StatusOK, body)
	defer srv.Close()

	c := NewChartClient(srv.URL, time.Second)
	closes, err := c.FetchCloses(context.Background(), "TCS.NS", "5d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Null close dropped
	if len(closes) != 2 {
		t.Fatalf("got %d closes, want 2: %+v", len(closes), closes)
	}
	if closes[0].Price != 3750 || closes[1].Price != 3800.5 {
		t.Fatalf("unexpected closes: %+v", closes)
	}
	if closes[0].Date.After(closes[1].Date) {
		t.Fatalf("closes not chronological: %+v", closes)
	}
}

func TestChartClient_Errors_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"bad status", http.StatusTooManyRequests, `{}`},
		{"api error", http.StatusOK, `{"chart":{"result":[],"error":{"code":"Not Found"}}}`},
		{"empty result", http.StatusOK, `{"chart":{"result":[],"error":null}}`},
		{"invalid json", http.StatusOK, `{not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := chartServer(t, tc.status, tc.body)
			defer srv.Close()

			c := NewChartClient(srv.URL, time.Second)
			if _, err := c.FetchCloses(context.Background(), "TCS.NS", "5d"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestChartClient_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewChartClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := c.FetchCloses(ctx, "TCS.NS", "5d"); err == nil {
		t.Fatalf("expected context error")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("request did not honor context deadline")
	}
}
