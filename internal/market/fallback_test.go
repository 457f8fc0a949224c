package market

import (
	"testing"
	"time"

	"github.com/stonksbro/nsepulse/internal/domain/models"
)

func TestFallbackTable_Lookup(t *testing.T) {
	table := DefaultFallbackPrices()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	q, ok := table.Lookup("INFY", now)
	if !ok {
		t.Fatalf("INFY should be in the fallback table")
	}
	if q.Price != 1550 || q.PreviousClose != 1550 {
		t.Fatalf("unexpected prices: %+v", q)
	}
	if q.Change != 0 || q.ChangePercent != 0 {
		t.Fatalf("fallback entries carry zero change: %+v", q)
	}
	if q.Provenance != models.ProvenanceFallback {
		t.Fatalf("provenance=%v", q.Provenance)
	}
	if !q.ObservedAt.Equal(now) {
		t.Fatalf("observed_at=%v, want %v", q.ObservedAt, now)
	}

	if _, ok := table.Lookup("NOSUCH", now); ok {
		t.Fatalf("unknown ticker should be absent")
	}
}
