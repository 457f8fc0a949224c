package market

import (
	"errors"
	"testing"
	"time"
)

func TestMemo_HitAndExpiry(t *testing.T) {
	clk := newFakeClock()
	m := NewMemo[int](2 * time.Minute)
	m.now = clk.Now

	fills := 0
	fill := func() (int, error) {
		fills++
		return 42, nil
	}

	if v, err := m.Get("k", fill); err != nil || v != 42 {
		t.Fatalf("first get: v=%d err=%v", v, err)
	}
	if v, _ := m.Get("k", fill); v != 42 {
		t.Fatalf("second get: v=%d", v)
	}
	if fills != 1 {
		t.Fatalf("fill ran %d times within TTL, want 1", fills)
	}

	clk.Advance(3 * time.Minute)
	if _, err := m.Get("k", fill); err != nil {
		t.Fatalf("post-expiry get: %v", err)
	}
	if fills != 2 {
		t.Fatalf("fill ran %d times after expiry, want 2", fills)
	}
}

func TestMemo_ErrorsNotCached(t *testing.T) {
	m := NewMemo[string](time.Minute)

	calls := 0
	boom := func() (string, error) {
		calls++
		return "", errors.New("boom")
	}
	if _, err := m.Get("k", boom); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := m.Get("k", boom); err == nil {
		t.Fatalf("expected error again")
	}
	if calls != 2 {
		t.Fatalf("failed fill should retry, got %d calls", calls)
	}
	if m.Len() != 0 {
		t.Fatalf("errors must not be stored, len=%d", m.Len())
	}
}

func TestMemo_Clear(t *testing.T) {
	m := NewMemo[int](time.Minute)
	_, _ = m.Get("a", func() (int, error) { return 1, nil })
	_, _ = m.Get("b", func() (int, error) { return 2, nil })
	if m.Len() != 2 {
		t.Fatalf("len=%d, want 2", m.Len())
	}
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("len after clear=%d", m.Len())
	}
}
