package auth

import (
	"strings"
	"testing"
	"time"
)

func TestStateStoreConsumeIsSingleUse(t *testing.T) {
	store := newStateStore()
	store.put("state-1", time.Now().Add(time.Minute))

	if !store.consume("state-1") {
		t.Fatal("fresh state must be consumable")
	}
	if store.consume("state-1") {
		t.Fatal("a state must not be consumable twice")
	}
	if store.consume("never-issued") {
		t.Fatal("unknown states must be rejected")
	}
}

func TestStateStoreRejectsExpired(t *testing.T) {
	store := newStateStore()
	store.put("stale", time.Now().Add(-time.Second))

	if store.consume("stale") {
		t.Fatal("expired state must be rejected")
	}
}

func TestStateStorePrunesExpiredOnPut(t *testing.T) {
	store := newStateStore()
	for i := 0; i < 5; i++ {
		store.put("stale-"+strings.Repeat("x", i), time.Now().Add(-time.Minute))
	}
	store.put("fresh", time.Now().Add(time.Minute))

	store.mu.Lock()
	n := len(store.items)
	store.mu.Unlock()
	if n != 1 {
		t.Fatalf("expected only the fresh state to remain, have %d entries", n)
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("https://app.example.com/auth?next=%2Fdashboard", "tok123")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	if !strings.Contains(got, "token=tok123") {
		t.Fatalf("redirect %q missing token", got)
	}
	if !strings.Contains(got, "next=%2Fdashboard") {
		t.Fatalf("redirect %q dropped existing query", got)
	}

	if _, err := appendToken("", "tok123"); err == nil {
		t.Fatal("empty redirect target must fail")
	}
}
