package main

import (
	"testing"
	"time"
)

func TestUntilNextLaterToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	wait, err := untilNext("09:00", now)
	if err != nil {
		t.Fatalf("untilNext: %v", err)
	}
	if wait != time.Hour {
		t.Errorf("wait = %s, want 1h", wait)
	}
}

func TestUntilNextRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	wait, err := untilNext("09:00", now)
	if err != nil {
		t.Fatalf("untilNext: %v", err)
	}
	if wait != 23*time.Hour+30*time.Minute {
		t.Errorf("wait = %s, want 23h30m", wait)
	}
}

func TestUntilNextExactMomentRolls(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	wait, err := untilNext("09:00", now)
	if err != nil {
		t.Fatalf("untilNext: %v", err)
	}
	if wait != 24*time.Hour {
		t.Errorf("wait = %s, want 24h", wait)
	}
}

func TestUntilNextRejectsGarbage(t *testing.T) {
	if _, err := untilNext("quarter past nine", time.Now()); err == nil {
		t.Fatal("expected an error for a non HH:MM value")
	}
}
