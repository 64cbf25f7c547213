package system

import (
	"testing"
	"time"
)

func TestCurrentDateAndTimeFormats(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 9, 5, 3, 0, time.UTC)
	svc := NewService(func() time.Time { return fixed })

	if got := svc.CurrentDate()["current_date"]; got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %v", got)
	}
	if got := svc.CurrentTime()["current_time"]; got != "09:05:03" {
		t.Fatalf("expected 09:05:03, got %v", got)
	}
}

func TestNewServiceDefaultsClock(t *testing.T) {
	svc := NewService(nil)
	if svc.CurrentDate()["current_date"] == "" {
		t.Fatal("expected a date from the real clock")
	}
}
