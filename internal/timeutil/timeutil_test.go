package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.June || parsed.Day() != 1 {
		t.Fatalf("unexpected parse result %v", parsed)
	}

	if _, err := ParseDate("06/01/2024"); err == nil {
		t.Fatal("expected error for non-canonical format")
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("date", ""); err != nil {
		t.Fatalf("empty value must pass, got %v", err)
	}
	if err := ValidateDate("date", "2024-06-01"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := ValidateDate("start_date", "June 1")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if got := err.Error(); got != `invalid start_date "June 1": expected YYYY-MM-DD` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFormatters(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 9, 5, 3, 0, time.UTC)
	if got := FormatDate(fixed); got != "2024-06-01" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatClock(fixed); got != "09:05:03" {
		t.Fatalf("unexpected clock %q", got)
	}
}
