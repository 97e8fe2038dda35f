package dates_test

import (
	"testing"

	"github.com/DanteArceneaux/wegovy/internal/dates"
)

func TestAddDays_MonthRollover(t *testing.T) {
	result, err := dates.AddDays("2024-01-31", 1)
	if err != nil {
		t.Fatalf("adding day: %v", err)
	}
	if result != "2024-02-01" {
		t.Errorf("expected 2024-02-01, got %s", result)
	}
}

func TestAddDays_LeapYearBackward(t *testing.T) {
	result, err := dates.AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatalf("subtracting day: %v", err)
	}
	if result != "2024-02-29" {
		t.Errorf("expected 2024-02-29, got %s", result)
	}
}

func TestAddDays_YearRollover(t *testing.T) {
	result, err := dates.AddDays("2023-12-31", 1)
	if err != nil {
		t.Fatalf("adding day: %v", err)
	}
	if result != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %s", result)
	}
}

func TestAddDays_InvalidDate(t *testing.T) {
	if _, err := dates.AddDays("not-a-date", 1); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		expected int
	}{
		{"2024-01-10", "2024-01-12", 2},
		{"2024-01-12", "2024-01-10", -2},
		{"2024-02-28", "2024-03-01", 2},
		{"2024-01-01", "2024-01-01", 0},
	}
	for _, tc := range cases {
		got, err := dates.DaysBetween(tc.from, tc.to)
		if err != nil {
			t.Fatalf("days between %s and %s: %v", tc.from, tc.to, err)
		}
		if got != tc.expected {
			t.Errorf("days between %s and %s: expected %d, got %d", tc.from, tc.to, tc.expected, got)
		}
	}
}

func TestFormatReadable(t *testing.T) {
	if got := dates.FormatReadable("2024-01-05"); got != "Friday, January 5" {
		t.Errorf("expected 'Friday, January 5', got %q", got)
	}
	if got := dates.FormatReadable(""); got != "" {
		t.Errorf("expected empty string for empty input, got %q", got)
	}
}

func TestToday_IsValidDate(t *testing.T) {
	if !dates.Valid(dates.Today()) {
		t.Errorf("Today returned malformed date %q", dates.Today())
	}
}
