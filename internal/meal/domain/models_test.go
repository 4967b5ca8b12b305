package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDayRecordQuantity(t *testing.T) {
	record := DayRecord{Breakfast: 2, Lunch: 1}
	if got := record.Quantity(MealBreakfast); got != 2 {
		t.Fatalf("breakfast quantity = %d, want 2", got)
	}
	if got := record.Quantity(MealDinner); got != 0 {
		t.Fatalf("dinner quantity = %d, want 0", got)
	}
}

func TestLogDayDefaultsToZero(t *testing.T) {
	log := Log{"2024-01-05": {Breakfast: 1}}
	day := log.Day(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
	if !day.IsZero() {
		t.Fatalf("expected zero record for missing date, got %+v", day)
	}
}

func TestLogValidateRejectsNegative(t *testing.T) {
	log := Log{"2024-01-05": {Lunch: -1}}
	if err := log.Validate(); !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestLogValidateRejectsBadDateKey(t *testing.T) {
	log := Log{"05-01-2024": {Lunch: 1}}
	if err := log.Validate(); !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestClamped(t *testing.T) {
	record := DayRecord{Breakfast: 3, Dinner: 1}
	got := record.Clamped()
	want := DayRecord{Breakfast: 1, Dinner: 1}
	if got != want {
		t.Fatalf("Clamped() = %+v, want %+v", got, want)
	}
}
