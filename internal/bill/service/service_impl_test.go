package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	"github.com/tiffintrack/tiffintrack/internal/config"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newAggregator(now time.Time) billdomain.Aggregator {
	return NewService(ServiceParam{
		Log:    zap.NewNop(),
		Clock:  clock.Fixed(now),
		Prices: mealdomain.PricesFromConfig(config.DefaultPrices()),
	})
}

func januaryCycle() cycledomain.Cycle {
	return cycledomain.Cycle{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.January, 31),
	}
}

func TestAggregateEmptyLog(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 1))

	summary, err := agg.Aggregate(mealdomain.Log{}, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.TotalPaise != 0 {
		t.Fatalf("total = %d, want 0", summary.TotalPaise)
	}
	if summary.Counts != (billdomain.MealCounts{}) {
		t.Fatalf("counts = %+v, want all zero", summary.Counts)
	}
	if len(summary.Breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %d rows", len(summary.Breakdown))
	}
}

func TestAggregateSingleDay(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2024-01-05": {Breakfast: 1, Lunch: 1},
	}

	summary, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	// ₹20 + ₹50 in paise.
	if summary.TotalPaise != 7000 {
		t.Fatalf("total = %d, want 7000", summary.TotalPaise)
	}
	want := billdomain.MealCounts{Breakfast: 1, Lunch: 1}
	if summary.Counts != want {
		t.Fatalf("counts = %+v, want %+v", summary.Counts, want)
	}
}

func TestAggregateMultipleServings(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2024-01-05": {Dinner: 3},
	}

	summary, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.TotalPaise != 18000 {
		t.Fatalf("total = %d, want 18000", summary.TotalPaise)
	}
	if summary.Counts.Dinner != 3 {
		t.Fatalf("dinner count = %d, want 3", summary.Counts.Dinner)
	}
}

func TestAggregateBreakdownAsymmetry(t *testing.T) {
	// Now is Jan 10: past empty days show as zero rows, future empty days
	// are omitted, and a future day with meals still appears.
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2024-01-05": {Breakfast: 1},
		"2024-01-20": {Lunch: 1},
	}

	summary, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// Jan 1..9 are past (9 rows, one of them nonzero), Jan 20 is a future
	// day with consumption.
	if len(summary.Breakdown) != 10 {
		t.Fatalf("breakdown has %d rows, want 10", len(summary.Breakdown))
	}
	last := summary.Breakdown[len(summary.Breakdown)-1]
	if last.Date != "2024-01-20" || last.SubtotalPaise != 5000 {
		t.Fatalf("unexpected final row %+v", last)
	}
	for _, row := range summary.Breakdown[:9] {
		if row.Date >= "2024-01-10" {
			t.Fatalf("future empty day %s included", row.Date)
		}
	}
	zeroRows := 0
	for _, row := range summary.Breakdown {
		if row.SubtotalPaise == 0 {
			zeroRows++
		}
	}
	if zeroRows != 8 {
		t.Fatalf("zero rows = %d, want 8", zeroRows)
	}
}

func TestAggregateIsPure(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2024-01-05": {Breakfast: 2, Lunch: 1, Dinner: 1},
	}

	first, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	second, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAggregateMonotonicity(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	base := mealdomain.Log{
		"2024-01-05": {Breakfast: 1, Lunch: 2},
	}
	bumped := mealdomain.Log{
		"2024-01-05": {Breakfast: 1, Lunch: 4},
	}

	before, err := agg.Aggregate(base, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	after, err := agg.Aggregate(bumped, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if delta := after.TotalPaise - before.TotalPaise; delta != 2*5000 {
		t.Fatalf("total delta = %d, want 10000", delta)
	}
	if after.Counts.Lunch-before.Counts.Lunch != 2 {
		t.Fatalf("lunch count delta = %d, want 2", after.Counts.Lunch-before.Counts.Lunch)
	}
	if after.Counts.Breakfast != before.Counts.Breakfast || after.Counts.Dinner != before.Counts.Dinner {
		t.Fatal("unrelated counts changed")
	}
}

func TestAggregateIgnoresDatesOutsideCycle(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2023-12-31": {Dinner: 1},
		"2024-02-01": {Dinner: 1},
		"2024-01-15": {Dinner: 1},
	}

	summary, err := agg.Aggregate(log, januaryCycle())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.TotalPaise != 6000 {
		t.Fatalf("total = %d, want 6000", summary.TotalPaise)
	}
	if summary.Counts.Dinner != 1 {
		t.Fatalf("dinner count = %d, want 1", summary.Counts.Dinner)
	}
}

func TestAggregateRejectsNegativeQuantity(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	log := mealdomain.Log{
		"2024-01-05": {Breakfast: -1},
	}

	_, err := agg.Aggregate(log, januaryCycle())
	if !errors.Is(err, mealdomain.ErrMalformedEntry) {
		t.Fatalf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestAggregateRejectsInvertedCycle(t *testing.T) {
	agg := newAggregator(date(2024, time.January, 10))
	cycle := cycledomain.Cycle{
		Start: date(2024, time.January, 31),
		End:   date(2024, time.January, 1),
	}

	_, err := agg.Aggregate(mealdomain.Log{}, cycle)
	if !errors.Is(err, billdomain.ErrInvalidCycle) {
		t.Fatalf("expected ErrInvalidCycle, got %v", err)
	}
}

func TestFormatPaise(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "0.00"},
		{7000, "70.00"},
		{7005, "70.05"},
		{199, "1.99"},
	}
	for _, tc := range cases {
		if got := billdomain.FormatPaise(tc.paise); got != tc.want {
			t.Fatalf("FormatPaise(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}
