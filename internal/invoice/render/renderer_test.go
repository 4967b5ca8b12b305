package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"github.com/tiffintrack/tiffintrack/internal/config"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

func sampleSummary() billdomain.Summary {
	return billdomain.Summary{
		Cycle: cycledomain.Cycle{
			Start: time.Date(2023, time.December, 21, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		},
		TotalPaise: 2*2000 + 3*5000,
		Counts:     billdomain.MealCounts{Breakfast: 2, Lunch: 3},
		Breakdown: []billdomain.BreakdownRow{
			{Date: "2023-12-21", Meals: mealdomain.DayRecord{Breakfast: 1, Lunch: 1}, SubtotalPaise: 7000},
			{Date: "2023-12-22", SubtotalPaise: 0},
		},
	}
}

func sampleView() BillView {
	return NewBillView(
		"User 1",
		"INV-202312-42",
		time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC),
		sampleSummary(),
		mealdomain.PricesFromConfig(config.DefaultPrices()),
	)
}

func TestNewBillViewSkipsZeroCountMeals(t *testing.T) {
	view := sampleView()
	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(view.Lines))
	}
	for _, line := range view.Lines {
		if line.Description == "Dinner" {
			t.Fatal("zero-count dinner produced a line item")
		}
	}
}

func TestNewBillViewLineAmountsSumToTotal(t *testing.T) {
	view := sampleView()
	var sum int64
	for _, line := range view.Lines {
		if line.AmountPaise != int64(line.Quantity)*line.UnitPaise {
			t.Fatalf("line %s amount %d != %d × %d", line.Description, line.AmountPaise, line.Quantity, line.UnitPaise)
		}
		sum += line.AmountPaise
	}
	if sum != view.TotalPaise {
		t.Fatalf("line sum %d != total %d", sum, view.TotalPaise)
	}
}

func TestPeriodLabel(t *testing.T) {
	view := sampleView()
	want := "Dec 21, 2023 – Jan 20, 2024"
	if got := view.PeriodLabel(); got != want {
		t.Fatalf("PeriodLabel() = %q, want %q", got, want)
	}
}

func TestRenderPDF(t *testing.T) {
	pdfBytes, err := NewRenderer().RenderPDF(sampleView())
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}

	// The breakdown adds a second page.
	single := sampleView()
	single.Breakdown = nil
	singleBytes, err := NewRenderer().RenderPDF(single)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	pages := bytes.Count(pdfBytes, []byte("/Type /Page"))
	singlePages := bytes.Count(singleBytes, []byte("/Type /Page"))
	if pages <= singlePages {
		t.Fatalf("expected breakdown to add a page: %d vs %d page objects", pages, singlePages)
	}
}

func TestRenderPDFWithoutBreakdownIsSinglePage(t *testing.T) {
	view := sampleView()
	view.Breakdown = nil

	pdfBytes, err := NewRenderer().RenderPDF(view)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderPDFSparseInput(t *testing.T) {
	// Missing name and an empty summary still produce a valid document.
	view := BillView{Number: "INV-0"}
	pdfBytes, err := NewRenderer().RenderPDF(view)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := NewRenderer().RenderHTML(sampleView())
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	for _, want := range []string{
		"User 1",
		"INV-202312-42",
		"Dec 21, 2023 – Jan 20, 2024",
		"₹190.00",
		"Daily Breakdown",
		"2023-12-21",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	if strings.Contains(html, "Dinner</td>") {
		t.Fatal("html contains a line item for the zero-count meal")
	}
}

func TestRenderHTMLDefaultsCustomerName(t *testing.T) {
	view := sampleView()
	view.CustomerName = ""
	html, err := NewRenderer().RenderHTML(view)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(html, "Customer") {
		t.Fatal("html missing fallback customer name")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage(sampleView())
	for _, want := range []string{
		"User 1",
		"Rs. 190.00",
		"Dec 21, 2023 – Jan 20, 2024",
		"attached",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}
