package render

import (
	"bytes"
	"fmt"
	"strings"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	"github.com/go-pdf/fpdf"
)

const companyName = "TiffinTrack"

// The core PDF fonts have no rupee glyph, so amounts carry an ASCII prefix.
func pdfMoney(paise int64) string {
	return "Rs. " + billdomain.FormatPaise(paise)
}

func (r *renderer) RenderPDF(view BillView) ([]byte, error) {
	name := strings.TrimSpace(view.CustomerName)
	if name == "" {
		name = "Customer"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s Bill %s", companyName, view.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Monthly Tiffin Bill", "", 1, "L", false, 0, "")
	if view.Number != "" {
		pdf.CellFormat(0, 6, "Bill No: "+view.Number, "", 1, "L", false, 0, "")
	}
	if !view.IssuedAt.IsZero() {
		pdf.CellFormat(0, 6, "Issued: "+view.IssuedAt.Format("Jan 2, 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Billing Period: "+view.PeriodLabel(), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Line item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(70, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range view.Lines {
		pdf.CellFormat(70, 8, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, pdfMoney(line.UnitPaise), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, pdfMoney(line.AmountPaise), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 9, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 9, pdfMoney(view.TotalPaise), "1", 1, "R", false, 0, "")

	if len(view.Breakdown) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, "Daily Breakdown", "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 8, "Date", "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 8, "Breakfast", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Lunch", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Dinner", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range view.Breakdown {
			pdf.CellFormat(40, 7, row.Date, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, breakdownCell(row.Breakfast), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, breakdownCell(row.Lunch), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, breakdownCell(row.Dinner), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, pdfMoney(row.SubtotalPaise), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func breakdownCell(quantity int) string {
	if quantity == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", quantity)
}
