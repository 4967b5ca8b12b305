package render

import (
	"fmt"
	"strings"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
)

// BuildMessage produces the short text that travels alongside the PDF,
// naming the customer, the total and the billing period.
func BuildMessage(view BillView) string {
	name := strings.TrimSpace(view.CustomerName)
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf(
		"Hi %s! Your TiffinTrack bill for %s is Rs. %s. The detailed bill is attached as a PDF. Thank you!",
		name,
		view.PeriodLabel(),
		billdomain.FormatPaise(view.TotalPaise),
	)
}
