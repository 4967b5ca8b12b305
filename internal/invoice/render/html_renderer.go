package render

import (
	"bytes"
	"html/template"
	"strings"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
)

const billHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Tiffin Bill {{.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .bill {
      max-width: 820px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section {
      margin-bottom: 24px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .totals {
      margin-top: 12px;
      display: flex;
      justify-content: flex-end;
      font-size: 16px;
    }
    .totals strong {
      margin-left: 12px;
    }
  </style>
</head>
<body>
  <div class="bill">
    <div class="header">
      <div>
        <div><strong>TiffinTrack</strong></div>
        <div>{{.CustomerName}}</div>
      </div>
      <div class="meta">
        <div class="label">Bill</div>
        <div><strong>{{.Number}}</strong></div>
        {{if not .IssuedAt.IsZero}}<div>Issued: {{.IssuedAt.Format "Jan 2, 2006"}}</div>{{end}}
      </div>
    </div>

    <div class="section">
      <div class="label">Billing Period</div>
      <div>{{.PeriodLabel}}</div>
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Item</th>
            <th>Quantity</th>
            <th>Rate</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Lines}}
          <tr>
            <td>{{.Description}}</td>
            <td>{{.Quantity}}</td>
            <td>{{rupees .UnitPaise}}</td>
            <td>{{rupees .AmountPaise}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="totals">
        <span>Total</span>
        <strong>{{rupees .TotalPaise}}</strong>
      </div>
    </div>

    {{if .Breakdown}}
    <div class="section">
      <div class="label">Daily Breakdown</div>
      <table>
        <thead>
          <tr>
            <th>Date</th>
            <th>Breakfast</th>
            <th>Lunch</th>
            <th>Dinner</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Breakdown}}
          <tr>
            <td>{{.Date}}</td>
            <td>{{indicator .Breakfast}}</td>
            <td>{{indicator .Lunch}}</td>
            <td>{{indicator .Dinner}}</td>
            <td>{{rupees .SubtotalPaise}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}
  </div>
</body>
</html>
`

type renderer struct {
	tpl *template.Template
}

// NewRenderer builds the shared PDF/HTML bill renderer.
func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"rupees":    htmlMoney,
		"indicator": breakdownCell,
	}
	return &renderer{
		tpl: template.Must(template.New("bill").Funcs(funcs).Parse(billHTMLTemplate)),
	}
}

func (r *renderer) RenderHTML(view BillView) (string, error) {
	if strings.TrimSpace(view.CustomerName) == "" {
		view.CustomerName = "Customer"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func htmlMoney(paise int64) string {
	return "₹" + billdomain.FormatPaise(paise)
}
