package domain

import "time"

// Cycle is a billing period, inclusive on both ends. Start and End are
// date-only values pinned to UTC midnight.
type Cycle struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days enumerates every calendar date from Start through End, ascending.
func (c Cycle) Days() []time.Time {
	var days []time.Time
	for d := c.Start; !d.After(c.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the date falls inside the cycle.
func (c Cycle) Contains(date time.Time) bool {
	d := Date(date)
	return !d.Before(c.Start) && !d.After(c.End)
}

// Label formats the cycle range for invoices and messages.
func (c Cycle) Label() string {
	return c.Start.Format("Jan 2, 2006") + " – " + c.End.Format("Jan 2, 2006")
}

// Date truncates a timestamp to its UTC calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
