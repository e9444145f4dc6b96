package consultation

import (
	"fmt"
	"time"
)

// Stored dates mix full ISO timestamps with the shorter forms produced by
// datetime-local inputs, so parsing tries the longest layouts first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a stored consultation date.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// DayCell is one grid position. Day 0 marks a leading placeholder before the
// first of the month.
type DayCell struct {
	Day           int            `json:"day"`
	Date          string         `json:"date,omitempty"`
	Consultations []Consultation `json:"consultations,omitempty"`
}

// MonthGrid is a Sunday-first calendar month.
type MonthGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1-based
	Cells []DayCell `json:"cells"`
}

// BuildMonth produces the calendar grid for one month: weekday-of-the-first
// leading placeholders so the grid aligns to a Sunday-first week, then one
// cell per day. Each day cell buckets the consultations whose date matches
// it, time of day discarded, in insertion order. Pure projection; owns no
// state and is recomputed per request.
func BuildMonth(year int, month time.Month, consultations []Consultation) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := DayCell{
			Day:  day,
			Date: fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
		}
		for _, c := range consultations {
			ts, ok := ParseDate(c.ConsultationDate)
			if ok && ts.Year() == year && ts.Month() == month && ts.Day() == day {
				cell.Consultations = append(cell.Consultations, c)
			}
		}
		cells = append(cells, cell)
	}

	return MonthGrid{Year: year, Month: int(month), Cells: cells}
}
