// Package analytics computes the per-category breakdown shown on the
// analysis screen and the date ranges it is computed over.
package analytics

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Granularity is the unit a Period is computed and navigated in.
type Granularity string

const (
	GranularityDay    Granularity = "DAY"
	GranularityWeek   Granularity = "WEEK"
	GranularityMonth  Granularity = "MONTH"
	GranularityYear   Granularity = "YEAR"
	GranularityCustom Granularity = "CUSTOM"
)

// ParseGranularity parses a granularity name case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToUpper(strings.TrimSpace(s)))
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear, GranularityCustom:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Range is a closed interval of calendar days. Start and End are midnights
// in the location the range was built in.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the range, boundaries
// included. t is converted to the range's location first.
func (r Range) Contains(t time.Time) bool {
	day := Day(t.In(r.Start.Location()))
	return !day.Before(Day(r.Start)) && !day.After(Day(r.End))
}

const dateLayout = "2006-01-02"

type rangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON renders the range as two ISO dates.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON{Start: r.Start.Format(dateLayout), End: r.End.Format(dateLayout)})
}

// Period is a Range together with the granularity it was derived from.
type Period struct {
	Granularity Granularity `json:"granularity"`
	Range
}

// MarshalJSON flattens the range next to the granularity.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Granularity Granularity `json:"granularity"`
		rangeJSON
	}{
		Granularity: p.Granularity,
		rangeJSON:   rangeJSON{Start: p.Start.Format(dateLayout), End: p.End.Format(dateLayout)},
	})
}

// Day truncates t to midnight of its calendar day in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses an ISO date (2006-01-02) as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, loc)
}

// CurrentPeriod returns the period of granularity g that contains now, from
// its first day up to and including today. For CUSTOM the previous range is
// kept unchanged.
func CurrentPeriod(g Granularity, now time.Time, weekStart time.Weekday, previous Period) Period {
	today := Day(now)
	switch g {
	case GranularityDay:
		return Period{Granularity: g, Range: Range{Start: today, End: today}}
	case GranularityWeek:
		offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
		return Period{Granularity: g, Range: Range{Start: today.AddDate(0, 0, -offset), End: today}}
	case GranularityMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Period{Granularity: g, Range: Range{Start: first, End: today}}
	case GranularityYear:
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Period{Granularity: g, Range: Range{Start: first, End: today}}
	}
	return Period{Granularity: GranularityCustom, Range: previous.Range}
}

// NewCustomPeriod builds a CUSTOM period over [start, end].
func NewCustomPeriod(start, end time.Time) (Period, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return Period{}, fmt.Errorf("end %s is before start %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	return Period{Granularity: GranularityCustom, Range: Range{Start: start, End: end}}, nil
}

// Navigate shifts the period by one unit of its granularity. direction must
// be -1 or 1. Month and year periods are re-clamped to cover the whole
// calendar month or year. CUSTOM periods do not move.
func (p Period) Navigate(direction int) (Period, error) {
	if direction != -1 && direction != 1 {
		return p, fmt.Errorf("invalid direction %d", direction)
	}

	start := Day(p.Start)
	loc := start.Location()
	var newStart, newEnd time.Time

	switch p.Granularity {
	case GranularityDay:
		newStart = start.AddDate(0, 0, direction)
		newEnd = newStart
	case GranularityWeek:
		newStart = start.AddDate(0, 0, 7*direction)
		newEnd = newStart.AddDate(0, 0, 6)
	case GranularityMonth:
		newStart = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, direction, 0)
		newEnd = newStart.AddDate(0, 1, -1)
	case GranularityYear:
		newStart = time.Date(start.Year()+direction, time.January, 1, 0, 0, 0, 0, loc)
		newEnd = time.Date(start.Year()+direction, time.December, 31, 0, 0, 0, 0, loc)
	default:
		return p, nil
	}

	return Period{Granularity: p.Granularity, Range: Range{Start: newStart, End: newEnd}}, nil
}
