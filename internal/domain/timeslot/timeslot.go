// Package timeslot models wall-clock windows on a 24-hour clock with minute
// granularity. Windows are half-open: [Start, End).
package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	Layout     = "15:04"
	DateLayout = "2006-01-02"
)

var hhmm = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Minute is a time of day expressed as minutes since midnight.
type Minute int

// IsValidHHMM reports whether s is a zero-padded 24h "HH:mm" value.
func IsValidHHMM(s string) bool {
	return hhmm.MatchString(s)
}

// ParseHM parses a zero-padded "HH:mm" value.
func ParseHM(s string) (Minute, error) {
	m := hhmm.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("timeslot: %q is not in HH:mm format", s)
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return Minute(h*60 + mm), nil
}

func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

type Window struct {
	Start Minute
	End   Minute
}

// Parse builds a window from two "HH:mm" values. It does not check ordering;
// see Valid.
func Parse(start, end string) (Window, error) {
	s, err := ParseHM(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseHM(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

func MustParse(start, end string) Window {
	w, err := Parse(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

// Valid reports whether Start is strictly before End.
func (w Window) Valid() bool {
	return w.Start < w.End
}

// Overlaps uses the open-interval test, so adjacent windows
// (w.End == o.Start) do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}

// Contains reports whether o lies entirely inside w.
func (w Window) Contains(o Window) bool {
	return w.Start <= o.Start && o.End <= w.End
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// AnyOverlaps reports whether w overlaps at least one of ws.
func AnyOverlaps(ws []Window, w Window) bool {
	for _, o := range ws {
		if o.Overlaps(w) {
			return true
		}
	}
	return false
}

// AnyContains reports whether at least one of ws fully contains w.
func AnyContains(ws []Window, w Window) bool {
	for _, o := range ws {
		if o.Contains(w) {
			return true
		}
	}
	return false
}

// ParseDate parses a "YYYY-MM-DD" calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the UTC day of week of date, 0=Sunday..6=Saturday.
func Weekday(date time.Time) int {
	return int(date.UTC().Weekday())
}

// At combines a calendar date and a time of day into a UTC instant.
func At(date time.Time, m Minute) time.Time {
	return DateOf(date).Add(time.Duration(m) * time.Minute)
}
