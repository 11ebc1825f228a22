package form

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ISODate is the layout used for every stored date.
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// DisplayDate renders an ISO date as MM/DD/YYYY, or returns s unchanged if
// it is not an ISO date.
func DisplayDate(s string) string {
	t, err := ParseISODate(s)
	if err != nil {
		return s
	}
	return t.Format("01/02/2006")
}

// DateList is an ordered list of unique ISO dates shown as chips.
type DateList []string

// Add appends iso if it is a valid date not already present.
// Adding a present date is a no-op and reports false.
func (l *DateList) Add(iso string) (bool, error) {
	iso = strings.TrimSpace(iso)
	if _, err := ParseISODate(iso); err != nil {
		return false, err
	}
	if slices.Contains(*l, iso) {
		return false, nil
	}
	*l = append(*l, iso)
	return true, nil
}

// AddCapped is Add with an upper bound on the list length.
func (l *DateList) AddCapped(iso string, max int) (bool, error) {
	if slices.Contains(*l, strings.TrimSpace(iso)) {
		return false, nil
	}
	if max > 0 && len(*l) >= max {
		return false, fmt.Errorf("at most %d dates can be recorded", max)
	}
	return l.Add(iso)
}

// Remove deletes iso and reports whether it was present.
func (l *DateList) Remove(iso string) bool {
	i := slices.Index(*l, iso)
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// Display returns the dates formatted as MM/DD/YYYY.
func (l DateList) Display() []string {
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = DisplayDate(d)
	}
	return out
}
