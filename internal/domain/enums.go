package domain

import "strings"

// Weekday identifies one of the seven meeting-day flag columns of an offering.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tues"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thurs"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// Weekdays lists the flag columns in calendar order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Label returns the display name of the weekday: its column name with the
// first letter capitalized (e.g. "Tues").
func (d Weekday) Label() string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseWeekday accepts a flag column name in any casing.
func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Weekdays {
		if d == w {
			return d, true
		}
	}
	return "", false
}
