package trackit

import (
	"encoding/json"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 form.
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity.
//
// A Date keeps the text it was parsed from: unparsable input round-trips
// verbatim, reports IsValid() == false, and orders after every valid date.
type Date struct {
	y   int        // year
	m   time.Month // month
	d   int        // day
	raw string     // original text, kept for unparsable input
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{y: year, m: month, d: day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1". It returns an error for text that is not a calendar date.
func ParseDate(str string) (Date, error) {
	t, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{raw: str}, err
	}
	return NewDate(t.Date()), nil
}

// DateOf parses a Date like ParseDate but never fails: unparsable text is
// preserved verbatim in an invalid Date. It is the decoding-side constructor,
// since persisted records are accepted as given.
func DateOf(str string) Date {
	d, _ := ParseDate(str)
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsValid reports whether the date holds a real calendar day.
func (d Date) IsValid() bool { return d.y != 0 || d.m != 0 || d.d != 0 }

// String formats valid dates in ISO-8601, and returns the original text for
// unparsable ones.
func (d Date) String() string {
	if !d.IsValid() {
		return d.raw
	}
	return d.time().Format(DateFormat)
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare is a total order over dates: valid dates compare by calendar
// instant, any invalid date orders after every valid one, and invalid dates
// compare equal among themselves.
func (d Date) Compare(x Date) int {
	switch {
	case d.IsValid() && !x.IsValid():
		return -1
	case !d.IsValid() && x.IsValid():
		return 1
	case !d.IsValid() && !x.IsValid():
		return 0
	}
	return d.time().Compare(x.time())
}

// MarshalJSON encodes the date as its string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a date string, keeping unparsable text verbatim.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = DateOf(s)
	return nil
}
