// Package date provides a day-granularity Date used to label transactions.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// LabelFormat is the format used on chart axes, e.g. "Mar 4, 2019".
const LabelFormat = "Jan 2, 2006"

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// IsZero reports whether d is the zero Date, i.e. it was never set.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Label formats the date for display, e.g. "Mar 4, 2019". The zero Date has an empty label.
func (d Date) Label() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(LabelFormat)
}

// Parse parses a Date from a string.
// It is lenient and accepts formats like "2025-7-1" as well as full RFC 3339
// timestamps, whose time part is dropped. The day of a timestamp is the day in
// its own offset.
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err == nil {
		return New(on.Date()), nil
	}
	// exports usually carry timestamps like 2019-03-04T00:00:00.000Z
	ts, tsErr := time.Parse(time.RFC3339Nano, str)
	if tsErr != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(ts.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
// A null or empty string leaves the zero Date.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str *string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == nil || *str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(*str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
