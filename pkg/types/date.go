package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire representation of a calendar date.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat is returned when a string is not a YYYY-MM-DD date
	ErrInvalidDateFormat = errors.New("invalid date string format")

	// ErrUnsupportedDateSource is returned by Scan for unknown source types
	ErrUnsupportedDateSource = errors.New("unsupported date scan source")
)

// Date is a calendar day without time of day and without time zone.
// The zero value is not a valid date (see IsZero).
//
// A Date is never derived from a UTC-shifted instant: DateOf takes the calendar
// fields of the time in its own location, so callers convert to the local zone
// first (see Today).
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for the given calendar fields.
// Out-of-range values are normalized the same way time.Date does (Jan 32 -> Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the local calendar date of now in loc
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on error. Intended for tests and constants.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FirstOfMonth returns the first day of the month
func FirstOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}

// LastOfMonth returns the last day of the month
func LastOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 0)
}

// DaysInMonth returns the number of days in the month
func DaysInMonth(year int, month time.Month) int {
	return LastOfMonth(year, month).day
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns midnight of d in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// IsWeekend reports whether d is a Saturday or a Sunday
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns d shifted by n calendar days
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.ordinal() < other.ordinal()
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.ordinal() > other.ordinal()
}

// Equal reports whether d and other are the same calendar day
func (d Date) Equal(other Date) bool {
	return d == other
}

// MonthKey returns the YYYY-MM key of the month d belongs to
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.year, int(d.month))
}

// String returns the YYYY-MM-DD representation
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) ordinal() int {
	return d.year*10000 + int(d.month)*100 + d.day
}

// Value implements driver.Valuer. Dates are sent as YYYY-MM-DD strings so the
// driver never applies a zone conversion.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner.
// lib/pq returns DATE columns as time.Time at midnight UTC; only the calendar
// fields are kept.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.parseLoose(v)
	case []byte:
		return d.parseLoose(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedDateSource, src)
	}
}

func (d *Date) parseLoose(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	return d.UnmarshalText([]byte(s))
}
