// Package pdate implements the proleptic-Gregorian integer-day date type the
// budget engine treats as an external collaborator (per spec, calendar
// arithmetic is not re-specified by the core). It wraps time.Time the same
// way the teacher's ast.Date does, but additionally exposes the integer
// days-since-epoch representation the budget model sorts and serializes on.
package pdate

import (
	"fmt"
	"time"
)

// Epoch is the zero point of the integer day representation: 2000-01-01.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// minTime and maxTime bound the supported range, 2000-01-01..3000-12-31.
var (
	minTime = Epoch
	maxTime = time.Date(3000, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// NullSentinel is the sort key used for a transaction with no date: a value
// guaranteed greater than any real PDate value (see spec §4.4/§9).
const NullSentinel = 999_999

// PDate is an integer day count since Epoch, following proleptic-Gregorian
// calendar rules (i.e. the Gregorian leap-year rule extended backwards).
type PDate struct {
	days int
}

// New constructs a PDate from a calendar year/month/day. month is 1-indexed
// (January == 1), matching the spec's external-facing constructors; internal
// Month() returns 0-indexed to match spec §3 ("month (0..11)").
func New(year int, month int, day int) (PDate, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return PDate{}, fmt.Errorf("pdate: invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return fromTime(t)
}

// MustNew is New, panicking on error. Intended for literal dates in tests
// and fixture code.
func MustNew(year, month, day int) PDate {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromValue constructs a PDate from its integer days-since-epoch value.
func FromValue(value int) (PDate, error) {
	t := Epoch.AddDate(0, 0, value)
	if t.Before(minTime) || t.After(maxTime) {
		return PDate{}, fmt.Errorf("pdate: value %d out of range [%s, %s]", value, minTime.Format("2006-01-02"), maxTime.Format("2006-01-02"))
	}
	return PDate{days: value}, nil
}

// Parse parses an ISO-8601 "YYYY-MM-DD" string.
func Parse(s string) (PDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return PDate{}, fmt.Errorf("pdate: invalid ISO-8601 date %q: %w", s, err)
	}
	return fromTime(t)
}

func fromTime(t time.Time) (PDate, error) {
	if t.Before(minTime) || t.After(maxTime) {
		return PDate{}, fmt.Errorf("pdate: %s out of range [%s, %s]", t.Format("2006-01-02"), minTime.Format("2006-01-02"), maxTime.Format("2006-01-02"))
	}
	days := int(t.Sub(Epoch).Hours() / 24)
	return PDate{days: days}, nil
}

func (d PDate) time() time.Time {
	return Epoch.AddDate(0, 0, d.days)
}

// Value returns the integer days-since-epoch representation.
func (d PDate) Value() int { return d.days }

// Year returns the calendar year.
func (d PDate) Year() int { return d.time().Year() }

// Month returns the 0-indexed calendar month (0 == January), per spec §3.
func (d PDate) Month() int { return int(d.time().Month()) - 1 }

// Day returns the 1-indexed day of month.
func (d PDate) Day() int { return d.time().Day() }

// String renders the date as ISO-8601.
func (d PDate) String() string { return d.time().Format("2006-01-02") }

// Compare returns -1, 0, or 1 as d is before, equal to, or after o.
func (d PDate) Compare(o PDate) int {
	switch {
	case d.days < o.days:
		return -1
	case d.days > o.days:
		return 1
	default:
		return 0
	}
}

func (d PDate) Before(o PDate) bool { return d.days < o.days }
func (d PDate) After(o PDate) bool  { return d.days > o.days }
func (d PDate) Equal(o PDate) bool  { return d.days == o.days }

// AddDays returns the date n days after d.
func (d PDate) AddDays(n int) (PDate, error) {
	return FromValue(d.days + n)
}

// DaysInMonth returns the number of days in the given 1-indexed month of year.
func DaysInMonth(year, month int) int {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MarshalJSON serializes a PDate as its integer day-value (spec §6).
func (d PDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", d.days)), nil
}

// UnmarshalJSON accepts an integer day-value (spec §6: "Deserialization
// accepts integers wherever a PDate is expected").
func (d *PDate) UnmarshalJSON(data []byte) error {
	var v int
	if _, err := fmt.Sscanf(string(data), "%d", &v); err != nil {
		return fmt.Errorf("pdate: invalid JSON value %q: %w", data, err)
	}
	parsed, err := FromValue(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
