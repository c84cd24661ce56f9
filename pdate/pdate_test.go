package pdate_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/wrenlabs/budget/pdate"
)

func TestNewAndComponents(t *testing.T) {
	d := pdate.MustNew(2016, 1, 15)
	assert.Equal(t, 2016, d.Year())
	assert.Equal(t, 0, d.Month()) // 0-indexed per spec
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "2016-01-15", d.String())
}

func TestEpochIsZeroValue(t *testing.T) {
	d := pdate.MustNew(2000, 1, 1)
	assert.Equal(t, 0, d.Value())
}

func TestCompareOrdering(t *testing.T) {
	a := pdate.MustNew(2016, 1, 1)
	b := pdate.MustNew(2016, 1, 2)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestParseRoundTrip(t *testing.T) {
	d, err := pdate.Parse("2016-07-19")
	assert.NoError(t, err)
	assert.Equal(t, "2016-07-19", d.String())

	data, err := d.MarshalJSON()
	assert.NoError(t, err)

	var d2 pdate.PDate
	assert.NoError(t, d2.UnmarshalJSON(data))
	assert.Equal(t, d, d2)
}

func TestOutOfRange(t *testing.T) {
	_, err := pdate.Parse("1999-12-31")
	assert.Error(t, err)

	_, err = pdate.Parse("3001-01-01")
	assert.Error(t, err)
}

func TestDaysInMonthAndLeapYear(t *testing.T) {
	assert.Equal(t, 29, pdate.DaysInMonth(2016, 2))
	assert.Equal(t, 28, pdate.DaysInMonth(2017, 2))
	assert.True(t, pdate.IsLeapYear(2016))
	assert.True(t, pdate.IsLeapYear(2000))
	assert.False(t, pdate.IsLeapYear(1900))
}

func TestAddDays(t *testing.T) {
	d := pdate.MustNew(2016, 1, 31)
	next, err := d.AddDays(1)
	assert.NoError(t, err)
	assert.Equal(t, "2016-02-01", next.String())
}
