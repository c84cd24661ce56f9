package model

import (
	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/record"
)

// This file has the single-field Budget setters the command package's
// SET_CURRENCY/SET_NAME/SET_DATE reduce to. They go through record.Set so
// each still runs CheckInvariants once on the final value, matching every
// other single-field set in this engine (spec §4.1).

// SetCurrencyCode sets the budget's currency.
func (b Budget) SetCurrencyCode(code string) (Budget, error) {
	return record.Set(b, func(next *Budget) {
		next.CurrencyCode = code
		next.cache = nil
	})
}

// SetName sets the budget's name.
func (b Budget) SetName(name string) (Budget, error) {
	return record.Set(b, func(next *Budget) {
		next.Name = name
		next.cache = nil
	})
}

// SetStartDate sets the budget's start date.
func (b Budget) SetStartDate(d pdate.PDate) (Budget, error) {
	return record.Set(b, func(next *Budget) {
		next.StartDate = d
		next.cache = nil
	})
}

// SetEndDate sets the budget's end date.
func (b Budget) SetEndDate(d pdate.PDate) (Budget, error) {
	return record.Set(b, func(next *Budget) {
		next.EndDate = d
		next.cache = nil
	})
}
