// Package currency provides the static currency lookup table the budget
// engine treats as an external collaborator (spec §1: "the currency table
// itself ... treated as a static read-only lookup by code").
package currency

import "github.com/shopspring/decimal"

// Currency describes an ISO-4217-like currency code.
type Currency struct {
	Code     string
	Name     string
	Symbols  []string
	Decimals int
}

// RoundAmount rounds x to the currency's minor-unit precision, per spec §3
// ("roundAmount(x) = round(x)").
func (c Currency) RoundAmount(x decimal.Decimal) decimal.Decimal {
	return x.Round(int32(c.Decimals))
}

// table is the static read-only currency registry. It is intentionally small
// and unexported; callers go through Lookup/Known.
var table = map[string]Currency{
	"USD": {Code: "USD", Name: "US Dollar", Symbols: []string{"$"}, Decimals: 2},
	"EUR": {Code: "EUR", Name: "Euro", Symbols: []string{"€"}, Decimals: 2},
	"GBP": {Code: "GBP", Name: "British Pound", Symbols: []string{"£"}, Decimals: 2},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbols: []string{"¥"}, Decimals: 0},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbols: []string{"$"}, Decimals: 2},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbols: []string{"$"}, Decimals: 2},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbols: []string{"CHF"}, Decimals: 2},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbols: []string{"¥"}, Decimals: 2},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbols: []string{"₹"}, Decimals: 2},
	"KWD": {Code: "KWD", Name: "Kuwaiti Dinar", Symbols: []string{"د.ك"}, Decimals: 3},
}

// Lookup returns the Currency for code, and whether it is known.
func Lookup(code string) (Currency, bool) {
	c, ok := table[code]
	return c, ok
}

// Known reports whether code is a recognized currency code.
func Known(code string) bool {
	_, ok := table[code]
	return ok
}
