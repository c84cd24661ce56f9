package model

import (
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/currency"
	"github.com/wrenlabs/budget/record"
)

// Account is a place money sits: a bank account, wallet, or similar
// (spec §3). InitialBalance is in the account's own currency's minor units
// and may be negative.
type Account struct {
	ID             *ID            `json:"id"`
	Name           string         `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrencyCode   string         `json:"currencyCode"`
	Metadata       map[string]any `json:"metadata"`
}

// CheckInvariants implements record.Invariant. The spec states the
// "currencyCode must be known" rule explicitly for Category only; it is
// applied here too since an Account's currencyCode is the same kind of
// field and an unknown currency would make roundAmount meaningless for it.
func (a Account) CheckInvariants() error {
	if !positiveID(a.ID) {
		return record.NewInvariantViolation("Account", "ID", "must be a positive integer")
	}
	if !currency.Known(a.CurrencyCode) {
		return record.NewInvariantViolation("Account", "CurrencyCode", "must be a known currency code")
	}
	return nil
}
