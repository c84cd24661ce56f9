package model

import (
	"github.com/wrenlabs/budget/currency"
	"github.com/wrenlabs/budget/record"
)

// Category is a spending bucket, optionally governed by a sequence of
// CategoryRules (spec §3). A nil Rules slice marks the category as
// automatic: its budget is derived from realized transactions rather than
// from rules. A non-nil (even empty) Rules slice defines the budget
// deterministically — the distinction is preserved through JSON because
// encoding/json already marshals a nil slice as null and a non-nil empty
// slice as [].
type Category struct {
	ID           *ID                    `json:"id"`
	Name         string                 `json:"name"`
	Notes        string                 `json:"notes"`
	CurrencyCode string                 `json:"currencyCode"`
	GroupID      *ID                    `json:"groupId"`
	Rules        []CategoryRule         `json:"rules"`
	Metadata     map[string]any         `json:"metadata"`
}

// IsAutomatic reports whether the category's budget is derived from
// realized transactions rather than from Rules.
func (c Category) IsAutomatic() bool {
	return c.Rules == nil
}

// CheckInvariants implements record.Invariant. Contextual invariants (group
// existence, rule non-overlap) live on Budget, which has the context a bare
// Category lacks.
func (c Category) CheckInvariants() error {
	if !positiveID(c.ID) {
		return record.NewInvariantViolation("Category", "ID", "must be a positive integer")
	}
	if !positiveID(c.GroupID) {
		return record.NewInvariantViolation("Category", "GroupID", "must be a positive integer")
	}
	if !currency.Known(c.CurrencyCode) {
		return record.NewInvariantViolation("Category", "CurrencyCode", "must be a known currency code")
	}
	return nil
}
