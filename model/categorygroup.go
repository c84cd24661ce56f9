package model

import "github.com/wrenlabs/budget/record"

// CategoryGroup is the named bucket a Category belongs to (spec §3).
type CategoryGroup struct {
	ID   *ID    `json:"id"`
	Name string `json:"name"`
}

// CheckInvariants implements record.Invariant.
func (g CategoryGroup) CheckInvariants() error {
	if !positiveID(g.ID) {
		return record.NewInvariantViolation("CategoryGroup", "ID", "must be a positive integer")
	}
	return nil
}
