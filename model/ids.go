// Package model implements the budget data model: immutable value records
// (CategoryRule, Account, Category, CategoryGroup, TransactionDetail,
// Transaction) and the Budget aggregate that owns them, enforces their
// cross-entity invariants, and derives balances (spec §3-§4.6).
package model

import "golang.org/x/exp/slices"

// ID is a positive-integer record identifier. A nil *ID means "unset" for an
// optional id field (e.g. a Transaction not yet linked to an Account).
type ID = int64

// positiveID reports whether id is either unset or a positive integer, the
// shape every optional id field in this package is constrained to.
func positiveID(id *ID) bool {
	return id == nil || *id > 0
}

// indexOf returns the index of the first item whose id (as read by get)
// equals id, or -1 if none matches.
func indexOf[T any](items []T, id ID, get func(T) *ID) int {
	return slices.IndexFunc(items, func(it T) bool {
		p := get(it)
		return p != nil && *p == id
	})
}
