// Package budgetfile implements the persisted JSON form of a model.Budget
// (spec §6) and an append-only JSONL log of command.Command entries, kept
// outside model and command so neither carries any transport concern.
package budgetfile

import "github.com/wrenlabs/budget/model"

// Version is the persisted form's {major, minor} pair. Major is bumped on
// incompatible changes to Document's shape; minor on additive ones (spec
// §6). Load accepts any Version; it is informational, not enforced.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// CurrentVersion is written by Save when the caller doesn't supply one.
var CurrentVersion = Version{Major: 1, Minor: 0}

// Document is the exact persisted form of spec §6: a version envelope
// around a Budget's fields. model.Budget's own json tags already name
// every field the persisted form requires, so Document embeds it rather
// than re-declaring id/name/startDate/endDate/currencyCode/accounts/
// categoryGroups/categories/transactions a second time.
type Document struct {
	Version Version `json:"version"`
	model.Budget
}

// NewDocument wraps b in a Document at CurrentVersion.
func NewDocument(b model.Budget) Document {
	return Document{Version: CurrentVersion, Budget: b}
}
