package model

import (
	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/record"
)

// This file implements the structural mutators of spec §4.4. Every mutator
// takes a Budget by value and returns a new Budget by value; none of them
// ever writes through a shared backing array, so the receiver Budget (and
// anything else holding a reference to its slices) is left untouched. All
// of them finish by re-checking the whole Budget's invariants, per
// §4.4's "All mutators re-run the Budget's invariants."

func accountID(a Account) *ID             { return a.ID }
func groupID(g CategoryGroup) *ID         { return g.ID }
func categoryID(c Category) *ID           { return c.ID }
func transactionID(t Transaction) *ID     { return t.ID }

// upsertByID returns a fresh slice with next either replacing the item
// whose id matches, or appended at the end if no match exists.
func upsertByID[T any](items []T, id ID, get func(T) *ID, next T) []T {
	idx := indexOf(items, id, get)
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	if idx >= 0 {
		out[idx] = next
		return out
	}
	return append(out, next)
}

// deleteByID returns a fresh slice with the item whose id matches removed.
func deleteByID[T any](items []T, id ID, get func(T) *ID) []T {
	idx := indexOf(items, id, get)
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out
}

// positionByID moves the item whose id matches to newIndex within items,
// preserving the relative order of everything else.
func positionByID[T any](items []T, id ID, get func(T) *ID, newIndex int) ([]T, bool) {
	idx := indexOf(items, id, get)
	if idx < 0 {
		return nil, false
	}
	if newIndex < 0 || newIndex > len(items)-1 {
		return nil, false
	}
	item := items[idx]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:idx]...)
	rest = append(rest, items[idx+1:]...)

	out := make([]T, 0, len(items))
	out = append(out, rest[:newIndex]...)
	out = append(out, item)
	out = append(out, rest[newIndex:]...)
	return out, true
}

// --- Accounts ---------------------------------------------------------

// UpdateAccount upserts acct by id, without reordering (spec §4.4).
func (b Budget) UpdateAccount(acct Account) (Budget, error) {
	if acct.ID == nil {
		return b, record.NewInvariantViolation("Budget", "Accounts", "update requires an id")
	}
	next := b
	next.Accounts = upsertByID(b.Accounts, *acct.ID, accountID, acct)
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// PositionAccount moves the account with id to newIndex in Accounts order.
func (b Budget) PositionAccount(id ID, newIndex int) (Budget, error) {
	out, ok := positionByID(b.Accounts, id, accountID, newIndex)
	if !ok {
		return b, record.NewInvariantViolation("Budget", "Accounts", "reposition out of bounds or id not found")
	}
	next := b
	next.Accounts = out
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// DeleteAccount removes the account with id and relinks every Transaction
// whose AccountID equals id to nil (spec §4.4).
func (b Budget) DeleteAccount(id ID) (Budget, error) {
	next := b
	next.Accounts = deleteByID(b.Accounts, id, accountID)
	txns := make([]Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		if t.AccountID != nil && *t.AccountID == id {
			t.AccountID = nil
		}
		txns[i] = t
	}
	next.Transactions = txns
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// --- Category groups ----------------------------------------------------

// UpdateCategoryGroup upserts g by id, without reordering.
func (b Budget) UpdateCategoryGroup(g CategoryGroup) (Budget, error) {
	if g.ID == nil {
		return b, record.NewInvariantViolation("Budget", "CategoryGroups", "update requires an id")
	}
	next := b
	next.CategoryGroups = upsertByID(b.CategoryGroups, *g.ID, groupID, g)
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// PositionCategoryGroup moves the group with id to newIndex.
func (b Budget) PositionCategoryGroup(id ID, newIndex int) (Budget, error) {
	out, ok := positionByID(b.CategoryGroups, id, groupID, newIndex)
	if !ok {
		return b, record.NewInvariantViolation("Budget", "CategoryGroups", "reposition out of bounds or id not found")
	}
	next := b
	next.CategoryGroups = out
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// DeleteCategoryGroup removes the group with id. Permitted only if no
// category belongs to it (spec §4.4).
func (b Budget) DeleteCategoryGroup(id ID) (Budget, error) {
	for _, cat := range b.Categories {
		if cat.GroupID != nil && *cat.GroupID == id {
			return b, record.NewInvariantViolation("Budget", "CategoryGroups", "cannot delete a group that still has categories")
		}
	}
	next := b
	next.CategoryGroups = deleteByID(b.CategoryGroups, id, groupID)
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// --- Categories -----------------------------------------------------------

// UpdateCategory upserts cat. If cat's GroupID differs from the category's
// current group (or the category is new), it is placed at the end of its
// new group's segment and the whole Categories collection is resorted to
// maintain the dual ordering; otherwise it is updated in place (spec §4.4).
func (b Budget) UpdateCategory(cat Category) (Budget, error) {
	if cat.ID == nil {
		return b, record.NewInvariantViolation("Budget", "Categories", "update requires an id")
	}
	idx := indexOf(b.Categories, *cat.ID, categoryID)

	groupChanged := idx < 0
	if idx >= 0 {
		existing := b.Categories[idx]
		groupChanged = !sameOptionalID(existing.GroupID, cat.GroupID)
	}

	next := b
	if groupChanged {
		withoutExisting := deleteByID(b.Categories, *cat.ID, categoryID)
		appended := append(append([]Category{}, withoutExisting...), cat)
		next.Categories = sortCategories(appended, b.CategoryGroups)
	} else {
		next.Categories = upsertByID(b.Categories, *cat.ID, categoryID, cat)
	}
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

func sameOptionalID(a, b *ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// PositionCategory moves the category with id to newIndex within its own
// group's segment; other groups' internal ordering is unchanged (spec §4.4).
func (b Budget) PositionCategory(id ID, newIndex int) (Budget, error) {
	idx := indexOf(b.Categories, id, categoryID)
	if idx < 0 {
		return b, record.NewInvariantViolation("Budget", "Categories", "category not found")
	}
	target := b.Categories[idx].GroupID

	segStart, segEnd := -1, -1
	for i, cat := range b.Categories {
		if sameOptionalID(cat.GroupID, target) {
			if segStart == -1 {
				segStart = i
			}
			segEnd = i + 1
		}
	}

	segment := append([]Category{}, b.Categories[segStart:segEnd]...)
	newSegment, ok := positionByID(segment, id, categoryID, newIndex)
	if !ok {
		return b, record.NewInvariantViolation("Budget", "Categories", "reposition out of bounds")
	}

	out := make([]Category, 0, len(b.Categories))
	out = append(out, b.Categories[:segStart]...)
	out = append(out, newSegment...)
	out = append(out, b.Categories[segEnd:]...)

	next := b
	next.Categories = out
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// DeleteCategory removes the category with id and relinks every
// TransactionDetail whose CategoryID equals id to nil (spec §4.4).
func (b Budget) DeleteCategory(id ID) (Budget, error) {
	next := b
	next.Categories = deleteByID(b.Categories, id, categoryID)

	txns := make([]Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		detail := make([]TransactionDetail, len(t.Detail))
		for j, d := range t.Detail {
			if d.CategoryID != nil && *d.CategoryID == id {
				d.CategoryID = nil
			}
			detail[j] = d
		}
		t.Detail = detail
		txns[i] = t
	}
	next.Transactions = txns
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

// --- Transactions -----------------------------------------------------------

// UpdateTransaction upserts t. Precondition: t.AccountID is nil or
// references an existing account. Inserting, or changing Date, resorts
// the Transactions collection into chronological order; an update that
// leaves Date unchanged skips the sort (spec §4.4).
func (b Budget) UpdateTransaction(t Transaction) (Budget, error) {
	if t.ID == nil {
		return b, record.NewInvariantViolation("Budget", "Transactions", "update requires an id")
	}
	if t.AccountID != nil && indexOf(b.Accounts, *t.AccountID, accountID) < 0 {
		return b, record.NewInvariantViolation("Budget", "Transactions", "accountId does not reference an existing account")
	}

	idx := indexOf(b.Transactions, *t.ID, transactionID)
	dateChanged := idx < 0
	if idx >= 0 {
		dateChanged = !sameOptionalDate(b.Transactions[idx].Date, t.Date)
	}

	next := b
	updated := upsertByID(b.Transactions, *t.ID, transactionID, t)
	if dateChanged {
		updated = sortTransactions(updated)
	}
	next.Transactions = updated
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}

func sameOptionalDate(a, b *pdate.PDate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// DeleteTransaction removes the transaction with id.
func (b Budget) DeleteTransaction(id ID) (Budget, error) {
	next := b
	next.Transactions = deleteByID(b.Transactions, id, transactionID)
	next.cache = nil
	if err := next.CheckInvariants(); err != nil {
		return b, err
	}
	return next, nil
}
