package model

import (
	"sort"
	"time"

	"github.com/wrenlabs/budget/currency"
	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/record"
)

// Budget is the aggregate root: it owns every Account, CategoryGroup,
// Category, and Transaction, enforces the cross-entity invariants listed in
// spec §3, and exposes the structural mutators in §4.4 (see
// budget_mutators.go) and the balance derivation in §4.5/§4.6 (see
// budget_balances.go).
//
// Accounts, CategoryGroups, Categories, and Transactions are the ordered
// collections the spec calls "ordered mappings": a plain slice is the
// ordering itself, and lookup by id is a linear scan via indexOf. Budgets in
// this engine are small enough (personal finance, not a ledger of millions
// of rows) that this is simpler and no slower in practice than maintaining a
// parallel index.
type Budget struct {
	ID           *ID    `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`

	StartDate pdate.PDate `json:"startDate"`
	EndDate   pdate.PDate `json:"endDate"`

	Accounts       []Account       `json:"accounts"`
	CategoryGroups []CategoryGroup `json:"categoryGroups"`
	Categories     []Category      `json:"categories"`
	Transactions   []Transaction   `json:"transactions"`

	// cache holds the memoized balance tables from budget_balances.go. It is
	// nil on every freshly constructed or mutated Budget (spec §4.5:
	// "any structural mutation discards them"); reading it requires a
	// pointer receiver, which is why the balance derivation methods use one
	// while every structural mutator below takes and returns Budget by
	// value.
	cache *balanceCache
}

// NewBudget constructs an empty Budget for currencyCode, defaulting its
// period to Jan 1 - Dec 31 of the current year per spec §3.
func NewBudget(currencyCode string, opts ...func(*Budget)) (Budget, error) {
	now := time.Now()
	start, err := pdate.New(now.Year(), 1, 1)
	if err != nil {
		return Budget{}, err
	}
	end, err := pdate.New(now.Year(), 12, 31)
	if err != nil {
		return Budget{}, err
	}

	b := Budget{CurrencyCode: currencyCode, StartDate: start, EndDate: end}
	for _, opt := range opts {
		opt(&b)
	}
	if err := b.CheckInvariants(); err != nil {
		return Budget{}, err
	}
	return b, nil
}

// WithBudgetID sets the budget's id.
func WithBudgetID(id ID) func(*Budget) {
	return func(b *Budget) { b.ID = &id }
}

// WithBudgetName sets the budget's name.
func WithBudgetName(name string) func(*Budget) {
	return func(b *Budget) { b.Name = name }
}

// WithBudgetPeriod overrides the default current-year period.
func WithBudgetPeriod(start, end pdate.PDate) func(*Budget) {
	return func(b *Budget) { b.StartDate = start; b.EndDate = end }
}

// CheckInvariants implements record.Invariant, verifying every cross-entity
// invariant in spec §3 that doesn't require "soft" validation (§7). Local
// per-record invariants (an unknown currency code on a Category, say) are
// assumed already enforced when that record was constructed or merged.
func (b Budget) CheckInvariants() error {
	if !positiveID(b.ID) {
		return record.NewInvariantViolation("Budget", "ID", "must be a positive integer")
	}
	if !currency.Known(b.CurrencyCode) {
		return record.NewInvariantViolation("Budget", "CurrencyCode", "must be a known currency code")
	}
	if b.EndDate.Before(b.StartDate) {
		return record.NewInvariantViolation("Budget", "EndDate", "must not be before StartDate")
	}

	if err := checkUniqueIDs("Account", b.Accounts, func(a Account) *ID { return a.ID }); err != nil {
		return err
	}
	if err := checkUniqueIDs("CategoryGroup", b.CategoryGroups, func(g CategoryGroup) *ID { return g.ID }); err != nil {
		return err
	}
	if err := checkUniqueIDs("Category", b.Categories, func(c Category) *ID { return c.ID }); err != nil {
		return err
	}
	if err := checkUniqueIDs("Transaction", b.Transactions, func(t Transaction) *ID { return t.ID }); err != nil {
		return err
	}

	for _, cat := range b.Categories {
		if cat.GroupID != nil && indexOf(b.CategoryGroups, *cat.GroupID, func(g CategoryGroup) *ID { return g.ID }) < 0 {
			return record.NewInvariantViolation("Budget", "Categories", "category references a non-existent group")
		}
	}
	for _, txn := range b.Transactions {
		if txn.AccountID != nil && indexOf(b.Accounts, *txn.AccountID, func(a Account) *ID { return a.ID }) < 0 {
			return record.NewInvariantViolation("Budget", "Transactions", "transaction references a non-existent account")
		}
	}

	if err := b.checkRuleOverlaps(); err != nil {
		return err
	}
	if err := b.checkTransactionOrder(); err != nil {
		return err
	}
	if err := b.checkCategoryOrder(); err != nil {
		return err
	}
	return nil
}

func checkUniqueIDs[T any](recordName string, items []T, get func(T) *ID) error {
	seen := make(map[ID]bool, len(items))
	for _, it := range items {
		id := get(it)
		if id == nil {
			continue
		}
		if seen[*id] {
			return record.NewInvariantViolation("Budget", recordName, "duplicate id in collection")
		}
		seen[*id] = true
	}
	return nil
}

// checkRuleOverlaps enforces "within any single Category, no two of its
// rules overlap over the Budget's date range" (spec §3), checking every
// ordered pair (i, j), i != j, per the spec's explicit instruction to
// preserve the asymmetry of countOccurrencesBetween rather than paper over
// it with a symmetric i < j check (spec §9 Open Questions).
func (b Budget) checkRuleOverlaps() error {
	for _, cat := range b.Categories {
		for i := range cat.Rules {
			for j := range cat.Rules {
				if i == j {
					continue
				}
				ri, rj := cat.Rules[i], cat.Rules[j]
				begin, end := effectiveWindow(rj, b.StartDate, b.EndDate)
				if begin == nil {
					continue
				}
				if ri.CountOccurrencesBetween(*begin, *end) > 0 {
					return record.NewInvariantViolation("Budget", "Categories", "category has overlapping rules")
				}
			}
		}
	}
	return nil
}

// effectiveWindow clamps a rule's own [startDate,endDate] to the budget
// period, returning nil if the rule never intersects it.
func effectiveWindow(r CategoryRule, budgetStart, budgetEnd pdate.PDate) (*pdate.PDate, *pdate.PDate) {
	begin := budgetStart
	if r.StartDate != nil && r.StartDate.After(begin) {
		begin = *r.StartDate
	}
	end := budgetEnd
	if r.EndDate != nil && r.EndDate.Before(end) {
		end = *r.EndDate
	}
	if end.Before(begin) {
		return nil, nil
	}
	return &begin, &end
}

func (b Budget) checkTransactionOrder() error {
	prev := -1
	for _, txn := range b.Transactions {
		key := sortKey(txn)
		if key < prev {
			return record.NewInvariantViolation("Budget", "Transactions", "must be sorted chronologically with null dates last")
		}
		prev = key
	}
	return nil
}

func sortKey(t Transaction) int {
	if t.Date == nil {
		return pdate.NullSentinel
	}
	return t.Date.Value()
}

func (b Budget) checkCategoryOrder() error {
	groupIndex := make(map[ID]int, len(b.CategoryGroups))
	for i, g := range b.CategoryGroups {
		if g.ID != nil {
			groupIndex[*g.ID] = i
		}
	}
	prev := -1
	for _, cat := range b.Categories {
		idx := -1
		if cat.GroupID != nil {
			idx = groupIndex[*cat.GroupID]
		}
		if idx < prev {
			return record.NewInvariantViolation("Budget", "Categories", "must be sorted by group order")
		}
		prev = idx
	}
	return nil
}

// sortTransactions returns a new slice stable-sorted chronologically, null
// dates last (spec §4.4: "sort key is date?.value ?? 999_999").
func sortTransactions(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// sortCategories returns a new slice stable-sorted by group order, per
// spec §3's dual ordering. It assumes the incoming slice's relative order
// within each group already reflects custom per-group order, which every
// mutator in budget_mutators.go is responsible for maintaining.
func sortCategories(cats []Category, groups []CategoryGroup) []Category {
	groupIndex := make(map[ID]int, len(groups))
	for i, g := range groups {
		if g.ID != nil {
			groupIndex[*g.ID] = i
		}
	}
	out := make([]Category, len(cats))
	copy(out, cats)
	sort.SliceStable(out, func(i, j int) bool {
		idxI, idxJ := -1, -1
		if out[i].GroupID != nil {
			idxI = groupIndex[*out[i].GroupID]
		}
		if out[j].GroupID != nil {
			idxJ = groupIndex[*out[j].GroupID]
		}
		return idxI < idxJ
	})
	return out
}
