package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/pdate"
)

// balanceCache holds the two memoized tables of spec §4.5. It is built
// lazily the first time a balance-derivation method is called on a given
// Budget instance and discarded (via cache = nil) by every structural
// mutator in budget_mutators.go.
type balanceCache struct {
	accountBalances            map[ID]decimal.Decimal
	transactionAccountBalances map[ID]decimal.Decimal
}

// ensureBalances computes and caches accountBalances and
// transactionAccountBalances by iterating Transactions once, in
// chronological order (spec §4.5). Pending transactions, and transactions
// with no AccountID, are skipped entirely: they never update an account
// running balance and never get a transactionAccountBalances entry.
func (b *Budget) ensureBalances() *balanceCache {
	if b.cache != nil {
		return b.cache
	}

	running := make(map[ID]decimal.Decimal, len(b.Accounts))
	for _, a := range b.Accounts {
		if a.ID != nil {
			running[*a.ID] = a.InitialBalance
		}
	}

	perTransaction := make(map[ID]decimal.Decimal)
	for _, t := range b.Transactions {
		if t.Pending || t.AccountID == nil {
			continue
		}
		running[*t.AccountID] = running[*t.AccountID].Add(t.Amount())
		if t.ID != nil {
			perTransaction[*t.ID] = running[*t.AccountID]
		}
	}

	b.cache = &balanceCache{accountBalances: running, transactionAccountBalances: perTransaction}
	return b.cache
}

// AccountBalances returns each account's current balance: its
// InitialBalance plus the sum of every non-pending Transaction's amount
// applied to it (spec §4.5).
func (b *Budget) AccountBalances() map[ID]decimal.Decimal {
	cache := b.ensureBalances()
	out := make(map[ID]decimal.Decimal, len(cache.accountBalances))
	for k, v := range cache.accountBalances {
		out[k] = v
	}
	return out
}

// TransactionAccountBalances returns, for every non-pending transaction
// with a non-null AccountID, that account's running balance immediately
// after the transaction was applied.
func (b *Budget) TransactionAccountBalances() map[ID]decimal.Decimal {
	cache := b.ensureBalances()
	out := make(map[ID]decimal.Decimal, len(cache.transactionAccountBalances))
	for k, v := range cache.transactionAccountBalances {
		out[k] = v
	}
	return out
}

// AccountBalanceAsOfTransaction implements spec §4.5's
// accountBalanceAsOfTransaction: the running balance of acctID as of
// (immediately after, if txnID itself posts to acctID) the given
// transaction. The second return value is false where the spec says
// "return undefined".
func (b *Budget) AccountBalanceAsOfTransaction(txnID, acctID ID) (decimal.Decimal, bool) {
	idx := indexOf(b.Transactions, txnID, transactionID)
	if idx < 0 {
		return decimal.Zero, false
	}
	txn := b.Transactions[idx]
	if txn.Date == nil || txn.Pending {
		return decimal.Zero, false
	}

	cache := b.ensureBalances()
	if txn.AccountID != nil && *txn.AccountID == acctID {
		bal, ok := cache.transactionAccountBalances[txnID]
		return bal, ok
	}

	for i := idx - 1; i >= 0; i-- {
		prev := b.Transactions[i]
		if prev.Date == nil || prev.Pending || prev.ID == nil {
			continue
		}
		if prev.AccountID != nil && *prev.AccountID == acctID {
			if bal, ok := cache.transactionAccountBalances[*prev.ID]; ok {
				return bal, true
			}
		}
	}

	accIdx := indexOf(b.Accounts, acctID, accountID)
	if accIdx < 0 {
		return decimal.Zero, false
	}
	return b.Accounts[accIdx].InitialBalance, true
}

// CategoryBalancesOnDate implements spec §4.6: the realized, per-category
// cumulative sum of every transaction detail's amount for transactions
// dated on or before date. Transactions are already stored in chronological
// order with null dates last, so the scan can stop at the first
// null-dated or future-dated transaction.
func (b *Budget) CategoryBalancesOnDate(date pdate.PDate) (map[ID]decimal.Decimal, error) {
	if date.Before(b.StartDate) || date.After(b.EndDate) {
		return nil, fmt.Errorf("model: date %s is outside the budget period [%s, %s]", date, b.StartDate, b.EndDate)
	}

	out := make(map[ID]decimal.Decimal)
	for _, t := range b.Transactions {
		if t.Date == nil || t.Date.After(date) {
			break
		}
		for _, d := range t.Detail {
			if d.CategoryID == nil {
				continue
			}
			out[*d.CategoryID] = out[*d.CategoryID].Add(d.Amount)
		}
	}
	return out, nil
}

// CategoryBalanceByDate is a shortcut for
// CategoryBalancesOnDate(date).get(catID, 0), with the precondition that
// catID names an existing category (spec §4.6).
func (b *Budget) CategoryBalanceByDate(catID ID, date pdate.PDate) (decimal.Decimal, error) {
	if indexOf(b.Categories, catID, categoryID) < 0 {
		return decimal.Zero, fmt.Errorf("model: category %d does not exist", catID)
	}
	balances, err := b.CategoryBalancesOnDate(date)
	if err != nil {
		return decimal.Zero, err
	}
	return balances[catID], nil
}

// CategoryBudgetsOnDate implements spec §4.6: for every category with a
// non-null id, either its realized balance (if automatic) or the sum of
// rule.amount * rule.countOccurrencesBetween(budget.startDate, date) over
// its rules.
func (b *Budget) CategoryBudgetsOnDate(date pdate.PDate) (map[ID]decimal.Decimal, error) {
	balances, err := b.CategoryBalancesOnDate(date)
	if err != nil {
		return nil, err
	}

	out := make(map[ID]decimal.Decimal, len(b.Categories))
	for _, cat := range b.Categories {
		if cat.ID == nil {
			continue
		}
		if cat.IsAutomatic() {
			out[*cat.ID] = balances[*cat.ID]
			continue
		}
		total := decimal.Zero
		for _, r := range cat.Rules {
			count := r.CountOccurrencesBetween(b.StartDate, date)
			if count == 0 {
				continue
			}
			total = total.Add(r.Amount.Mul(decimal.NewFromInt(int64(count))))
		}
		out[*cat.ID] = total
	}
	return out, nil
}
