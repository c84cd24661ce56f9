package model

import (
	"fmt"

	"github.com/wrenlabs/budget/validation"
)

// ValidationContext is validation.Context specialized to Budget, the only
// aggregate this engine has (spec §4.2). model owns the specialization so
// the validation package itself stays free of a model import, avoiding an
// import cycle.
type ValidationContext = validation.Context[Budget]

// NewValidationContext wraps b for a validation pass.
func NewValidationContext(b *Budget) *ValidationContext {
	return validation.NewContext(b)
}

func (b *Budget) findAccount(id ID) *Account {
	if idx := indexOf(b.Accounts, id, accountID); idx >= 0 {
		return &b.Accounts[idx]
	}
	return nil
}

func (b *Budget) findCategory(id ID) *Category {
	if idx := indexOf(b.Categories, id, categoryID); idx >= 0 {
		return &b.Categories[idx]
	}
	return nil
}

// Validate reports the "soft" per-field issues spec §7 calls out by
// example: a non-pending, non-zero transaction with no account (warning);
// a detail row missing a category on a non-pending, non-zero, non-transfer
// transaction (warning); a detail row whose category's currency differs
// from the transaction's account's currency (error).
func (t Transaction) Validate(ctx *ValidationContext) {
	nonZero := !t.Amount().IsZero()

	if !t.Pending && nonZero && t.AccountID == nil {
		ctx.AddWarning("accountId", "non-pending, non-zero transaction has no account")
	}

	var acct *Account
	if t.AccountID != nil {
		acct = ctx.Aggregate.findAccount(*t.AccountID)
	}

	for i, d := range t.Detail {
		field := fmt.Sprintf("detail[%d].categoryId", i)
		if d.CategoryID == nil {
			if !t.Pending && !d.Amount.IsZero() && !t.IsTransfer {
				ctx.AddWarning(field, "transaction detail has no category")
			}
			continue
		}
		cat := ctx.Aggregate.findCategory(*d.CategoryID)
		if cat == nil {
			ctx.AddError(field, "transaction detail references a non-existent category")
			continue
		}
		if acct != nil && acct.CurrencyCode != cat.CurrencyCode {
			ctx.AddError(field, "transaction detail's category currency does not match its account's currency")
		}
	}
}

// ValidateForBudget runs Validate over every Transaction and returns the
// collected result (spec §4.1's validateForBudget).
func (b Budget) ValidateForBudget() *validation.Result {
	ctx := NewValidationContext(&b)
	for _, t := range b.Transactions {
		t.Validate(ctx)
	}
	return ctx.Result
}

// AssertIsValidForBudget runs ValidateForBudget and returns its result as
// an error if it collected any error-severity issue; warnings do not fail
// it (spec §4.1, §7).
func (b Budget) AssertIsValidForBudget() error {
	result := b.ValidateForBudget()
	if result.HasErrors() {
		return result
	}
	return nil
}
