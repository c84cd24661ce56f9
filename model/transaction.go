package model

import (
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/record"
)

// TransactionDetail is one leg of a (possibly split) Transaction, carrying
// its own amount, description, and optional category (spec §3).
type TransactionDetail struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  *ID             `json:"categoryId"`
}

// CheckInvariants implements record.Invariant.
func (d TransactionDetail) CheckInvariants() error {
	if !positiveID(d.CategoryID) {
		return record.NewInvariantViolation("TransactionDetail", "CategoryID", "must be a positive integer")
	}
	return nil
}

// Transaction is a single ledger entry, possibly split across several
// TransactionDetail rows (spec §3).
type Transaction struct {
	ID         *ID                 `json:"id"`
	Date       *pdate.PDate        `json:"date"`
	AccountID  *ID                 `json:"accountId"`
	Who        string              `json:"who"`
	UserID     *ID                 `json:"userId"`
	Detail     []TransactionDetail `json:"detail"`
	Pending    bool                `json:"pending"`
	IsTransfer bool                `json:"isTransfer"`
	Metadata   map[string]any      `json:"metadata"`
}

// Amount is the transaction's total, the sum of every detail row's amount.
func (t Transaction) Amount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Detail {
		total = total.Add(d.Amount)
	}
	return total
}

// IsSplit reports whether the transaction has more than one detail row.
func (t Transaction) IsSplit() bool {
	return len(t.Detail) > 1
}

// CheckInvariants implements record.Invariant (spec §3: "detail non-empty;
// if isTransfer then every detail has categoryId=null").
func (t Transaction) CheckInvariants() error {
	if !positiveID(t.ID) {
		return record.NewInvariantViolation("Transaction", "ID", "must be a positive integer")
	}
	if !positiveID(t.AccountID) {
		return record.NewInvariantViolation("Transaction", "AccountID", "must be a positive integer")
	}
	if !positiveID(t.UserID) {
		return record.NewInvariantViolation("Transaction", "UserID", "must be a positive integer")
	}
	if len(t.Detail) == 0 {
		return record.NewInvariantViolation("Transaction", "Detail", "must be non-empty")
	}
	for _, d := range t.Detail {
		if err := d.CheckInvariants(); err != nil {
			return record.NewInvariantViolation("Transaction", "Detail", err.Error())
		}
		if t.IsTransfer && d.CategoryID != nil {
			return record.NewInvariantViolation("Transaction", "Detail", "transfer transactions must not carry categories")
		}
	}
	return nil
}
