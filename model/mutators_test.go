package model_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/model"
)

func acctID(v int64) *int64 { return &v }

func TestUpdateAccount_UpsertsWithoutReordering(t *testing.T) {
	b := newTestBudget(t)
	a1 := model.Account{ID: acctID(1), Name: "Checking", CurrencyCode: "USD"}
	a2 := model.Account{ID: acctID(2), Name: "Savings", CurrencyCode: "USD"}

	b, err := b.UpdateAccount(a1)
	assert.NoError(t, err)
	b, err = b.UpdateAccount(a2)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(b.Accounts))
	assert.Equal(t, "Checking", b.Accounts[0].Name)

	a1.Name = "Primary Checking"
	b, err = b.UpdateAccount(a1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(b.Accounts))
	assert.Equal(t, "Primary Checking", b.Accounts[0].Name)
	assert.Equal(t, "Savings", b.Accounts[1].Name)
}

func TestPositionAccount_Reorders(t *testing.T) {
	b := newTestBudget(t)
	var err error
	for i := int64(1); i <= 3; i++ {
		b, err = b.UpdateAccount(model.Account{ID: acctID(i), Name: "A", CurrencyCode: "USD"})
		assert.NoError(t, err)
	}
	b, err = b.PositionAccount(3, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), *b.Accounts[0].ID)
	assert.Equal(t, int64(1), *b.Accounts[1].ID)
	assert.Equal(t, int64(2), *b.Accounts[2].ID)
}

func TestPositionAccount_OutOfBoundsIsInvariantViolation(t *testing.T) {
	b := newTestBudget(t)
	b, err := b.UpdateAccount(model.Account{ID: acctID(1), Name: "A", CurrencyCode: "USD"})
	assert.NoError(t, err)
	_, err = b.PositionAccount(1, 5)
	assert.Error(t, err)
}

func TestDeleteAccount_RelinksTransactionsToNil(t *testing.T) {
	b := newTestBudget(t)
	b, err := b.UpdateAccount(model.Account{ID: acctID(1), Name: "Checking", CurrencyCode: "USD"})
	assert.NoError(t, err)

	date := mustDate(2016, 3, 1)
	txn := model.Transaction{
		ID:        acctID(1),
		Date:      &date,
		AccountID: acctID(1),
		Detail:    []model.TransactionDetail{{Amount: decimal.NewFromInt(-500)}},
	}
	b, err = b.UpdateTransaction(txn)
	assert.NoError(t, err)

	b, err = b.DeleteAccount(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(b.Accounts))
	assert.Equal(t, 1, len(b.Transactions))
	assert.Zero(t, b.Transactions[0].AccountID)
}

func TestDeleteCategoryGroup_RejectsNonEmptyGroup(t *testing.T) {
	b := newTestBudget(t)
	b, err := b.UpdateCategoryGroup(model.CategoryGroup{ID: acctID(1), Name: "Essentials"})
	assert.NoError(t, err)
	b, err = b.UpdateCategory(model.Category{ID: acctID(1), Name: "Dining", CurrencyCode: "USD", GroupID: acctID(1)})
	assert.NoError(t, err)

	_, err = b.DeleteCategoryGroup(1)
	assert.Error(t, err)
}

func TestUpdateCategory_MovingGroupsResorts(t *testing.T) {
	b := newTestBudget(t)
	var err error
	b, err = b.UpdateCategoryGroup(model.CategoryGroup{ID: acctID(1), Name: "Essentials"})
	assert.NoError(t, err)
	b, err = b.UpdateCategoryGroup(model.CategoryGroup{ID: acctID(2), Name: "Fun"})
	assert.NoError(t, err)

	b, err = b.UpdateCategory(model.Category{ID: acctID(1), Name: "Rent", CurrencyCode: "USD", GroupID: acctID(1)})
	assert.NoError(t, err)
	b, err = b.UpdateCategory(model.Category{ID: acctID(2), Name: "Games", CurrencyCode: "USD", GroupID: acctID(2)})
	assert.NoError(t, err)

	assert.Equal(t, int64(1), *b.Categories[0].GroupID)
	assert.Equal(t, int64(2), *b.Categories[1].GroupID)

	// Move "Rent" into the "Fun" group: its segment must move to the end.
	b, err = b.UpdateCategory(model.Category{ID: acctID(1), Name: "Rent", CurrencyCode: "USD", GroupID: acctID(2)})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), *b.Categories[0].GroupID)
	assert.Equal(t, int64(2), *b.Categories[1].GroupID)
	assert.Equal(t, "Games", b.Categories[0].Name)
	assert.Equal(t, "Rent", b.Categories[1].Name)
}

func TestDeleteCategory_RelinksTransactionDetailsToNil(t *testing.T) {
	b := newTestBudget(t)
	b, err := b.UpdateCategoryGroup(model.CategoryGroup{ID: acctID(1), Name: "Essentials"})
	assert.NoError(t, err)
	b, err = b.UpdateCategory(model.Category{ID: acctID(1), Name: "Dining", CurrencyCode: "USD", GroupID: acctID(1)})
	assert.NoError(t, err)

	date := mustDate(2016, 3, 1)
	b, err = b.UpdateTransaction(model.Transaction{
		ID:     acctID(1),
		Date:   &date,
		Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-100), CategoryID: acctID(1)}},
	})
	assert.NoError(t, err)

	b, err = b.DeleteCategory(1)
	assert.NoError(t, err)
	assert.Zero(t, b.Transactions[0].Detail[0].CategoryID)
}

func TestUpdateTransaction_InsertResortsByDate(t *testing.T) {
	b := newTestBudget(t)
	d1 := mustDate(2016, 1, 10)
	d2 := mustDate(2016, 1, 5)
	var err error
	b, err = b.UpdateTransaction(model.Transaction{ID: acctID(1), Date: &d1, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-10)}}})
	assert.NoError(t, err)
	b, err = b.UpdateTransaction(model.Transaction{ID: acctID(2), Date: &d2, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-20)}}})
	assert.NoError(t, err)

	assert.Equal(t, int64(2), *b.Transactions[0].ID)
	assert.Equal(t, int64(1), *b.Transactions[1].ID)
}

func TestUpdateTransaction_RejectsUnknownAccount(t *testing.T) {
	b := newTestBudget(t)
	d := mustDate(2016, 1, 10)
	_, err := b.UpdateTransaction(model.Transaction{
		ID:        acctID(1),
		Date:      &d,
		AccountID: acctID(99),
		Detail:    []model.TransactionDetail{{Amount: decimal.NewFromInt(-10)}},
	})
	assert.Error(t, err)
}

func TestDeleteTransaction_Removes(t *testing.T) {
	b := newTestBudget(t)
	d := mustDate(2016, 1, 10)
	b, err := b.UpdateTransaction(model.Transaction{ID: acctID(1), Date: &d, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-10)}}})
	assert.NoError(t, err)
	b, err = b.DeleteTransaction(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(b.Transactions))
}

func TestNullDateTransactionsSortLast(t *testing.T) {
	b := newTestBudget(t)
	d := mustDate(2016, 6, 1)
	var err error
	b, err = b.UpdateTransaction(model.Transaction{ID: acctID(1), Date: nil, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-10)}}})
	assert.NoError(t, err)
	b, err = b.UpdateTransaction(model.Transaction{ID: acctID(2), Date: &d, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-10)}}})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), *b.Transactions[0].ID)
	assert.Zero(t, b.Transactions[1].Date)
}
