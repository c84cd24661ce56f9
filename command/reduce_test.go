package command_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/command"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/pdate"
)

func newReduceTestBudget(t *testing.T) model.Budget {
	t.Helper()
	start := pdate.MustNew(2016, 1, 1)
	end := pdate.MustNew(2016, 12, 31)
	b, err := model.NewBudget("USD", model.WithBudgetID(1), model.WithBudgetPeriod(start, end))
	assert.NoError(t, err)
	return b
}

func id(v int64) *int64 { return &v }

func TestReduce_ForeignTypePassesThrough(t *testing.T) {
	b := newReduceTestBudget(t)
	cmd := command.Command{Type: "other-app/SOMETHING"}
	next, err := command.Reduce(b, cmd)
	assert.NoError(t, err)
	assert.Equal(t, b, next)
}

func TestReduce_MismatchedBudgetIDPassesThrough(t *testing.T) {
	b := newReduceTestBudget(t)
	wrong := id(999)
	name := "Renamed"
	next, err := command.Reduce(b, command.Command{Type: command.SetName, BudgetID: wrong, Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, b, next)
}

func TestReduce_NoopReturnsStateUnchanged(t *testing.T) {
	b := newReduceTestBudget(t)
	next, err := command.Reduce(b, command.Command{Type: command.NOOP})
	assert.NoError(t, err)
	assert.Equal(t, b, next)
}

func TestReduce_SetCurrencyNameDate(t *testing.T) {
	b := newReduceTestBudget(t)
	code := "EUR"
	next, err := command.Reduce(b, command.Command{Type: command.SetCurrency, CurrencyCode: &code})
	assert.NoError(t, err)
	assert.Equal(t, "EUR", next.CurrencyCode)

	name := "Household"
	next, err = command.Reduce(next, command.Command{Type: command.SetName, Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Household", next.Name)

	newStart := pdate.MustNew(2015, 1, 1).Value()
	next, err = command.Reduce(next, command.Command{Type: command.SetDate, StartDate: &newStart})
	assert.NoError(t, err)
	assert.Equal(t, 2015, next.StartDate.Year())
}

func TestReduce_UpdateAccountInsertLinksNullTransactions(t *testing.T) {
	b := newReduceTestBudget(t)
	d := pdate.MustNew(2016, 1, 10)
	b, err := b.UpdateTransaction(model.Transaction{
		ID:     id(1),
		Date:   &d,
		Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-500)}},
	})
	assert.NoError(t, err)
	assert.Equal(t, (*int64)(nil), b.Transactions[0].AccountID)

	acctData := map[string]any{"name": "Checking", "currencyCode": "USD", "initialBalance": "0"}

	next, err := command.Reduce(b, command.Command{
		Type:                 command.UpdateAccount,
		ID:                   id(1),
		Data:                 acctData,
		LinkNullTransactions: []int64{1},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(next.Accounts))
	assert.Equal(t, id(1), next.Transactions[0].AccountID)
}

func TestReduce_UpdateMultipleTransactionsAppliesEachInOrder(t *testing.T) {
	b := newReduceTestBudget(t)
	b, err := b.UpdateAccount(model.Account{ID: id(1), Name: "Checking", CurrencyCode: "USD"})
	assert.NoError(t, err)
	d1 := pdate.MustNew(2016, 1, 5)
	d2 := pdate.MustNew(2016, 1, 6)
	b, err = b.UpdateTransaction(model.Transaction{ID: id(1), Date: &d1, AccountID: id(1), Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-100)}}})
	assert.NoError(t, err)
	b, err = b.UpdateTransaction(model.Transaction{ID: id(2), Date: &d2, AccountID: id(1), Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-200)}}})
	assert.NoError(t, err)

	next, err := command.Reduce(b, command.Command{
		Type: command.UpdateMultipleTransactions,
		SubActions: []command.Command{
			{Type: command.DeleteTransaction, ID: id(1)},
			{Type: command.UpdateTransaction, ID: id(2), Data: map[string]any{
				"date": d2.Value(), "accountId": 1, "detail": []map[string]any{{"amount": "-250"}},
			}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(next.Transactions))
	assert.Equal(t, "-250", next.Transactions[0].Detail[0].Amount.String())
}

func TestReduce_UpdateMultipleTransactionsRejectsOtherSubActionTypes(t *testing.T) {
	b := newReduceTestBudget(t)
	name := "x"
	_, err := command.Reduce(b, command.Command{
		Type:       command.UpdateMultipleTransactions,
		SubActions: []command.Command{{Type: command.SetName, Name: &name}},
	})
	assert.Error(t, err)
}
