package model_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/model"
)

func newTestBudget(t *testing.T) model.Budget {
	t.Helper()
	start := mustDate(2016, 1, 1)
	end := mustDate(2016, 12, 31)
	b, err := model.NewBudget("USD", model.WithBudgetPeriod(start, end))
	assert.NoError(t, err)
	return b
}

func TestNewBudgetDefaultsAreValid(t *testing.T) {
	b := newTestBudget(t)
	assert.Equal(t, "USD", b.CurrencyCode)
	assert.NoError(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsUnknownCurrency(t *testing.T) {
	b := newTestBudget(t)
	b.CurrencyCode = "ZZZ"
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsEndBeforeStart(t *testing.T) {
	b := newTestBudget(t)
	b.StartDate, b.EndDate = b.EndDate, b.StartDate
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsCategoryWithUnknownGroup(t *testing.T) {
	b := newTestBudget(t)
	groupID := int64(1)
	catID := int64(1)
	b.Categories = []model.Category{
		{ID: &catID, Name: "Dining", CurrencyCode: "USD", GroupID: &groupID},
	}
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsTransactionWithUnknownAccount(t *testing.T) {
	b := newTestBudget(t)
	acctID := int64(1)
	txnID := int64(1)
	date := mustDate(2016, 1, 10)
	b.Transactions = []model.Transaction{
		{ID: &txnID, AccountID: &acctID, Date: &date, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-1000)}}},
	}
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsOverlappingRules(t *testing.T) {
	b := newTestBudget(t)
	groupID := int64(1)
	catID := int64(1)
	b.CategoryGroups = []model.CategoryGroup{{ID: &groupID, Name: "Essentials"}}

	r1, err := model.NewCategoryRule(decimal.NewFromInt(-1000), model.WithRulePeriod(model.PeriodDay, 1))
	assert.NoError(t, err)
	r2, err := model.NewCategoryRule(decimal.NewFromInt(-2000), model.WithRulePeriod(model.PeriodDay, 1))
	assert.NoError(t, err)

	b.Categories = []model.Category{
		{ID: &catID, Name: "Dining", CurrencyCode: "USD", GroupID: &groupID, Rules: []model.CategoryRule{r1, r2}},
	}
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsOutOfOrderTransactions(t *testing.T) {
	b := newTestBudget(t)
	id1, id2 := int64(1), int64(2)
	date1 := mustDate(2016, 6, 1)
	date2 := mustDate(2016, 1, 1)
	b.Transactions = []model.Transaction{
		{ID: &id1, Date: &date1, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-100)}}},
		{ID: &id2, Date: &date2, Detail: []model.TransactionDetail{{Amount: decimal.NewFromInt(-100)}}},
	}
	assert.Error(t, b.CheckInvariants())
}

func TestCheckInvariants_RejectsCategoryOrderNotMatchingGroupOrder(t *testing.T) {
	b := newTestBudget(t)
	g1, g2 := int64(1), int64(2)
	c1, c2 := int64(1), int64(2)
	b.CategoryGroups = []model.CategoryGroup{{ID: &g1, Name: "A"}, {ID: &g2, Name: "B"}}
	b.Categories = []model.Category{
		{ID: &c1, Name: "First", CurrencyCode: "USD", GroupID: &g2},
		{ID: &c2, Name: "Second", CurrencyCode: "USD", GroupID: &g1},
	}
	assert.Error(t, b.CheckInvariants())
}
