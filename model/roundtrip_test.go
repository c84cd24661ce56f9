package model_test

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/model"
)

func TestBudgetJSONRoundTrip(t *testing.T) {
	b := newTestBudget(t)
	var err error
	b, err = b.UpdateAccount(model.Account{ID: acctID(1), Name: "Checking", CurrencyCode: "USD", InitialBalance: decimal.NewFromInt(1000)})
	assert.NoError(t, err)
	b, err = b.UpdateCategoryGroup(model.CategoryGroup{ID: acctID(1), Name: "Essentials"})
	assert.NoError(t, err)
	rule, err := model.NewCategoryRule(decimal.NewFromInt(-1000), model.WithRulePeriod(model.PeriodDay, 1))
	assert.NoError(t, err)
	b, err = b.UpdateCategory(model.Category{ID: acctID(1), Name: "Dining", CurrencyCode: "USD", GroupID: acctID(1), Rules: []model.CategoryRule{rule}})
	assert.NoError(t, err)
	d := mustDate(2016, 1, 10)
	b, err = b.UpdateTransaction(model.Transaction{
		ID:        acctID(1),
		Date:      &d,
		AccountID: acctID(1),
		Detail:    []model.TransactionDetail{{Amount: decimal.NewFromInt(-500), CategoryID: acctID(1)}},
	})
	assert.NoError(t, err)

	raw, err := json.Marshal(b)
	assert.NoError(t, err)

	var decoded model.Budget
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, b.CurrencyCode, decoded.CurrencyCode)
	assert.Equal(t, len(b.Accounts), len(decoded.Accounts))
	assert.Equal(t, b.Accounts[0].Name, decoded.Accounts[0].Name)
	assert.Equal(t, b.Categories[0].Rules[0].Amount.String(), decoded.Categories[0].Rules[0].Amount.String())
	assert.Equal(t, b.Transactions[0].Date.Value(), decoded.Transactions[0].Date.Value())
	assert.NoError(t, decoded.CheckInvariants())
}

func TestCategoryAutomaticNilRulesSurvivesRoundTrip(t *testing.T) {
	cat := model.Category{ID: acctID(1), Name: "Income", CurrencyCode: "USD", GroupID: acctID(1), Rules: nil}
	raw, err := json.Marshal(cat)
	assert.NoError(t, err)

	var decoded model.Category
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.IsAutomatic())
}

func TestCategoryEmptyRulesSurvivesRoundTrip(t *testing.T) {
	cat := model.Category{ID: acctID(1), Name: "Misc", CurrencyCode: "USD", GroupID: acctID(1), Rules: []model.CategoryRule{}}
	raw, err := json.Marshal(cat)
	assert.NoError(t, err)

	var decoded model.Category
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.False(t, decoded.IsAutomatic())
	assert.Equal(t, 0, len(decoded.Rules))
}
