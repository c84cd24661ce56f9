package budgetfile_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/pdate"
)

func newTestBudget(t *testing.T) model.Budget {
	t.Helper()
	start := pdate.MustNew(2024, 1, 1)
	end := pdate.MustNew(2024, 12, 31)
	b, err := model.NewBudget("USD", model.WithBudgetName("Test Budget"), model.WithBudgetPeriod(start, end))
	assert.NoError(t, err)
	return b
}

func TestSaveLoadRoundTrip(t *testing.T) {
	budget := newTestBudget(t)

	var buf bytes.Buffer
	assert.NoError(t, budgetfile.Save(&buf, budget))

	ldr := budgetfile.New()
	loaded, version, err := ldr.Load(&buf)
	assert.NoError(t, err)
	assert.Equal(t, budgetfile.CurrentVersion, version)
	assert.Equal(t, budget, loaded)
}

func TestLoadBytesRejectsInvalidBudget(t *testing.T) {
	data := []byte(`{"version":{"major":1,"minor":0},"id":1,"name":"","currencyCode":"NOPE","startDate":0,"endDate":1}`)

	ldr := budgetfile.New()
	_, _, err := ldr.LoadBytes(data)
	assert.Error(t, err)
}

func TestWithoutValidationSkipsInvariantCheck(t *testing.T) {
	data := []byte(`{"version":{"major":1,"minor":0},"id":1,"name":"","currencyCode":"NOPE","startDate":0,"endDate":1}`)

	ldr := budgetfile.New(budgetfile.WithoutValidation())
	budget, _, err := ldr.LoadBytes(data)
	assert.NoError(t, err)
	assert.Equal(t, "NOPE", budget.CurrencyCode)
}

func TestNewDocumentUsesCurrentVersion(t *testing.T) {
	budget := newTestBudget(t)
	doc := budgetfile.NewDocument(budget)
	assert.Equal(t, budgetfile.CurrentVersion, doc.Version)
	assert.Equal(t, budget, doc.Budget)
}
