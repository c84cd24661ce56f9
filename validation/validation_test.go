package validation_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/wrenlabs/budget/validation"
)

func TestResultCollectsInOrder(t *testing.T) {
	r := validation.NewResult()
	r.AddWarning("accountId", "no account set")
	r.AddError("", "budget currency unknown")
	r.AddWarning("categoryId", "no category set")

	assert.Equal(t, 3, len(r.AllIssues()))
	assert.Equal(t, 1, len(r.Errors()))
	assert.Equal(t, 2, len(r.Warnings()))
	assert.Equal(t, 1, len(r.OverallIssues()))
	assert.Equal(t, 1, len(r.GetFieldIssues("accountId")))
	assert.True(t, r.HasErrors())
}

func TestResultWithNoErrorsHasNoErrors(t *testing.T) {
	r := validation.NewResult()
	r.AddWarning("", "just a warning")
	assert.False(t, r.HasErrors())
}

type fixtureAggregate struct{ Name string }

func TestContextAppendsToResult(t *testing.T) {
	agg := &fixtureAggregate{Name: "budget"}
	ctx := validation.NewContext(agg)
	ctx.AddError("currencyCode", "unknown currency")
	ctx.AddWarning("", "no accounts")

	assert.Equal(t, agg, ctx.Aggregate)
	assert.Equal(t, 2, len(ctx.Result.AllIssues()))
}
