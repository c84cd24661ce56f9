package record_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/wrenlabs/budget/record"
)

// widget is a minimal fixture record for exercising the Set/Merge/WithMutations
// plumbing in isolation from the real model types.
type widget struct {
	Name  string
	Count int
}

func (w widget) CheckInvariants() error {
	if w.Name == "" {
		return record.NewInvariantViolation("widget", "Name", "must not be empty")
	}
	if w.Count < 0 {
		return record.NewInvariantViolation("widget", "Count", "must not be negative")
	}
	return nil
}

func TestSetReturnsNewValueOnSuccess(t *testing.T) {
	w := widget{Name: "a", Count: 1}
	next, err := record.Set(w, func(w *widget) { w.Count = 5 })
	assert.NoError(t, err)
	assert.Equal(t, 5, next.Count)
	assert.Equal(t, 1, w.Count) // original untouched
}

func TestSetRejectsInvariantViolation(t *testing.T) {
	w := widget{Name: "a", Count: 1}
	next, err := record.Set(w, func(w *widget) { w.Count = -1 })
	assert.Error(t, err)
	assert.Equal(t, w, next) // original returned back unchanged

	var violation *record.InvariantViolation
	assert.True(t, errorsAs(err, &violation))
	assert.Equal(t, "widget", violation.Record)
	assert.Equal(t, "Count", violation.Field)
}

func TestWithMutationsDefersCheckToEnd(t *testing.T) {
	w := widget{Name: "a", Count: 1}

	// An intermediate state that would violate invariants is fine as long as
	// the final state, after the whole closure runs, is valid.
	next, err := record.WithMutations(w, func(w *widget) {
		w.Name = ""
		w.Count = 2
		w.Name = "b"
	})
	assert.NoError(t, err)
	assert.Equal(t, "b", next.Name)
	assert.Equal(t, 2, next.Count)
}

func TestMustSetPanicsOnViolation(t *testing.T) {
	w := widget{Name: "a", Count: 1}
	assert.Panics(t, func() {
		record.MustSet(w, func(w *widget) { w.Name = "" })
	})
}

func errorsAs(err error, target **record.InvariantViolation) bool {
	v, ok := err.(*record.InvariantViolation)
	if !ok {
		return false
	}
	*target = v
	return true
}
