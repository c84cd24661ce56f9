package output_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wrenlabs/budget/output"
)

func TestStylesReturnNonEmptyStrings(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewStyles(&buf)

	for _, f := range []func(string) string{
		s.Success, s.Error, s.FilePath, s.Account, s.Category,
		s.Amount, s.Keyword, s.Dim, s.Warning,
	} {
		got := f("text")
		assert.True(t, len(got) > 0)
	}
}

func TestTimingReturnsNonEmptyForSlowAndFast(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewStyles(&buf)
	assert.True(t, len(s.Timing("12ms", false)) > 0)
	assert.True(t, len(s.Timing("2s", true)) > 0)
}

func TestOutputReturnsUnderlyingTermenvOutput(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewStyles(&buf)
	assert.True(t, s.Output() != nil)
}
