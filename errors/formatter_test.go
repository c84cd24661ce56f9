package errors_test

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wrenlabs/budget/errors"
	"github.com/wrenlabs/budget/validation"
)

func sampleResult() *validation.Result {
	r := validation.NewResult()
	r.AddWarning("accountId", "transaction references an unknown account")
	r.AddError("categoryId", "category currency does not match account currency")
	return r
}

func TestTextFormatter_FormatAllJoinsOneIssuePerLine(t *testing.T) {
	tf := errors.NewTextFormatter(nil)
	out := tf.FormatAll(sampleResult())
	assert.Contains(t, out, "accountId")
	assert.Contains(t, out, "categoryId")
	assert.Equal(t, 2, len(splitLines(out)))
}

func TestTextFormatter_FormatAllEmptyResultIsEmptyString(t *testing.T) {
	tf := errors.NewTextFormatter(nil)
	assert.Equal(t, "", tf.FormatAll(validation.NewResult()))
}

func TestJSONFormatter_FormatAllRoundTrips(t *testing.T) {
	jf := errors.NewJSONFormatter()
	out := jf.FormatAll(sampleResult())

	var decoded []errors.IssueJSON
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2, len(decoded))
	assert.Equal(t, "warning", decoded[0].Severity)
	assert.Equal(t, "accountId", decoded[0].Field)
	assert.Equal(t, "error", decoded[1].Severity)
}

func TestJSONFormatter_FormatSingleIssue(t *testing.T) {
	jf := errors.NewJSONFormatter()
	issue := validation.Issue{Type: validation.SeverityError, Field: "name", Message: "required"}
	var decoded errors.IssueJSON
	assert.NoError(t, json.Unmarshal([]byte(jf.Format(issue)), &decoded))
	assert.Equal(t, "name", decoded.Field)
	assert.Equal(t, "required", decoded.Message)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
