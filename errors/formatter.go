// Package errors provides error formatting infrastructure for the budget
// engine's validation issues. It separates presentation from the
// validation package's Result/Issue collection, so the same issues can be
// rendered in multiple formats (text, JSON) for different consumers (CLI,
// API, log sink).
//
// Modeled on the teacher's errors/formatter.go (Formatter interface with a
// TextFormatter and JSONFormatter pair), retargeted from beancount
// directive-position errors to validation.Issue, which carries a field
// name instead of a file position.
package errors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wrenlabs/budget/output"
	"github.com/wrenlabs/budget/validation"
)

// Formatter formats validation issues for output in a particular format.
type Formatter interface {
	// Format formats a single issue.
	Format(issue validation.Issue) string

	// FormatAll formats an entire Result.
	FormatAll(result *validation.Result) string
}

// TextFormatter formats issues for command-line output, styled by severity
// when styles is non-nil.
type TextFormatter struct {
	styles *output.Styles
}

// NewTextFormatter creates a new text formatter. styles may be nil, in
// which case output is unstyled plain text.
func NewTextFormatter(styles *output.Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

// Format formats a single issue as "[severity] field: message", styled by
// severity when the formatter has styles.
func (tf *TextFormatter) Format(issue validation.Issue) string {
	text := issue.String()
	if tf.styles == nil {
		return text
	}
	if issue.Type == validation.SeverityWarning {
		return tf.styles.Warning(text)
	}
	return tf.styles.Error(text)
}

// FormatAll formats every issue in result, one per line.
func (tf *TextFormatter) FormatAll(result *validation.Result) string {
	issues := result.AllIssues()
	if len(issues) == 0 {
		return ""
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = tf.Format(issue)
	}
	return strings.Join(lines, "\n")
}

// JSONFormatter formats issues as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// IssueJSON is the wire shape of a single validation.Issue.
type IssueJSON struct {
	Severity string `json:"severity"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

// Format formats a single issue as a JSON object.
func (jf *JSONFormatter) Format(issue validation.Issue) string {
	data, err := json.Marshal(toIssueJSON(issue))
	if err != nil {
		return fmt.Sprintf(`{"severity":"error","message":%q}`, err.Error())
	}
	return string(data)
}

// FormatAll formats every issue in result as a JSON array.
func (jf *JSONFormatter) FormatAll(result *validation.Result) string {
	issues := result.AllIssues()
	out := make([]IssueJSON, len(issues))
	for i, issue := range issues {
		out[i] = toIssueJSON(issue)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func toIssueJSON(issue validation.Issue) IssueJSON {
	return IssueJSON{
		Severity: issue.Type.String(),
		Field:    issue.Field,
		Message:  issue.Message,
	}
}
