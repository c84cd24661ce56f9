// Package cli implements a kong-based command-line harness around the
// budget engine: init, show, apply, watch, and doctor dump. It is a thin
// demonstration surface, not part of the engine's hard parts, mirroring
// the teacher's own cli package relationship to the ledger core.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FFAF00", Dark: "#FFAF00"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render(successSymbol), message)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
}

func printWarning(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", warnStyle.Render(errorSymbol), warnStyle.Render(message))
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

// promptYesNo prompts the user with a yes/no question, defaulting to false
// when stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool
	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return confirm, nil
}

func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
