package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/errors"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/output"
	"github.com/wrenlabs/budget/pdate"
)

// ShowCmd prints a budget's account balances and, for the given date (its
// own start date by default), each category's realized/budgeted balance,
// styled with lipgloss the way the teacher's own CLI colors check/format
// output.
type ShowCmd struct {
	File budgetfile.FileOrStdin `help:"Budget file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Date string                 `help:"Date to evaluate category budgets on (YYYY-MM-DD), defaults to the budget's start date." optional:""`
}

func (cmd *ShowCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, report := withTelemetry(context.Background(), globals.Telemetry, ctx.Stderr)
	defer report()

	data, err := cmd.File.Open()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ldr := budgetfile.New()
	budget, _, err := ldr.LoadBytes(data)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	date := budget.StartDate
	if cmd.Date != "" {
		date, err = pdate.Parse(cmd.Date)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
	}

	styles := output.NewStyles(ctx.Stdout)

	if result := budget.ValidateForBudget(); len(result.AllIssues()) > 0 {
		tf := errors.NewTextFormatter(styles)
		_, _ = fmt.Fprintln(ctx.Stdout, tf.FormatAll(result))
		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	nameWidth := accountNameWidth(terminalWidth())
	printAccountBalances(ctx.Stdout, styles, budget, nameWidth)
	_, _ = fmt.Fprintln(ctx.Stdout)
	if err := printCategoryBudgets(runCtx, ctx.Stdout, styles, budget, date, nameWidth); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	return nil
}

// accountNameWidth derives a name column width from the terminal width, the
// same terminal-aware layout idea the teacher's lipgloss-rendered tables
// use, scaled down for this command's two-column (name, amount) shape.
func accountNameWidth(termWidth int) int {
	w := termWidth / 3
	if w < 16 {
		w = 16
	}
	if w > 40 {
		w = 40
	}
	return w
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func printAccountBalances(w io.Writer, styles *output.Styles, budget model.Budget, nameWidth int) {
	balances := budget.AccountBalances()
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Accounts (%s)", budget.CurrencyCode))
	_, _ = fmt.Fprintln(w, header)
	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	for _, acct := range budget.Accounts {
		if acct.ID == nil {
			continue
		}
		bal := balances[*acct.ID]
		_, _ = fmt.Fprintf(w, "  %s %s\n", styles.Account(nameStyle.Render(acct.Name)), styles.Amount(bal.StringFixed(2)))
	}
}

func printCategoryBudgets(ctx context.Context, w io.Writer, styles *output.Styles, budget model.Budget, date pdate.PDate, nameWidth int) error {
	_, _ = fmt.Fprintf(w, "%s\n", lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Categories as of %s", date)))

	budgets, err := budget.CategoryBudgetsOnDateContext(ctx, date)
	if err != nil {
		return err
	}
	realized, err := budget.CategoryBalancesOnDate(date)
	if err != nil {
		return err
	}

	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	for _, group := range budget.CategoryGroups {
		if group.ID == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s\n", styles.Keyword(group.Name))
		for _, cat := range budget.Categories {
			if cat.GroupID == nil || *cat.GroupID != *group.ID || cat.ID == nil {
				continue
			}
			_, _ = fmt.Fprintf(w, "    %s budgeted %-12s realized %s\n",
				styles.Category(nameStyle.Render(cat.Name)),
				styles.Amount(budgets[*cat.ID].StringFixed(2)),
				styles.Amount(realized[*cat.ID].StringFixed(2)))
		}
	}
	return nil
}
