package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/currency"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/pdate"
)

// InitCmd runs an interactive wizard (name, currency, date range, first
// account) and writes the resulting Budget to Output, analogous to the
// teacher's promptYesNo-driven prompts but assembled into a full huh.Form
// since init gathers several fields at once.
type InitCmd struct {
	Output string `help:"Where to write the new budget file." arg:"" optional:"" default:"budget.json"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	var (
		name         = "My Budget"
		currencyCode = "USD"
		startDateStr string
		endDateStr   string
		acctName     = "Checking"
		acctInitial  = "0.00"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Budget name").Value(&name),
			huh.NewInput().Title("Currency code (e.g. USD, EUR)").Value(&currencyCode).
				Validate(func(s string) error {
					if !currency.Known(strings.ToUpper(s)) {
						return fmt.Errorf("%q is not a known currency code", s)
					}
					return nil
				}),
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&startDateStr).
				Validate(func(s string) error {
					_, err := pdate.Parse(s)
					return err
				}),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&endDateStr).
				Validate(func(s string) error {
					_, err := pdate.Parse(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().Title("First account name").Value(&acctName),
			huh.NewInput().Title("First account initial balance").Value(&acctInitial).
				Validate(func(s string) error {
					_, err := decimal.NewFromString(s)
					return err
				}),
		),
	)

	if isTerminal() {
		if err := form.Run(); err != nil {
			return fmt.Errorf("init wizard failed: %w", err)
		}
	}

	currencyCode = strings.ToUpper(currencyCode)
	start, end := pdate.MustNew(2000, 1, 1), pdate.MustNew(2000, 12, 31)
	if startDateStr != "" {
		if d, err := pdate.Parse(startDateStr); err == nil {
			start = d
		}
	}
	if endDateStr != "" {
		if d, err := pdate.Parse(endDateStr); err == nil {
			end = d
		}
	}

	budget, err := model.NewBudget(currencyCode, model.WithBudgetName(name), model.WithBudgetPeriod(start, end))
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	initialBalance, _ := decimal.NewFromString(acctInitial)
	budget, err = budget.UpdateAccount(model.Account{
		ID:             idPtr(1),
		Name:           acctName,
		InitialBalance: initialBalance,
		CurrencyCode:   currencyCode,
	})
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if !budgetfile.IsStdout(cmd.Output) {
		if _, err := os.Stat(cmd.Output); err == nil {
			overwrite, err := promptYesNo(fmt.Sprintf("%s already exists, overwrite it?", cmd.Output))
			if err != nil {
				printError(ctx.Stderr, err.Error())
				return NewCommandError(1)
			}
			if !overwrite {
				printWarning(ctx.Stderr, "aborted, nothing written")
				return NewCommandError(1)
			}
		}
	}

	if err := writeBudget(cmd.Output, budget); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s", cmd.Output))
	return nil
}

func idPtr(v int64) *int64 { return &v }

// writeBudget saves budget to path, or to stdout when path names the
// stdout sentinel (spec §6's persisted form has no file-system requirement
// of its own; budgetfile.Save just needs a writer).
func writeBudget(path string, budget model.Budget) error {
	if budgetfile.IsStdout(path) {
		return budgetfile.Save(os.Stdout, budget)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return budgetfile.Save(f, budget)
}
