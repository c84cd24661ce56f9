package model

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wrenlabs/budget/pdate"
	"github.com/wrenlabs/budget/telemetry"
)

// AccountBalancesContext is AccountBalances instrumented with a
// "budget.balances" timer recording how many transactions were scanned to
// (re)build the balance cache. The timer only fires real work the first
// time it runs after a structural mutation invalidates the cache; repeat
// calls against an already-warm cache report near-zero duration, which is
// itself useful telemetry (spec §4.5's memoization is cheap to confirm).
func (b *Budget) AccountBalancesContext(ctx context.Context) map[ID]decimal.Decimal {
	warm := b.cache != nil
	timer := startBalanceTimer(ctx, warm, len(b.Transactions))
	defer timer.End()
	return b.AccountBalances()
}

// CategoryBudgetsOnDateContext is CategoryBudgetsOnDate instrumented the
// same way as AccountBalancesContext.
func (b *Budget) CategoryBudgetsOnDateContext(ctx context.Context, date pdate.PDate) (map[ID]decimal.Decimal, error) {
	warm := b.cache != nil
	timer := startBalanceTimer(ctx, warm, len(b.Transactions))
	defer timer.End()
	return b.CategoryBudgetsOnDate(date)
}

func startBalanceTimer(ctx context.Context, warm bool, txnCount int) telemetry.Timer {
	collector := telemetry.FromContext(ctx)
	if warm {
		return collector.Start("budget.balances (cached)")
	}
	return collector.StartStructured(telemetry.TimerConfig{
		Name:  fmt.Sprintf("budget.balances (%d transactions)", txnCount),
		Count: txnCount,
		Unit:  "transactions",
	})
}
