package command

import (
	"context"
	"fmt"

	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/telemetry"
)

// ReduceAll folds cmds into state in order, wrapped in a single
// "budget.reduce" timer recording how many commands were applied. It stops
// and returns the first error Reduce produces, leaving state as it stood
// immediately before the failing command.
func ReduceAll(ctx context.Context, state model.Budget, cmds []Command) (model.Budget, error) {
	timer := telemetry.FromContext(ctx).StartStructured(telemetry.TimerConfig{
		Name:  fmt.Sprintf("budget.reduce (%d commands)", len(cmds)),
		Count: len(cmds),
		Unit:  "commands",
	})
	defer timer.End()

	for _, cmd := range cmds {
		next, err := Reduce(state, cmd)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}
