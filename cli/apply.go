package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/command"
)

// ApplyCmd applies a single command to a budget file, writes the resulting
// budget back out, and prints the command's inverse (it does not print
// account balances) — the inverse is what a caller needs to append to its
// own undo stack, since this engine computes it but never stores it.
type ApplyCmd struct {
	File    budgetfile.FileOrStdin `help:"Budget file to apply the command to (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Command string                 `help:"JSON-encoded command to apply, or '-' to read it from stdin." arg:""`
	Output  string                 `help:"Where to write the resulting budget file (defaults to overwriting the input file, or stdout for stdin input)." optional:""`
	Log     string                 `help:"Optional command-log file to append the applied command to." optional:""`
}

func (cmd *ApplyCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	cmdJSON, err := cmd.readCommand()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	var action command.Command
	if err := json.Unmarshal(cmdJSON, &action); err != nil {
		printError(ctx.Stderr, fmt.Sprintf("invalid command JSON: %s", err))
		return NewCommandError(1)
	}

	inverse, err := command.Invert(budget, action)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	next, err := command.ReduceAll(runCtx, budget, []command.Command{action})
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	outputPath := cmd.Output
	if outputPath == "" {
		if cmd.File.Filename == "<stdin>" {
			outputPath = "-"
		} else {
			outputPath = cmd.File.Filename
		}
	}
	if err := writeBudget(outputPath, next); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if cmd.Log != "" {
		if err := budgetfile.AppendCommand(cmd.Log, action); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Applied %s", action.Type))
	inverseJSON, _ := json.Marshal(inverse)
	printInfof(ctx.Stdout, "inverse: %s", inverseJSON)

	return nil
}

func (cmd *ApplyCmd) readCommand() ([]byte, error) {
	if cmd.Command == "-" || cmd.Command == "" {
		return io.ReadAll(os.Stdin)
	}
	return []byte(cmd.Command), nil
}
