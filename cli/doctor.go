package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/wrenlabs/budget/budgetfile"
)

// DoctorCmd groups debugging utilities for budget files, the analogue of
// the teacher's DoctorCmd/LexCmd token-dump tree.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Pretty-print a decoded budget's full value tree."`
}

// DumpCmd decodes a budget file without enforcing its invariants and
// prints every field via repr, the value-tree analogue of the teacher's
// lexical token dump.
type DumpCmd struct {
	File budgetfile.FileOrStdin `help:"Budget file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	data, err := cmd.File.Open()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ldr := budgetfile.New(budgetfile.WithoutValidation())
	budget, version, err := ldr.LoadBytes(data)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	_, _ = fmt.Fprintf(ctx.Stdout, "version: %s\n", repr.String(version))
	repr.Println(budget)

	return nil
}
