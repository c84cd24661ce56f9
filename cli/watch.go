package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/wrenlabs/budget/budgetfile"
	"github.com/wrenlabs/budget/command"
	"github.com/wrenlabs/budget/model"
	"github.com/wrenlabs/budget/output"
)

// WatchCmd watches a command-log file for appended commands and replays
// the whole log against the base budget file each time it changes,
// printing the resulting account balances — the same fsnotify-driven
// reload idiom the teacher uses for its web package's live reload.
type WatchCmd struct {
	File budgetfile.FileOrStdin `help:"Base budget file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Log  string                 `help:"Command-log file to watch for appended commands." arg:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
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
	base, _, err := ldr.LoadBytes(data)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cmd.Log)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	printInfof(ctx.Stdout, "watching %s for appended commands (ctrl-c to stop)", cmd.Log)
	if err := cmd.replay(runCtx, ctx, base); err != nil {
		printWarning(ctx.Stderr, err.Error())
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cmd.Log) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := cmd.replay(runCtx, ctx, base); err != nil {
				printWarning(ctx.Stderr, err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printWarning(ctx.Stderr, err.Error())
		}
	}
}

func (cmd *WatchCmd) replay(runCtx context.Context, ctx *kong.Context, base model.Budget) error {
	cmds, err := budgetfile.ReadCommandsFrom(cmd.Log)
	if err != nil {
		return err
	}
	current, err := command.ReduceAll(runCtx, base, cmds)
	if err != nil {
		return fmt.Errorf("replay failed after %d commands: %w", len(cmds), err)
	}
	printInfof(ctx.Stdout, "replayed %d commands", len(cmds))
	printAccountBalances(ctx.Stdout, output.NewStyles(ctx.Stdout), current, accountNameWidth(terminalWidth()))
	return nil
}
