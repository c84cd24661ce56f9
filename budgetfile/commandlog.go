package budgetfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wrenlabs/budget/command"
)

// AppendCommand serializes cmd as one JSON line and appends it to the file
// at path, creating it if necessary. This is the command-log format `cli
// apply` writes to and `cli watch` tails (spec §6's command form is "plain
// records"; a log is simply many of them, newline-delimited so the file can
// be appended to without re-parsing the whole thing).
func AppendCommand(path string, cmd command.Command) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("budgetfile: open command log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("budgetfile: encode command: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("budgetfile: append command: %w", err)
	}
	return nil
}

// ReadCommands decodes every line of a command log into a command.Command.
// Blank lines are skipped, allowing a trailing newline or manual editing
// without producing a spurious zero-value command.
func ReadCommands(r io.Reader) ([]command.Command, error) {
	var cmds []command.Command
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var cmd command.Command
		if err := json.Unmarshal(line, &cmd); err != nil {
			return nil, fmt.Errorf("budgetfile: decode command log line: %w", err)
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("budgetfile: read command log: %w", err)
	}
	return cmds, nil
}

// ReadCommandsFrom opens path and decodes its contents via ReadCommands. A
// missing file is treated as an empty log rather than an error, the shape
// `cli watch` needs when it starts before any command has been appended.
func ReadCommandsFrom(path string) ([]command.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("budgetfile: open command log: %w", err)
	}
	defer f.Close()
	return ReadCommands(f)
}
