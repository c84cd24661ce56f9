package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to every command.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

// Commands is the top-level kong command tree.
type Commands struct {
	Globals

	Init   InitCmd   `cmd:"" help:"Create a new budget file from an interactive wizard."`
	Show   ShowCmd   `cmd:"" help:"Show a budget's account and category balances."`
	Apply  ApplyCmd  `cmd:"" help:"Apply one command to a budget file and save the result."`
	Watch  WatchCmd  `cmd:"" help:"Watch a command log and replay newly appended commands."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging budget files."`
}
