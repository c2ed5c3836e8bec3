package cli

import "testing"

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "daytally" {
		t.Errorf("Use = %q", cmd.Use)
	}

	wantSubcommands := []string{"tally", "inspect", "validate", "version"}
	for _, name := range wantSubcommands {
		if !isBuiltinCommand(cmd, name) {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestIsBuiltinCommand(t *testing.T) {
	cmd := NewRootCommand()

	if !isBuiltinCommand(cmd, "help") {
		t.Error("help should be builtin")
	}
	if !isBuiltinCommand(cmd, "completion") {
		t.Error("completion should be builtin")
	}
	if isBuiltinCommand(cmd, "definitely-not-a-command") {
		t.Error("unknown command reported as builtin")
	}
}
