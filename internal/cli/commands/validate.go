package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhowland/daytally/pkg/config"
	"github.com/dhowland/daytally/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a daytally configuration file without running a tally.

Checks:
  - YAML syntax
  - Required fields
  - Malformed-line policy value
  - Webhook definitions
  - Timesheet file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Timesheet patterns: %d\n", len(cfg.Timesheets))
	fmt.Printf("  Malformed policy:   %s\n", cfg.OnMalformed)
	fmt.Printf("  Webhooks:           %d\n", len(cfg.Webhooks))

	// Check if timesheets exist (warnings only)
	files, err := parser.ExpandGlobs(cfg.Timesheets)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding timesheet patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match timesheet patterns\n")
	} else {
		fmt.Printf("\nTimesheet files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
