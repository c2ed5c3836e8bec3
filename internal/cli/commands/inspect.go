package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhowland/daytally/pkg/inspect"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output      string
	SampleSize  int
	WriteConfig string
	NoColor     bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <timesheet-file>",
		Short: "Check how well a timesheet matches the entry grammar",
		Long: `Sample lines from a timesheet file and report how many match the
entry grammar, with a preview of lines that don't.

Optionally writes a starter config file with --write-config.

Example:
  daytally inspect timesheets/week.txt
  daytally inspect --sample 500 timesheets/big.txt
  daytally inspect -w daytally.yaml timesheets/week.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	sheetPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	inspector := inspect.New(inspect.WithSampleSize(opts.SampleSize))

	result, err := inspector.InspectFile(ctx, sheetPath)
	if err != nil {
		return fmt.Errorf("inspecting timesheet: %w", err)
	}

	switch opts.Output {
	case "text":
		printInspectResult(sheetPath, result)
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(opts.WriteConfig, sheetPath); err != nil {
			return err
		}
		fmt.Printf("\nStarter config written to %s\n", opts.WriteConfig)
	}

	if result.MatchedLines == 0 && result.SampledLines > 0 {
		ExitCode = 1
	}

	return nil
}

func printInspectResult(path string, result *inspect.Result) {
	fmt.Printf("Inspecting %s (%d line(s) sampled)\n\n", path, result.SampledLines)

	rate := int(result.MatchRate() * 100)
	switch {
	case result.SampledLines == 0:
		color.New(color.FgYellow).Fprintf(os.Stdout, "No entry lines found\n")
	case result.MatchedLines == result.SampledLines:
		color.New(color.FgGreen).Fprintf(os.Stdout, "All sampled lines match the entry grammar (%d%%)\n", rate)
	case result.MatchedLines > 0:
		color.New(color.FgYellow).Fprintf(os.Stdout, "%d of %d sampled lines match (%d%%)\n",
			result.MatchedLines, result.SampledLines, rate)
	default:
		color.New(color.FgRed).Fprintf(os.Stdout, "No sampled lines match the entry grammar\n")
	}

	if result.SampleEntry != nil {
		fmt.Printf("\nExample entry: %s -> %s\n", result.SampleEntry.Raw, result.SampleEntry.Date)
	}

	if len(result.Malformed) > 0 {
		fmt.Printf("\nLines that don't match:\n")
		for _, m := range result.Malformed {
			color.New(color.FgRed).Fprintf(os.Stdout, "  %d: %s\n", m.LineNum, m.Line)
		}
	}
}

func writeStarterConfig(configPath, sheetPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file %s already exists, not overwriting", configPath)
	}

	snippet := inspect.StarterConfig(sheetPath)
	if err := os.WriteFile(configPath, []byte(snippet), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
