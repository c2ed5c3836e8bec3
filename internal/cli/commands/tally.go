package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhowland/daytally/pkg/config"
	"github.com/dhowland/daytally/pkg/output"
	"github.com/dhowland/daytally/pkg/parser"
	"github.com/dhowland/daytally/pkg/tally"
	"github.com/dhowland/daytally/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// TallyOptions holds command-line options for the tally command.
type TallyOptions struct {
	Output      string
	OnMalformed string
	Verbose     bool
	Quiet       bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewTallyCommand creates the tally command.
func NewTallyCommand() *cobra.Command {
	opts := &TallyOptions{}

	cmd := &cobra.Command{
		Use:   "tally <config-file>",
		Short: "Tally per-day totals from configured timesheets",
		Long: `Read the timesheets named in the configuration file, parse every entry,
and print total elapsed time per calendar day in first-seen order.

Malformed lines are handled per the on_malformed policy (abort or skip),
settable in the config file or via --on-malformed.

Exit codes:
  0 - All lines parsed
  1 - Malformed lines were skipped (policy: skip)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTally(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.OnMalformed, "on-malformed", "", "Malformed line policy (abort|skip), overrides config")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show processing statistics and a totals table")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no day lines")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_skipped", "When to fire webhook (on_skipped|always|never)")

	return cmd
}

func runTally(cmd *cobra.Command, args []string, opts *TallyOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	policy := cfg.Policy()
	if opts.OnMalformed != "" {
		policy = tally.Policy(opts.OnMalformed)
		if !tally.ValidPolicy(policy) {
			return fmt.Errorf("invalid --on-malformed %q (use abort or skip)", opts.OnMalformed)
		}
	}

	// Expand timesheet globs
	files, err := parser.ExpandGlobs(cfg.Timesheets)
	if err != nil {
		return fmt.Errorf("expanding timesheet patterns: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no timesheet files matched patterns: %v", cfg.Timesheets)
	}

	source := parser.NewFileSource(files)
	defer source.Close()

	// Run the tally
	tallier := tally.New(
		tally.WithPolicy(policy),
		tally.WithVerbose(opts.Verbose),
	)

	result, err := tallier.Run(ctx, source)
	if err != nil {
		return fmt.Errorf("tally failed: %w", err)
	}

	report := output.NewReport(result, configPath)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	if report.HasSkipped() {
		ExitCode = 1
	}

	return nil
}

func createFormatter(opts *TallyOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks delivers the report to all configured webhook targets.
// The client applies each target's trigger condition; failures are
// logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *TallyOptions, report *output.Report) {
	targets := collectTargets(cfg, opts)

	if len(targets) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, target := range targets {
		resp := client.Deliver(ctx, report, target)
		if !resp.Fired {
			continue
		}

		name := target.Name
		if name == "" {
			name = target.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Err)
		}
	}
}

// collectTargets merges config file webhooks with the CLI webhook.
func collectTargets(cfg *config.Config, opts *TallyOptions) []webhook.Target {
	targets := make([]webhook.Target, 0, len(cfg.Webhooks)+1)

	for _, wh := range cfg.Webhooks {
		targets = append(targets, webhook.Target{
			Name:    wh.Name,
			URL:     wh.URL,
			Token:   wh.Token,
			Trigger: wh.Trigger,
			Timeout: wh.Timeout,
		})
	}

	if opts.WebhookURL != "" {
		targets = append(targets, webhook.Target{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return targets
}
