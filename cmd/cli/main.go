// daytally - Per-Day Timesheet Aggregation Tool
//
// daytally reads plain-text timesheets of per-day time entries and reports
// total elapsed time per calendar day.
package main

import (
	"os"

	"github.com/dhowland/daytally/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
