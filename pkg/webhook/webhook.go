// Package webhook delivers tally reports to configured HTTP endpoints.
// The client owns the trigger decision: a target whose trigger condition
// is not met is simply not fired.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dhowland/daytally/pkg/config"
	"github.com/dhowland/daytally/pkg/output"
	"github.com/dhowland/daytally/pkg/tally"
)

// maxResponseBytes caps how much of an endpoint's response body is kept.
const maxResponseBytes = 1024 * 1024

// Payload event names.
const (
	EventCompleted    = "tally_completed"
	EventSkippedLines = "tally_skipped_lines"
)

// Payload is the JSON document posted to a webhook endpoint.
type Payload struct {
	Event         string           `json:"event"`
	ConfigFile    string           `json:"config_file"`
	Days          int              `json:"days"`
	EntriesParsed int              `json:"entries_parsed"`
	LinesSkipped  int              `json:"lines_skipped"`
	Totals        []tally.DayTotal `json:"totals"`
	TalliedAt     time.Time        `json:"tallied_at"`
}

// NewPayload builds the webhook payload for a tally report.
func NewPayload(report *output.Report) *Payload {
	event := EventCompleted
	if report.HasSkipped() {
		event = EventSkippedLines
	}

	return &Payload{
		Event:         event,
		ConfigFile:    report.Metadata.ConfigFile,
		Days:          report.Summary.Days,
		EntriesParsed: report.Summary.EntriesParsed,
		LinesSkipped:  report.Summary.LinesSkipped,
		Totals:        report.Totals,
		TalliedAt:     report.Metadata.TalliedAt,
	}
}

// Target describes one webhook endpoint and when it should fire.
type Target struct {
	Name    string
	URL     string
	Token   string                // Bearer token (optional)
	Trigger config.WebhookTrigger // empty means on_skipped
	Timeout time.Duration         // uses config.DefaultWebhookTimeout if zero
}

// Response records the outcome of one delivery attempt.
type Response struct {
	// Fired is false when the target's trigger condition was not met
	// and no request was made.
	Fired bool

	StatusCode int
	Body       string
	Duration   time.Duration
	Err        error
}

// Success reports whether the webhook fired and the endpoint answered 2xx.
func (r *Response) Success() bool {
	return r.Fired && r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Client posts tally reports to webhook targets.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Deliver posts the report to a target if its trigger condition is met.
// A response with Fired=false means the trigger suppressed the delivery.
func (c *Client) Deliver(ctx context.Context, report *output.Report, target Target) *Response {
	resp := &Response{}

	if !shouldFire(target.Trigger, report.HasSkipped()) {
		return resp
	}
	resp.Fired = true

	start := time.Now()
	defer func() { resp.Duration = time.Since(start) }()

	body, err := json.Marshal(NewPayload(report))
	if err != nil {
		resp.Err = fmt.Errorf("encoding payload: %w", err)
		return resp
	}

	timeout := target.Timeout
	if timeout <= 0 {
		timeout = config.DefaultWebhookTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		resp.Err = fmt.Errorf("building request: %w", err)
		return resp
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "daytally-webhook")
	if target.Token != "" {
		req.Header.Set("Authorization", "Bearer "+target.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		resp.Err = fmt.Errorf("posting to %s: %w", target.URL, err)
		return resp
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		resp.Err = fmt.Errorf("reading response: %w", err)
		return resp
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(raw)

	if httpResp.StatusCode >= 400 {
		resp.Err = fmt.Errorf("endpoint returned status %d", httpResp.StatusCode)
	}

	return resp
}

// shouldFire applies the trigger condition. An empty trigger behaves
// like on_skipped.
func shouldFire(trigger config.WebhookTrigger, hasSkipped bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasSkipped
	}
}
