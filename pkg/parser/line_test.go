package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestLineParser_Parse(t *testing.T) {
	p := NewLineParser()

	entry, err := p.Parse("Jul 2   (04:17)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := DateKey{Month: "Jul", Day: 2}
	if entry.Date != want {
		t.Errorf("Date = %v, want %v", entry.Date, want)
	}
	if entry.Elapsed != (Duration{Hours: 4, Minutes: 17}) {
		t.Errorf("Elapsed = %v, want 4:17", entry.Elapsed)
	}
	if entry.Raw != "Jul 2   (04:17)" {
		t.Errorf("Raw = %q", entry.Raw)
	}
}

func TestLineParser_Parse_OverflowMarker(t *testing.T) {
	p := NewLineParser()

	// The digit before "+" flags an entry that ran past midnight. The
	// bonus is a flat 24 hours; the digit's value must never scale it.
	tests := []struct {
		line string
		want Duration
	}{
		{"Jul 2   (1+12:44)", Duration{Hours: 36, Minutes: 44}},
		{"Jul 2   (9+12:44)", Duration{Hours: 36, Minutes: 44}},
		{"Jul 2   (1+23:50)", Duration{Hours: 47, Minutes: 50}},
	}

	for _, tt := range tests {
		entry, err := p.Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.line, err)
		}
		if entry.Elapsed != tt.want {
			t.Errorf("Parse(%q).Elapsed = %v, want %v", tt.line, entry.Elapsed, tt.want)
		}
	}
}

func TestLineParser_Parse_WhitespaceTolerance(t *testing.T) {
	p := NewLineParser()

	lines := []string{
		"Jul 2 (04:17)",
		"  Jul   2   (04:17)  ",
		"\tJul\t2\t(04:17)",
	}

	for _, line := range lines {
		entry, err := p.Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", line, err)
		}
		if entry.Date != (DateKey{Month: "Jul", Day: 2}) {
			t.Errorf("Parse(%q).Date = %v", line, entry.Date)
		}
	}
}

func TestLineParser_Parse_NoCalendarValidation(t *testing.T) {
	p := NewLineParser()

	// Day values are captured as-is; "Jul 99" is a valid key.
	entry, err := p.Parse("Jul 99 (1:00)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if entry.Date != (DateKey{Month: "Jul", Day: 99}) {
		t.Errorf("Date = %v, want Jul 99", entry.Date)
	}
}

func TestLineParser_Parse_NormalizesMinutes(t *testing.T) {
	p := NewLineParser()

	entry, err := p.Parse("Jul 2 (0:90)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if entry.Elapsed != (Duration{Hours: 1, Minutes: 30}) {
		t.Errorf("Elapsed = %v, want 1:30", entry.Elapsed)
	}
}

func TestLineParser_Parse_Malformed(t *testing.T) {
	p := NewLineParser()

	lines := []string{
		"not a valid line",
		"",
		"Jul 2",
		"Jul 2 04:17",
		"Jul 2 (04:17",
		"Jul 2 (04:17) trailing junk",
		"Jul 2 (12+04:17)", // overflow marker is a single digit
		"2 Jul (04:17)",
		"Jul two (04:17)",
	}

	for _, line := range lines {
		_, err := p.Parse(line)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want MalformedLineError", line)
			continue
		}

		var mlErr *MalformedLineError
		if !errors.As(err, &mlErr) {
			t.Errorf("Parse(%q) error = %T, want *MalformedLineError", line, err)
		}
	}
}

func TestMalformedLineError_Message(t *testing.T) {
	err := &MalformedLineError{Line: "garbage", Source: "week.txt", LineNum: 7}

	msg := err.Error()
	for _, want := range []string{"week.txt", "7", "garbage"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestLineParser_Matches(t *testing.T) {
	p := NewLineParser()

	if !p.Matches("Jul 2 (04:17)") {
		t.Error("Matches() = false for valid line")
	}
	if p.Matches("not a valid line") {
		t.Error("Matches() = true for invalid line")
	}
}
