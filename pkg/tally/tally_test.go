package tally

import (
	"testing"

	"github.com/dhowland/daytally/pkg/parser"
)

func entry(month string, day, hours, minutes int) *parser.Entry {
	return &parser.Entry{
		Date:    parser.DateKey{Month: month, Day: day},
		Elapsed: parser.Duration{Hours: hours, Minutes: minutes},
	}
}

func TestDayTally_Add_Accumulates(t *testing.T) {
	tally := NewDayTally()

	tally.Add(entry("Jul", 2, 22, 50))
	tally.Add(entry("Jul", 2, 22, 50))

	totals := tally.Totals()
	if len(totals) != 1 {
		t.Fatalf("Got %d days, want 1", len(totals))
	}

	// 50+50 minutes carries one hour: 22+22+1 = 45h, 40m.
	want := parser.Duration{Hours: 45, Minutes: 40}
	if totals[0].Total != want {
		t.Errorf("Total = %v, want %v", totals[0].Total, want)
	}
}

func TestDayTally_Add_OverflowEntry(t *testing.T) {
	p := parser.NewLineParser()

	parsed, err := p.Parse("Jul 2 (1+23:50)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tally := NewDayTally()
	tally.Add(parsed)

	totals := tally.Totals()
	want := parser.Duration{Hours: 47, Minutes: 50}
	if totals[0].Total != want {
		t.Errorf("Total = %v, want %v", totals[0].Total, want)
	}
}

func TestDayTally_KeyIdentity(t *testing.T) {
	tally := NewDayTally()

	// Identical (month, day) pairs share one slot regardless of how
	// the entries were built.
	tally.Add(entry("Jul", 2, 1, 0))
	tally.Add(&parser.Entry{
		Date:    parser.DateKey{Month: "Jul", Day: 2},
		Elapsed: parser.Duration{Hours: 2, Minutes: 0},
		Raw:     "Jul 2 (02:00)",
		Source:  "week.txt",
		LineNum: 9,
	})

	if tally.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tally.Len())
	}
	if got := tally.Totals()[0].Total; got != (parser.Duration{Hours: 3, Minutes: 0}) {
		t.Errorf("Total = %v, want 3:0", got)
	}
}

func TestDayTally_InsertionOrder(t *testing.T) {
	tally := NewDayTally()

	tally.Add(entry("Jul", 9, 1, 0))
	tally.Add(entry("Jul", 2, 1, 0))
	tally.Add(entry("Aug", 1, 1, 0))
	tally.Add(entry("Jul", 9, 1, 0))

	totals := tally.Totals()
	wantOrder := []parser.DateKey{
		{Month: "Jul", Day: 9},
		{Month: "Jul", Day: 2},
		{Month: "Aug", Day: 1},
	}

	if len(totals) != len(wantOrder) {
		t.Fatalf("Got %d days, want %d", len(totals), len(wantOrder))
	}
	for i, want := range wantOrder {
		if totals[i].Date != want {
			t.Errorf("Totals()[%d].Date = %v, want %v", i, totals[i].Date, want)
		}
	}
}

func TestDayTally_Totals_Idempotent(t *testing.T) {
	tally := NewDayTally()
	tally.Add(entry("Jul", 2, 4, 17))
	tally.Add(entry("Jul", 3, 2, 0))

	first := tally.Totals()
	second := tally.Totals()

	if len(first) != len(second) {
		t.Fatalf("snapshot lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("snapshot[%d] differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestDayTally_Empty(t *testing.T) {
	tally := NewDayTally()

	if tally.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tally.Len())
	}
	if totals := tally.Totals(); len(totals) != 0 {
		t.Errorf("Totals() = %v, want empty", totals)
	}
}
