package inspect

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSheet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "week.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspector_InspectFile(t *testing.T) {
	path := writeSheet(t, `Jul 2 (04:17)
Jul 2 (1+12:44)
garbage line
Jul 3 (08:00)
`)

	result, err := New().InspectFile(context.Background(), path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}

	if result.SampledLines != 4 {
		t.Errorf("SampledLines = %d, want 4", result.SampledLines)
	}
	if result.MatchedLines != 3 {
		t.Errorf("MatchedLines = %d, want 3", result.MatchedLines)
	}
	if got := result.MatchRate(); got != 0.75 {
		t.Errorf("MatchRate() = %v, want 0.75", got)
	}

	if len(result.Malformed) != 1 {
		t.Fatalf("Malformed = %v, want one sample", result.Malformed)
	}
	if result.Malformed[0].LineNum != 3 || result.Malformed[0].Line != "garbage line" {
		t.Errorf("Malformed[0] = %+v", result.Malformed[0])
	}

	if result.SampleEntry == nil {
		t.Fatal("SampleEntry = nil, want first parsed entry")
	}
	if result.SampleEntry.Date.Month != "Jul" || result.SampleEntry.Date.Day != 2 {
		t.Errorf("SampleEntry.Date = %v", result.SampleEntry.Date)
	}
}

func TestInspector_SampleSize(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("Jul 2 (01:00)\n")
	}
	path := writeSheet(t, sb.String())

	result, err := New(WithSampleSize(10)).InspectFile(context.Background(), path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10", result.SampledLines)
	}
}

func TestInspector_SkipsBlankLines(t *testing.T) {
	path := writeSheet(t, "Jul 2 (01:00)\n\n\nJul 3 (02:00)\n")

	result, err := New().InspectFile(context.Background(), path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if result.SampledLines != 2 || result.MatchedLines != 2 {
		t.Errorf("sampled/matched = %d/%d, want 2/2", result.SampledLines, result.MatchedLines)
	}
}

func TestInspector_MalformedPreviewCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("garbage\n")
	}
	path := writeSheet(t, sb.String())

	result, err := New().InspectFile(context.Background(), path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if len(result.Malformed) != maxMalformedPreviews {
		t.Errorf("Malformed previews = %d, want %d", len(result.Malformed), maxMalformedPreviews)
	}
	if result.MatchRate() != 0 {
		t.Errorf("MatchRate() = %v, want 0", result.MatchRate())
	}
}

func TestInspector_MissingFile(t *testing.T) {
	if _, err := New().InspectFile(context.Background(), "/no/such/file.txt"); err == nil {
		t.Error("InspectFile() succeeded for missing file")
	}
}

func TestStarterConfig(t *testing.T) {
	snippet := StarterConfig("week.txt")

	for _, want := range []string{"timesheets:", "week.txt", "on_malformed"} {
		if !strings.Contains(snippet, want) {
			t.Errorf("StarterConfig() missing %q:\n%s", want, snippet)
		}
	}
}
