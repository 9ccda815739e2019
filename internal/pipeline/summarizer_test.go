package pipeline

import (
	"strings"
	"testing"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
)

func TestSummarize_LengthBound(t *testing.T) {
	var chunks []labelModel.Chunk
	for i := 0; i < 10; i++ {
		chunks = append(chunks, labelModel.Chunk{
			ID:     "c",
			Source: "set-1",
			Text:   strings.Repeat("warning boxed placebo text ", 50),
		})
	}

	for _, maxLength := range []int{50, 120, 1500} {
		summary := Summarize(chunks, SummaryOptions{
			Source:    config.SourceTagOpenFDA,
			Drug:      "aspirin",
			MaxLength: maxLength,
		})
		if len(summary) > maxLength {
			t.Errorf("maxLength=%d: summary is %d chars", maxLength, len(summary))
		}
	}
}

func TestSummarize_EmptyChunksEchoCriteria(t *testing.T) {
	summary := Summarize(nil, SummaryOptions{
		Source:    config.SourceTagOpenFDA,
		Drug:      "aspirin",
		Condition: "headache",
		MaxLength: 500,
	})

	if !strings.Contains(summary, "aspirin") || !strings.Contains(summary, "headache") {
		t.Errorf("empty-result message should echo criteria, got %q", summary)
	}
}

func TestSummarize_LabelFormatterCounts(t *testing.T) {
	chunks := []labelModel.Chunk{
		{ID: "c1", Source: "s", Text: "Boxed warning: serious risk. Trial NCT01234567 was placebo controlled."},
		{ID: "c2", Source: "s", Text: "Take with food."},
	}

	summary := Summarize(chunks, SummaryOptions{Source: config.SourceTagOpenFDA, Query: "risk", MaxLength: 1500})

	for _, want := range []string{"FDA drug label summary", "warnings: 1", "boxed warning: 1", "clinical trials: 1", "Placebo"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	if !strings.Contains(summary, "Supporting excerpts") {
		t.Error("summary should carry excerpt previews")
	}
}

func TestSummarize_TrialsFormatter(t *testing.T) {
	chunks := []labelModel.Chunk{
		{ID: "c1", Source: "s", Text: "NCT01234567 and NCT07654321 enrolled adults."},
	}

	summary := Summarize(chunks, SummaryOptions{Source: config.SourceTagTrials, MaxLength: 1500})

	if !strings.Contains(summary, "Clinical trial summary") || !strings.Contains(summary, "2 distinct") {
		t.Errorf("trials formatter output unexpected:\n%s", summary)
	}
}

func TestSummarize_UnknownSourceFallsBack(t *testing.T) {
	chunks := []labelModel.Chunk{{ID: "c1", Source: "s", Text: "some text"}}

	summary := Summarize(chunks, SummaryOptions{Source: "someday_source", MaxLength: 1500})

	if !strings.Contains(summary, "Document summary") {
		t.Errorf("unknown source should use the generic formatter, got:\n%s", summary)
	}
}

func TestSummarize_TruncationMarker(t *testing.T) {
	chunks := []labelModel.Chunk{{ID: "c1", Source: "s", Text: strings.Repeat("long warning text ", 100)}}

	summary := Summarize(chunks, SummaryOptions{Source: config.SourceTagOpenFDA, MaxLength: 100})

	if len(summary) != 100 || !strings.HasSuffix(summary, "...") {
		t.Errorf("truncated summary should end in ellipsis at the cap, got %d chars", len(summary))
	}
}
