package pipeline

import (
	"testing"

	"fdalabel-api/internal/domain/labelModel"
)

func TestExtractCitations_StructuredIdentifiers(t *testing.T) {
	chunks := []labelModel.Chunk{
		{ID: "c1", Source: "set-1", Text: "Efficacy was shown in trial NCT01234567 and NCT07654321."},
		{ID: "c2", Source: "set-2", Text: "Supplied as NDC 0591-0405-01 bottles."},
	}

	citations := ExtractCitations(chunks)

	if len(citations) != 3 {
		t.Fatalf("got %d citations, want 3: %+v", len(citations), citations)
	}
	if citations[0].ID != "NCT01234567" || citations[0].Type != "clinical_trial" {
		t.Errorf("first citation got %+v", citations[0])
	}
	if citations[2].ID != "0591-0405-01" || citations[2].Type != "ndc" {
		t.Errorf("ndc citation got %+v", citations[2])
	}
}

func TestExtractCitations_DedupAcrossChunks(t *testing.T) {
	chunks := []labelModel.Chunk{
		{ID: "c1", Source: "set-1", Text: "See NCT01234567."},
		{ID: "c2", Source: "set-1", Text: "As reported in NCT01234567 again."},
	}

	citations := ExtractCitations(chunks)

	seen := make(map[string]bool)
	for _, citation := range citations {
		if seen[citation.ID] {
			t.Errorf("duplicate citation id %s", citation.ID)
		}
		seen[citation.ID] = true
	}
	if len(citations) != 1 {
		t.Errorf("got %d citations, want 1", len(citations))
	}
}

func TestExtractCitations_SourceFallback(t *testing.T) {
	chunks := []labelModel.Chunk{
		{
			ID:     "c1",
			Source: "set-99",
			Text:   "No structured identifiers in this text.",
			Metadata: labelModel.ChunkMetadata{
				DrugName: "Aspirin",
				DocType:  "drug_label",
			},
		},
		{ID: "c2", Source: "set-99", Text: "Still nothing structured."},
	}

	citations := ExtractCitations(chunks)

	if len(citations) != 1 {
		t.Fatalf("got %d citations, want 1 (deduped fallback)", len(citations))
	}
	got := citations[0]
	if got.ID != "set-99" || got.Type != "drug_label" || got.Title != "Aspirin" {
		t.Errorf("fallback citation got %+v", got)
	}
}

func TestExtractCitations_UntypedFallback(t *testing.T) {
	chunks := []labelModel.Chunk{{ID: "c1", Source: "doc-x", Text: "plain text"}}

	citations := ExtractCitations(chunks)

	if len(citations) != 1 || citations[0].Type != "document" {
		t.Errorf("untyped fallback got %+v", citations)
	}
}

func TestExtractCitations_Empty(t *testing.T) {
	if citations := ExtractCitations(nil); len(citations) != 0 {
		t.Errorf("no chunks should yield no citations, got %d", len(citations))
	}
}
