package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
	"fdalabel-api/internal/pipeline"
)

func runCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestRun_NoCriteriaSkipsFetch(t *testing.T) {
	fetcher := &MockFetcher{}
	s := pipeline.NewService(fetcher)

	bundle, err := s.Run(runCtx(), pipeline.SummarizeParams{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if fetcher.CallCount != 0 {
		t.Errorf("fetcher was called %d times, want 0", fetcher.CallCount)
	}
	if !strings.Contains(bundle.Summary, "Provide at least one") {
		t.Errorf("expected a prompt-for-input summary, got %q", bundle.Summary)
	}
	if len(bundle.TopChunks) != 0 || len(bundle.Citations) != 0 {
		t.Error("no-criteria bundle should carry no chunks or citations")
	}
}

func TestRun_ZeroDocumentsYieldsNoMatchBundle(t *testing.T) {
	fetcher := &MockFetcher{
		OnFetch: func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
			return labelModel.SearchResult{}, nil
		},
	}
	s := pipeline.NewService(fetcher)

	bundle, err := s.Run(runCtx(), pipeline.SummarizeParams{Drug: "aspirin"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if fetcher.CallCount != 1 {
		t.Errorf("fetcher was called %d times, want 1", fetcher.CallCount)
	}
	if !strings.Contains(bundle.Summary, "No relevant information") || !strings.Contains(bundle.Summary, "aspirin") {
		t.Errorf("expected a no-match summary echoing the drug, got %q", bundle.Summary)
	}
	if len(bundle.TopChunks) != 0 || len(bundle.Citations) != 0 {
		t.Error("no-match bundle should carry no chunks or citations")
	}
}

func TestRun_FetchFailurePropagates(t *testing.T) {
	fetcher := &MockFetcher{
		OnFetch: func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
			return labelModel.SearchResult{}, errors.New("upstream down")
		},
	}
	s := pipeline.NewService(fetcher)

	_, err := s.Run(runCtx(), pipeline.SummarizeParams{Drug: "aspirin"})
	if err == nil {
		t.Fatal("expected a pipeline failure when the fetch fails")
	}
	if !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("error should wrap the fetch failure, got %v", err)
	}
}

func TestRun_FullFlow(t *testing.T) {
	fetcher := &MockFetcher{
		OnFetch: func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
			return labelModel.SearchResult{
				Labels:     []labelModel.DrugLabel{aspirinLabel(), unrelatedLabel()},
				TotalCount: 2,
			}, nil
		},
	}
	s := pipeline.NewService(fetcher)

	bundle, err := s.Run(runCtx(), pipeline.SummarizeParams{Drug: "aspirin", Query: "bleeding warning", TopK: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(fetcher.LastSearch, "aspirin") {
		t.Errorf("search expression should target the drug, got %q", fetcher.LastSearch)
	}
	if fetcher.LastLimit != config.DefaultFetchLim {
		t.Errorf("fetch limit got %d, want default %d", fetcher.LastLimit, config.DefaultFetchLim)
	}

	if len(bundle.TopChunks) == 0 {
		t.Fatal("expected ranked chunks in the bundle")
	}
	if bundle.TopChunks[0].Source != "set-aspirin" {
		t.Errorf("top chunk came from %s, want the aspirin label", bundle.TopChunks[0].Source)
	}
	for _, chunk := range bundle.TopChunks {
		if len(chunk.Text) > config.BundleChunkPreviewCap {
			t.Errorf("surfaced chunk text is %d chars, cap is %d", len(chunk.Text), config.BundleChunkPreviewCap)
		}
	}

	if len(bundle.Summary) == 0 || len(bundle.Summary) > config.SummaryMaxLength {
		t.Errorf("summary length %d outside (0, %d]", len(bundle.Summary), config.SummaryMaxLength)
	}

	foundTrial := false
	for _, citation := range bundle.Citations {
		if citation.ID == "NCT01234567" && citation.Type == "clinical_trial" {
			foundTrial = true
		}
	}
	if !foundTrial {
		t.Errorf("expected the trial id citation, got %+v", bundle.Citations)
	}

	if bundle.Source != config.SourceTagOpenFDA || bundle.Drug != "aspirin" {
		t.Errorf("bundle context fields wrong: %+v", bundle)
	}
}

func TestRun_SkipsLabelsWithNoText(t *testing.T) {
	fetcher := &MockFetcher{
		OnFetch: func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
			return labelModel.SearchResult{
				Labels:     []labelModel.DrugLabel{emptyLabel(), aspirinLabel()},
				TotalCount: 2,
			}, nil
		},
	}
	s := pipeline.NewService(fetcher)

	bundle, err := s.Run(runCtx(), pipeline.SummarizeParams{Drug: "aspirin"})
	if err != nil {
		t.Fatalf("a label with no text must be skipped, not fail the batch: %v", err)
	}
	for _, chunk := range bundle.TopChunks {
		if chunk.Source == "set-empty" {
			t.Error("chunks were produced for a label with no extractable text")
		}
	}
	if len(bundle.TopChunks) == 0 {
		t.Error("the non-empty label should still produce chunks")
	}
}

func TestRun_TopKClamped(t *testing.T) {
	fetcher := &MockFetcher{
		OnFetch: func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
			return labelModel.SearchResult{Labels: []labelModel.DrugLabel{aspirinLabel()}, TotalCount: 1}, nil
		},
	}
	s := pipeline.NewService(fetcher)

	bundle, err := s.Run(runCtx(), pipeline.SummarizeParams{Drug: "aspirin", TopK: 5000, Limit: 100000})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(bundle.TopChunks) > config.MaxTopK {
		t.Errorf("bundle carries %d chunks, cap is %d", len(bundle.TopChunks), config.MaxTopK)
	}
	if fetcher.LastLimit > config.MaxFetchLim {
		t.Errorf("fetch limit %d exceeds cap %d", fetcher.LastLimit, config.MaxFetchLim)
	}
}
