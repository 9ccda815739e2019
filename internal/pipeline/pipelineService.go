package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
	"fdalabel-api/internal/metrics"
	"fdalabel-api/internal/openfda"
	"fdalabel-api/pkg/logger_i"
)

// Service is the public contract - the transports only ever see this, which
// keeps them decoupled from the fetch collaborator and the ranking internals.
type Service interface {
	Run(ctx context.Context, params SummarizeParams) (labelModel.ResultBundle, error)
}

type SummarizeParams struct {
	Query     string
	Drug      string
	Condition string
	TopK      int
	Limit     int
}

type service struct {
	fetcher openfda.Fetcher
	logger  *logger_i.Logger
}

// NewService constructor. The fetcher is injected so tests can swap in a
// double returning fixed documents.
func NewService(fetcher openfda.Fetcher) Service {
	return &service{
		fetcher: fetcher,
		logger:  logger_i.NewLogger("Summarize Pipeline"),
	}
}

const promptForCriteriaMessage = "Provide at least one of query, drug, or condition to search FDA drug labels."

// Run executes one full pipeline invocation: build the search expression,
// fetch, chunk every returned label, pool, rank, summarize, cite. Everything
// after the fetch is synchronous pure computation over this call's own data,
// so concurrent invocations need no locking.
func (s *service) Run(ctx context.Context, params SummarizeParams) (bundle labelModel.ResultBundle, err error) {
	start := time.Now()
	status := "success"
	defer func() { metrics.CapturePipelineMetrics(status, time.Since(start)) }()

	// an internal bug must surface as a pipeline failure, not kill the
	// transport goroutine
	defer func() {
		if r := recover(); r != nil {
			status = "panic"
			err = fmt.Errorf("summarization pipeline failed: %v", r)
		}
	}()

	inMethodLogger := s.logger
	if traceID, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		inMethodLogger = s.logger.With("traceId", traceID)
	}

	params = clampParams(params)

	bundle = labelModel.ResultBundle{
		Source:    config.SourceTagOpenFDA,
		Query:     params.Query,
		Drug:      params.Drug,
		Condition: params.Condition,
		TopChunks: []labelModel.Chunk{},
		Citations: []labelModel.Citation{},
	}

	searchExpr := BuildSearchExpression(params.Query, params.Drug, params.Condition)
	if searchExpr == "" {
		inMethodLogger.Debug("No search criteria supplied, skipping fetch")
		bundle.Summary = promptForCriteriaMessage
		return bundle, nil
	}

	result, fetchErr := s.fetcher.Fetch(ctx, searchExpr, 0, params.Limit)
	if fetchErr != nil {
		status = "error"
		return bundle, fmt.Errorf("fetching drug labels: %w", fetchErr)
	}

	summaryOpts := SummaryOptions{
		Source:    config.SourceTagOpenFDA,
		Query:     params.Query,
		Drug:      params.Drug,
		Condition: params.Condition,
		MaxLength: config.SummaryMaxLength,
	}

	if len(result.Labels) == 0 {
		inMethodLogger.Debug("Upstream returned zero labels")
		bundle.Summary = Summarize(nil, summaryOpts)
		return bundle, nil
	}

	pool := s.buildChunkPool(result.Labels, inMethodLogger)
	metrics.CaptureChunkPoolSize(len(pool))

	// rank across the whole pool, not per document - a weakly matching label
	// must not crowd out strong excerpts from another one
	scoringQuery := joinNonEmpty(params.Query, params.Drug, params.Condition)
	ranked := RankChunks(pool, scoringQuery, params.TopK, config.SafetyBoostKeywords)

	bundle.Summary = Summarize(ranked, summaryOpts)
	bundle.Citations = ExtractCitations(ranked)

	for i := range ranked {
		ranked[i].Text = truncateWithEllipsis(ranked[i].Text, config.BundleChunkPreviewCap)
	}
	bundle.TopChunks = ranked

	inMethodLogger.Debug("Pipeline complete",
		"labels", len(result.Labels), "pooledChunks", len(pool), "returnedChunks", len(ranked))
	return bundle, nil
}

func (s *service) buildChunkPool(labels []labelModel.DrugLabel, log *logger_i.Logger) []labelModel.Chunk {
	var pool []labelModel.Chunk
	for i := range labels {
		label := &labels[i]

		text := ExtractLabelText(label)
		if strings.TrimSpace(text) == "" {
			log.Debug("Skipping label with no extractable text", "label", i)
			continue
		}

		meta := labelModel.ChunkMetadata{
			DrugName:        label.DisplayName(),
			Manufacturer:    label.ManufacturerName(),
			DocType:         "drug_label",
			HasBoxedWarning: len(label.BoxedWarning) > 0,
			HasWarnings:     len(label.Warnings) > 0 || len(label.WarningsAndCautions) > 0,
		}
		pool = append(pool, ChunkText(text, config.ChunkSize, config.ChunkOverlap, chunkSourceID(label, i), meta)...)
	}
	return pool
}

func chunkSourceID(label *labelModel.DrugLabel, position int) string {
	if label.SetID != "" {
		return label.SetID
	}
	if label.ID != "" {
		return label.ID
	}
	if name := label.DisplayName(); name != "" {
		return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	}
	return fmt.Sprintf("label_%d", position)
}

func clampParams(params SummarizeParams) SummarizeParams {
	if params.TopK <= 0 {
		params.TopK = config.DefaultTopK
	}
	if params.TopK > config.MaxTopK {
		params.TopK = config.MaxTopK
	}
	if params.Limit <= 0 {
		params.Limit = config.DefaultFetchLim
	}
	if params.Limit > config.MaxFetchLim {
		params.Limit = config.MaxFetchLim
	}
	return params
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
