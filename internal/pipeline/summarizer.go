package pipeline

import (
	"fmt"
	"strings"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
)

type SummaryOptions struct {
	Source    string
	Query     string
	Drug      string
	Condition string
	MaxLength int
}

type formatterFunc func(chunks []labelModel.Chunk, opts SummaryOptions) string

// Formatter registry keyed by source tag. Wiring the orchestrator to a new
// document source means registering a formatter here, not editing a dispatcher.
var formatters = map[string]formatterFunc{
	config.SourceTagOpenFDA: formatLabelSummary,
	config.SourceTagTrials:  formatTrialsSummary,
}

// Summarize assembles a bounded, human-readable report from the selected
// chunks. The returned string is never longer than opts.MaxLength.
func Summarize(chunks []labelModel.Chunk, opts SummaryOptions) string {
	if opts.MaxLength <= 0 {
		opts.MaxLength = config.SummaryMaxLength
	}

	if len(chunks) == 0 {
		return truncateWithEllipsis(nothingFoundMessage(opts), opts.MaxLength)
	}

	formatter, found := formatters[opts.Source]
	if !found {
		formatter = formatGenericSummary
	}
	return truncateWithEllipsis(formatter(chunks, opts), opts.MaxLength)
}

func nothingFoundMessage(opts SummaryOptions) string {
	var criteria []string
	if opts.Drug != "" {
		criteria = append(criteria, fmt.Sprintf("drug %q", opts.Drug))
	}
	if opts.Condition != "" {
		criteria = append(criteria, fmt.Sprintf("condition %q", opts.Condition))
	}
	if opts.Query != "" {
		criteria = append(criteria, fmt.Sprintf("query %q", opts.Query))
	}
	if len(criteria) == 0 {
		return "No relevant information was found."
	}
	return fmt.Sprintf("No relevant information was found for %s.", strings.Join(criteria, ", "))
}

func formatLabelSummary(chunks []labelModel.Chunk, opts SummaryOptions) string {
	var b strings.Builder
	writeHeader(&b, "FDA drug label summary", opts)

	warningMentions := 0
	boxedMentions := 0
	trialReferences := 0
	placeboMentioned := false

	for _, chunk := range chunks {
		lowered := strings.ToLower(chunk.Text)
		if strings.Contains(lowered, "warning") || strings.Contains(lowered, "advertencia") {
			warningMentions++
		}
		if strings.Contains(lowered, "boxed") || chunk.Metadata.HasBoxedWarning {
			boxedMentions++
		}
		if identifierPatterns[0].pattern.MatchString(chunk.Text) {
			trialReferences++
		}
		if strings.Contains(lowered, "placebo") || strings.Contains(lowered, "controlled stud") {
			placeboMentioned = true
		}
	}

	fmt.Fprintf(&b, "Reviewed %d relevant label excerpt(s).\n", len(chunks))
	fmt.Fprintf(&b, "- Excerpts mentioning warnings: %d\n", warningMentions)
	fmt.Fprintf(&b, "- Excerpts referencing a boxed warning: %d\n", boxedMentions)
	if trialReferences > 0 {
		fmt.Fprintf(&b, "- Excerpts citing registered clinical trials: %d\n", trialReferences)
	}
	if placeboMentioned {
		b.WriteString("- Placebo or controlled-study comparisons are referenced.\n")
	}

	writePreviews(&b, chunks)
	return b.String()
}

func formatTrialsSummary(chunks []labelModel.Chunk, opts SummaryOptions) string {
	var b strings.Builder
	writeHeader(&b, "Clinical trial summary", opts)

	trialIDs := make(map[string]bool)
	placeboMentioned := false
	for _, chunk := range chunks {
		for _, id := range identifierPatterns[0].pattern.FindAllString(chunk.Text, -1) {
			trialIDs[id] = true
		}
		if strings.Contains(strings.ToLower(chunk.Text), "placebo") {
			placeboMentioned = true
		}
	}

	fmt.Fprintf(&b, "Reviewed %d relevant excerpt(s) referencing %d distinct registered trial(s).\n",
		len(chunks), len(trialIDs))
	if placeboMentioned {
		b.WriteString("- Placebo comparisons are referenced.\n")
	}

	writePreviews(&b, chunks)
	return b.String()
}

// formatGenericSummary handles source tags with no dedicated formatter: just
// the header and supporting excerpts, no source-specific counts.
func formatGenericSummary(chunks []labelModel.Chunk, opts SummaryOptions) string {
	var b strings.Builder
	writeHeader(&b, "Document summary", opts)
	fmt.Fprintf(&b, "Reviewed %d relevant excerpt(s).\n", len(chunks))
	writePreviews(&b, chunks)
	return b.String()
}

func writeHeader(b *strings.Builder, title string, opts SummaryOptions) {
	b.WriteString(title)
	if opts.Drug != "" {
		fmt.Fprintf(b, " | drug: %s", opts.Drug)
	}
	if opts.Condition != "" {
		fmt.Fprintf(b, " | condition: %s", opts.Condition)
	}
	if opts.Query != "" {
		fmt.Fprintf(b, " | query: %s", opts.Query)
	}
	b.WriteString("\n\n")
}

func writePreviews(b *strings.Builder, chunks []labelModel.Chunk) {
	b.WriteString("\nSupporting excerpts:\n")
	previewCount := config.SummaryPreviewChunks
	if previewCount > len(chunks) {
		previewCount = len(chunks)
	}
	for i := 0; i < previewCount; i++ {
		chunk := chunks[i]
		name := chunk.Metadata.DrugName
		if name == "" {
			name = chunk.Source
		}
		fmt.Fprintf(b, "%d. [%s] %s\n", i+1, name,
			truncateWithEllipsis(strings.TrimSpace(chunk.Text), config.SummaryPreviewChars))
	}
}

func truncateWithEllipsis(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
