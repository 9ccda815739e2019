package pipeline

import (
	"regexp"

	"fdalabel-api/internal/domain/labelModel"
)

type identifierPattern struct {
	pattern *regexp.Regexp
	idType  string
}

// Structured identifier formats that show up in label text. Order matters:
// trial ids are the strongest citation, package codes the weakest.
var identifierPatterns = []identifierPattern{
	{regexp.MustCompile(`NCT\d{8}`), "clinical_trial"},
	{regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`), "spl_set_id"},
	{regexp.MustCompile(`\b\d{4,5}-\d{3,4}-\d{1,2}\b`), "ndc"},
}

// ExtractCitations scans the chunks in order for structured identifiers. A
// chunk with no structured match falls back to citing its source document.
// Ids are deduplicated across the whole set, first occurrence wins.
func ExtractCitations(chunks []labelModel.Chunk) []labelModel.Citation {
	citations := []labelModel.Citation{}
	seen := make(map[string]bool)

	for _, chunk := range chunks {
		matchedAny := false

		for _, ip := range identifierPatterns {
			for _, match := range ip.pattern.FindAllString(chunk.Text, -1) {
				matchedAny = true
				if seen[match] {
					continue
				}
				seen[match] = true
				citations = append(citations, labelModel.Citation{
					ID:   match,
					Type: ip.idType,
				})
			}
		}

		if matchedAny {
			continue
		}

		if seen[chunk.Source] {
			continue
		}
		seen[chunk.Source] = true

		docType := chunk.Metadata.DocType
		if docType == "" {
			docType = "document"
		}
		citations = append(citations, labelModel.Citation{
			ID:    chunk.Source,
			Title: chunk.Metadata.DrugName,
			Type:  docType,
		})
	}

	return citations
}
