package pipeline

import (
	"fmt"
	"strings"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
)

// BuildSearchExpression turns whichever criteria are present into one openFDA
// search expression. Returns "" when no criteria are supplied.
func BuildSearchExpression(query string, drug string, condition string) string {
	var clauses []string

	if drug = strings.TrimSpace(drug); drug != "" {
		// a product can match on any of its name aliases
		clauses = append(clauses, fmt.Sprintf(
			`(openfda.brand_name:%q OR openfda.generic_name:%q OR openfda.substance_name:%q)`,
			drug, drug, drug))
	}

	if condition = strings.TrimSpace(condition); condition != "" {
		clauses = append(clauses, fmt.Sprintf(`indications_and_usage:%q`, condition))
	}

	if query = strings.TrimSpace(query); query != "" {
		var words []string
		for _, word := range strings.Fields(query) {
			if len(word) > config.MinKeywordLength {
				words = append(words, word)
			}
		}
		if len(words) > 0 {
			clauses = append(clauses, strings.Join(words, " AND "))
		}
	}

	return strings.Join(clauses, " AND ")
}

type labelSection struct {
	title string
	value func(l *labelModel.DrugLabel) []string
}

// Known sections in the order they should appear in the extracted blob. The
// safety sections lead so truncated documents still keep them.
var labelSections = []labelSection{
	{"BOXED WARNING", func(l *labelModel.DrugLabel) []string { return l.BoxedWarning }},
	{"WARNINGS", func(l *labelModel.DrugLabel) []string { return l.Warnings }},
	{"WARNINGS AND PRECAUTIONS", func(l *labelModel.DrugLabel) []string { return l.WarningsAndCautions }},
	{"CONTRAINDICATIONS", func(l *labelModel.DrugLabel) []string { return l.Contraindications }},
	{"ADVERSE REACTIONS", func(l *labelModel.DrugLabel) []string { return l.AdverseReactions }},
	{"DRUG INTERACTIONS", func(l *labelModel.DrugLabel) []string { return l.DrugInteractions }},
	{"INDICATIONS AND USAGE", func(l *labelModel.DrugLabel) []string { return l.IndicationsAndUsage }},
	{"PRECAUTIONS", func(l *labelModel.DrugLabel) []string { return l.Precautions }},
	{"DOSAGE AND ADMINISTRATION", func(l *labelModel.DrugLabel) []string { return l.DosageAndAdministration }},
	{"DESCRIPTION", func(l *labelModel.DrugLabel) []string { return l.Description }},
}

// ExtractLabelText concatenates a label's known sections into one text blob.
// A label with no populated sections yields "".
func ExtractLabelText(label *labelModel.DrugLabel) string {
	var b strings.Builder
	for _, section := range labelSections {
		paragraphs := section.value(label)
		if len(paragraphs) == 0 {
			continue
		}
		b.WriteString(section.title)
		b.WriteString(":\n")
		b.WriteString(strings.Join(paragraphs, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}
