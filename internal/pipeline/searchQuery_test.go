package pipeline

import (
	"strings"
	"testing"

	"fdalabel-api/internal/domain/labelModel"
)

func TestBuildSearchExpression(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		drug      string
		condition string
		contains  []string
		empty     bool
	}{
		{
			name:     "drug expands name aliases",
			drug:     "aspirin",
			contains: []string{`openfda.brand_name:"aspirin"`, `openfda.generic_name:"aspirin"`, `openfda.substance_name:"aspirin"`, " OR "},
		},
		{
			name:      "condition targets indications",
			condition: "migraine",
			contains:  []string{`indications_and_usage:"migraine"`},
		},
		{
			name:     "query conjoins nontrivial words",
			query:    "risk of severe bleeding",
			contains: []string{"risk AND severe AND bleeding"},
		},
		{
			name:      "combined criteria joined with AND",
			drug:      "aspirin",
			condition: "migraine",
			contains:  []string{`) AND indications_and_usage:"migraine"`},
		},
		{
			name:  "nothing supplied",
			empty: true,
		},
		{
			name:  "only trivial words",
			query: "an of to",
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := BuildSearchExpression(tt.query, tt.drug, tt.condition)
			if tt.empty {
				if expr != "" {
					t.Errorf("expected empty expression, got %q", expr)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(expr, want) {
					t.Errorf("expression %q missing %q", expr, want)
				}
			}
		})
	}
}

func TestExtractLabelText(t *testing.T) {
	label := labelModel.DrugLabel{
		BoxedWarning:        []string{"Serious risk."},
		IndicationsAndUsage: []string{"For pain relief.", "Adults only."},
	}

	text := ExtractLabelText(&label)

	if !strings.Contains(text, "BOXED WARNING:\nSerious risk.") {
		t.Errorf("missing boxed warning section:\n%s", text)
	}
	if !strings.Contains(text, "INDICATIONS AND USAGE:\nFor pain relief.\nAdults only.") {
		t.Errorf("missing indications section:\n%s", text)
	}
	if strings.Index(text, "BOXED WARNING") > strings.Index(text, "INDICATIONS") {
		t.Error("safety sections should lead the blob")
	}

	empty := labelModel.DrugLabel{}
	if got := ExtractLabelText(&empty); got != "" {
		t.Errorf("label with no sections should extract to empty, got %q", got)
	}
}
