package adapter

import (
	"sort"
	"strings"

	"fdalabel-api/internal/api"
	"fdalabel-api/internal/domain/labelModel"
)

const indicationsPreviewCap = 240

// sectionAccessors maps the wire section names callers may request onto the
// label fields. Keep the keys in sync with what openFDA itself names them.
var sectionAccessors = map[string]func(l *labelModel.DrugLabel) []string{
	"boxed_warning":             func(l *labelModel.DrugLabel) []string { return l.BoxedWarning },
	"warnings":                  func(l *labelModel.DrugLabel) []string { return l.Warnings },
	"warnings_and_cautions":     func(l *labelModel.DrugLabel) []string { return l.WarningsAndCautions },
	"contraindications":         func(l *labelModel.DrugLabel) []string { return l.Contraindications },
	"adverse_reactions":         func(l *labelModel.DrugLabel) []string { return l.AdverseReactions },
	"drug_interactions":         func(l *labelModel.DrugLabel) []string { return l.DrugInteractions },
	"indications_and_usage":     func(l *labelModel.DrugLabel) []string { return l.IndicationsAndUsage },
	"precautions":               func(l *labelModel.DrugLabel) []string { return l.Precautions },
	"dosage_and_administration": func(l *labelModel.DrugLabel) []string { return l.DosageAndAdministration },
	"description":               func(l *labelModel.DrugLabel) []string { return l.Description },
}

// SectionNames lists every requestable section name.
func SectionNames() []string {
	names := make([]string, 0, len(sectionAccessors))
	for name := range sectionAccessors {
		names = append(names, name)
	}
	return names
}

func ToLabelRecord(label *labelModel.DrugLabel) api.LabelRecord {
	record := api.LabelRecord{
		SetID:           label.SetID,
		Manufacturer:    label.ManufacturerName(),
		Route:           label.OpenFDA.Route,
		HasBoxedWarning: len(label.BoxedWarning) > 0,
	}
	if len(label.OpenFDA.BrandName) > 0 {
		record.BrandName = label.OpenFDA.BrandName[0]
	}
	if len(label.OpenFDA.GenericName) > 0 {
		record.GenericName = label.OpenFDA.GenericName[0]
	}

	for name, value := range sectionAccessors {
		if len(value(label)) > 0 {
			record.AvailableSections = append(record.AvailableSections, name)
		}
	}
	sort.Strings(record.AvailableSections)

	if len(label.IndicationsAndUsage) > 0 {
		preview := label.IndicationsAndUsage[0]
		if len(preview) > indicationsPreviewCap {
			preview = preview[:indicationsPreviewCap-3] + "..."
		}
		record.IndicationsPreview = preview
	}
	return record
}

func ToSearchResponse(result labelModel.SearchResult) api.SearchLabelsResponse {
	response := api.SearchLabelsResponse{
		Total:   result.TotalCount,
		Results: make([]api.LabelRecord, 0, len(result.Labels)),
	}
	for i := range result.Labels {
		response.Results = append(response.Results, ToLabelRecord(&result.Labels[i]))
	}
	return response
}

// ToSectionsResponse selects the requested sections from a label; an empty
// request means every populated section.
func ToSectionsResponse(label *labelModel.DrugLabel, requested []string) api.LabelSectionsResponse {
	response := api.LabelSectionsResponse{
		Drug:     label.DisplayName(),
		SetID:    label.SetID,
		Sections: make(map[string][]string),
	}

	if len(requested) == 0 {
		requested = SectionNames()
	}
	for _, name := range requested {
		accessor, known := sectionAccessors[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			continue
		}
		if value := accessor(label); len(value) > 0 {
			response.Sections[strings.ToLower(strings.TrimSpace(name))] = value
		}
	}
	return response
}
