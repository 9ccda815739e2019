package api

// requests---------------------

type SummarizeRequest struct {
	Query     string   `json:"query,omitempty" example:"bleeding risk"`
	Drug      string   `json:"drug,omitempty" example:"aspirin"`
	Condition string   `json:"condition,omitempty" example:"migraine"`
	TopK      int      `json:"top_k,omitempty" example:"5"`
	Filters   *Filters `json:"filters,omitempty"`
}

type Filters struct {
	Limit int `json:"limit,omitempty" example:"10"`
}

// responses--------------------

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
	TraceID string `json:"trace_id,omitempty"`
}

// LabelRecord is the compact reshape of one drug label for search results.
type LabelRecord struct {
	SetID              string   `json:"set_id,omitempty"`
	BrandName          string   `json:"brand_name,omitempty"`
	GenericName        string   `json:"generic_name,omitempty"`
	Manufacturer       string   `json:"manufacturer,omitempty"`
	Route              []string `json:"route,omitempty"`
	HasBoxedWarning    bool     `json:"has_boxed_warning"`
	AvailableSections  []string `json:"available_sections,omitempty"`
	IndicationsPreview string   `json:"indications_preview,omitempty"`
}

type SearchLabelsResponse struct {
	Total   int           `json:"total"`
	Results []LabelRecord `json:"results"`
}

type LabelSectionsResponse struct {
	Drug     string              `json:"drug"`
	SetID    string              `json:"set_id,omitempty"`
	Sections map[string][]string `json:"sections"`
}
