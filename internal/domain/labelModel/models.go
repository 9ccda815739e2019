package labelModel

// DrugLabel is one structured product label as openFDA returns it. Section
// fields arrive as arrays of paragraph strings; absent sections stay nil.
type DrugLabel struct {
	ID    string `json:"id,omitempty"`
	SetID string `json:"set_id,omitempty"`

	OpenFDA OpenFDAInfo `json:"openfda,omitempty"`

	BoxedWarning            []string `json:"boxed_warning,omitempty"`
	Warnings                []string `json:"warnings,omitempty"`
	WarningsAndCautions     []string `json:"warnings_and_cautions,omitempty"`
	Contraindications       []string `json:"contraindications,omitempty"`
	AdverseReactions        []string `json:"adverse_reactions,omitempty"`
	DrugInteractions        []string `json:"drug_interactions,omitempty"`
	IndicationsAndUsage     []string `json:"indications_and_usage,omitempty"`
	Precautions             []string `json:"precautions,omitempty"`
	DosageAndAdministration []string `json:"dosage_and_administration,omitempty"`
	Description             []string `json:"description,omitempty"`
}

type OpenFDAInfo struct {
	BrandName        []string `json:"brand_name,omitempty"`
	GenericName      []string `json:"generic_name,omitempty"`
	SubstanceName    []string `json:"substance_name,omitempty"`
	ManufacturerName []string `json:"manufacturer_name,omitempty"`
	Route            []string `json:"route,omitempty"`
	ProductNDC       []string `json:"product_ndc,omitempty"`
}

// SearchResult is what the fetch collaborator hands back for one query.
type SearchResult struct {
	Labels     []DrugLabel
	TotalCount int
}

// Chunk is a bounded, possibly overlapping window cut from one label's text.
type Chunk struct {
	ID       string        `json:"id"`
	Text     string        `json:"text"`
	Source   string        `json:"source"`
	Metadata ChunkMetadata `json:"metadata"`
	Score    float64       `json:"score,omitempty"`
}

type ChunkMetadata struct {
	DrugName        string `json:"drug_name,omitempty"`
	Manufacturer    string `json:"manufacturer,omitempty"`
	DocType         string `json:"doc_type,omitempty"`
	HasBoxedWarning bool   `json:"has_boxed_warning,omitempty"`
	HasWarnings     bool   `json:"has_warnings,omitempty"`
	ChunkIndex      int    `json:"chunk_index"`
	Start           int    `json:"start"`
	End             int    `json:"end"`
}

type Citation struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ResultBundle is the single artifact one pipeline invocation returns.
type ResultBundle struct {
	Source    string     `json:"source"`
	Query     string     `json:"query,omitempty"`
	Drug      string     `json:"drug,omitempty"`
	Condition string     `json:"condition,omitempty"`
	TopChunks []Chunk    `json:"top_chunks"`
	Summary   string     `json:"summary"`
	Citations []Citation `json:"citations"`
}

// DisplayName picks the best human name a label offers.
func (l *DrugLabel) DisplayName() string {
	if len(l.OpenFDA.BrandName) > 0 {
		return l.OpenFDA.BrandName[0]
	}
	if len(l.OpenFDA.GenericName) > 0 {
		return l.OpenFDA.GenericName[0]
	}
	if len(l.OpenFDA.SubstanceName) > 0 {
		return l.OpenFDA.SubstanceName[0]
	}
	return ""
}

func (l *DrugLabel) ManufacturerName() string {
	if len(l.OpenFDA.ManufacturerName) > 0 {
		return l.OpenFDA.ManufacturerName[0]
	}
	return ""
}
