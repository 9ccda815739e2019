package pipeline_test

import (
	"context"

	"fdalabel-api/internal/domain/labelModel"
)

// MockFetcher implements openfda.Fetcher
type MockFetcher struct {
	OnFetch    func(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error)
	CallCount  int
	LastSearch string
	LastLimit  int
}

func (m *MockFetcher) Fetch(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error) {
	m.CallCount++
	m.LastSearch = searchExpr
	m.LastLimit = limit
	if m.OnFetch != nil {
		return m.OnFetch(ctx, searchExpr, skip, limit)
	}
	return labelModel.SearchResult{}, nil
}

func aspirinLabel() labelModel.DrugLabel {
	return labelModel.DrugLabel{
		ID:    "a1",
		SetID: "set-aspirin",
		OpenFDA: labelModel.OpenFDAInfo{
			BrandName:        []string{"Aspirin"},
			ManufacturerName: []string{"Bayer"},
		},
		BoxedWarning:     []string{"Boxed warning: Reye's syndrome risk in children."},
		Warnings:         []string{"Warning: severe bleeding may occur with prolonged use. Study NCT01234567 reported events."},
		AdverseReactions: []string{"Common adverse reactions include nausea and rash."},
	}
}

func unrelatedLabel() labelModel.DrugLabel {
	return labelModel.DrugLabel{
		ID:    "b2",
		SetID: "set-other",
		OpenFDA: labelModel.OpenFDAInfo{
			GenericName: []string{"placebomycin"},
		},
		Description: []string{"A tablet for oral administration."},
	}
}

func emptyLabel() labelModel.DrugLabel {
	return labelModel.DrugLabel{ID: "c3", SetID: "set-empty"}
}
