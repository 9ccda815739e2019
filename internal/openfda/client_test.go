package openfda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fdalabel-api/internal/data/cacheStore"
)

const sampleResponse = `{
	"meta": {"results": {"skip": 0, "limit": 10, "total": 2}},
	"results": [
		{"id": "a1", "set_id": "set-a1", "openfda": {"brand_name": ["Aspirin"]}, "warnings": ["Do not exceed the stated dose."]},
		{"id": "b2", "set_id": "set-b2", "openfda": {"generic_name": ["ibuprofen"]}}
	]
}`

func TestFetch_DecodesResults(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewTestClient(server.URL, server.Client(), nil)
	result, err := client.Fetch(context.Background(), `openfda.brand_name:"aspirin"`, 0, 10)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if result.TotalCount != 2 {
		t.Errorf("TotalCount got %d, want 2", result.TotalCount)
	}
	if len(result.Labels) != 2 {
		t.Fatalf("Labels got %d, want 2", len(result.Labels))
	}
	if name := result.Labels[0].DisplayName(); name != "Aspirin" {
		t.Errorf("DisplayName got %s, want Aspirin", name)
	}
	if gotQuery == "" {
		t.Error("request carried no query parameters")
	}
}

func TestFetch_NoMatchesIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": "NOT_FOUND", "message": "No matches found!"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL, server.Client(), nil)
	result, err := client.Fetch(context.Background(), `openfda.brand_name:"nosuchdrug"`, 0, 10)
	if err != nil {
		t.Fatalf("404 should map to an empty result, got error: %v", err)
	}
	if len(result.Labels) != 0 || result.TotalCount != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestFetch_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"code": "SERVER_ERROR", "message": "upstream exploded"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL, server.Client(), nil)
	_, err := client.Fetch(context.Background(), "anything", 0, 10)
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestFetch_UsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	cache := cacheStore.InitInMemoryCache()
	client := NewTestClient(server.URL, server.Client(), cache)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := client.Fetch(ctx, "same-query", 0, 10); err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("upstream was hit %d times, want 1 (cache should absorb repeats)", hits)
	}
}
