package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/edgar"
	"github.com/findocgpt/findocgpt/pkg/ingest"
	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

type fakeFilingSource struct {
	filings   []edgar.Filing
	searchErr error
	fetchErr  map[string]error
	fetched   []string
}

func (f *fakeFilingSource) SearchFilings(_ context.Context, _ string, _ int) ([]edgar.Filing, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.filings, nil
}

func (f *fakeFilingSource) FetchContent(_ context.Context, accession, _ string) (*edgar.FilingContent, error) {
	f.fetched = append(f.fetched, accession)
	if err := f.fetchErr[accession]; err != nil {
		return nil, err
	}
	return &edgar.FilingContent{
		AccessionNumber: accession,
		Content:         "Full text of " + accession,
		ContentType:     "text/plain",
		Size:            len("Full text of " + accession),
	}, nil
}

type fakeIngester struct {
	reg      *registry.Registry
	outcomes map[string]ingest.Outcome
}

func (f *fakeIngester) Ingest(_ context.Context, content string, meta models.DocumentMetadata) ingest.Outcome {
	if out, ok := f.outcomes[meta.AccessionNumber]; ok {
		return out
	}
	res := f.reg.Insert(content, meta, &models.StructuredSummary{})
	if res.Duplicate {
		return ingest.Outcome{Duplicate: true, Reason: res.Reason}
	}
	return ingest.Outcome{OK: true, Fingerprint: res.Fingerprint}
}

func testFiling(accession string) edgar.Filing {
	return edgar.Filing{
		AccessionNumber: accession,
		Form:            "10-K",
		CompanyName:     "Apple Inc.",
		Ticker:          "AAPL",
		CIK:             "0000320193",
		FilingDate:      "2024-11-01",
	}
}

func newDocService(t *testing.T, source *fakeFilingSource) (*DocumentService, *registry.Registry) {
	reg := registry.New(filepath.Join(t.TempDir(), "document_registry.json"))
	svc := NewDocumentService(source, &fakeIngester{reg: reg}, reg)
	return svc, reg
}

func TestSearchAndStore(t *testing.T) {
	source := &fakeFilingSource{filings: []edgar.Filing{testFiling("0001-24-000001"), testFiling("0001-24-000002")}}
	svc, reg := newDocService(t, source)

	result, err := svc.SearchAndStore(context.Background(), "apple annual report", 0)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 2, result.Stored)
	assert.Equal(t, 0, result.Duplicates)
	require.Len(t, result.Documents, 2)
	assert.True(t, result.Documents[0].Stored)
	assert.Equal(t, 2, reg.Len())
}

func TestSearchAndStore_SkipsKnownAccessions(t *testing.T) {
	source := &fakeFilingSource{filings: []edgar.Filing{testFiling("0001-24-000001")}}
	svc, reg := newDocService(t, source)

	// Pre-seed the registry with the same accession.
	reg.Insert("existing content", testFiling("0001-24-000001").Metadata(), &models.StructuredSummary{})

	result, err := svc.SearchAndStore(context.Background(), "apple annual report", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 0, result.Stored)
	// The duplicate was detected before any download.
	assert.Empty(t, source.fetched)
}

func TestSearchAndStore_FetchFailureDoesNotAbortBatch(t *testing.T) {
	source := &fakeFilingSource{
		filings:  []edgar.Filing{testFiling("0001-24-000001"), testFiling("0001-24-000002")},
		fetchErr: map[string]error{"0001-24-000001": errors.New("rate limited")},
	}
	svc, _ := newDocService(t, source)

	result, err := svc.SearchAndStore(context.Background(), "apple annual report", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Stored)
	require.Len(t, result.Documents, 2)
	assert.Contains(t, result.Documents[0].Error, "rate limited")
	assert.True(t, result.Documents[1].Stored)
}

func TestSearchAndStore_EmptyQuery(t *testing.T) {
	svc, _ := newDocService(t, &fakeFilingSource{})

	_, err := svc.SearchAndStore(context.Background(), "   ", 1)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSearchAndStore_SearchError(t *testing.T) {
	svc, _ := newDocService(t, &fakeFilingSource{searchErr: errors.New("edgar down")})

	_, err := svc.SearchAndStore(context.Background(), "apple annual report", 1)
	assert.ErrorContains(t, err, "edgar down")
}

func TestListDocumentsAndStats(t *testing.T) {
	svc, reg := newDocService(t, &fakeFilingSource{})

	meta := testFiling("0001-24-000001").Metadata()
	reg.Insert("content one", meta, &models.StructuredSummary{ExecutiveSummary: "Summary."})

	entries := svc.ListDocuments("Apple")
	require.Len(t, entries, 1)
	assert.Equal(t, "Apple Inc.", entries[0].Metadata.CompanyName)

	assert.Empty(t, svc.ListDocuments("Tesla"))

	stats := svc.DocumentStats()
	assert.Equal(t, 1, stats.TotalDocuments)
	assert.Equal(t, []string{"Apple Inc."}, stats.Companies)
}
