package registry

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
)

func appleMeta() models.DocumentMetadata {
	return models.DocumentMetadata{
		AccessionNumber: "0000320193-24-000123",
		FormType:        "10-K",
		CompanyName:     "Apple Inc.",
		Ticker:          "AAPL",
		CIK:             "0000320193",
		FilingDate:      "2024-11-01",
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "document_registry.json"))
}

func TestFingerprint_Deterministic(t *testing.T) {
	meta := appleMeta()
	fp1 := Fingerprint("annual report content", meta)
	fp2 := Fingerprint("annual report content", meta)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 64)
}

func TestFingerprint_SensitiveToContentAndMetadata(t *testing.T) {
	meta := appleMeta()

	assert.NotEqual(t,
		Fingerprint("content a", meta),
		Fingerprint("content b", meta))

	changed := meta
	changed.AccessionNumber = "0000320193-24-000124"
	assert.NotEqual(t,
		Fingerprint("content a", meta),
		Fingerprint("content a", changed))
}

func TestFingerprint_CaseInsensitiveMetadataKey(t *testing.T) {
	meta := appleMeta()
	upper := meta
	upper.CompanyName = "APPLE INC."
	upper.FormType = "10-k"

	assert.Equal(t,
		Fingerprint("content", meta),
		Fingerprint("content", upper))
}

func TestInsert_ExactDuplicate(t *testing.T) {
	reg := newTestRegistry(t)
	meta := appleMeta()

	first := reg.InsertIfNew("content", meta)
	require.True(t, first.OK)
	assert.NotEmpty(t, first.Fingerprint)

	second := reg.InsertIfNew("content", meta)
	assert.False(t, second.OK)
	assert.True(t, second.Duplicate)
	assert.Equal(t, ReasonExactFingerprint, second.Reason)
	require.NotNil(t, second.Existing)
	assert.Equal(t, first.Fingerprint, second.Existing.Fingerprint)

	assert.Equal(t, 1, reg.Len())
}

func TestInsert_SimilarTripleDuplicate(t *testing.T) {
	reg := newTestRegistry(t)

	first := reg.InsertIfNew("content v1", appleMeta())
	require.True(t, first.OK)

	// Different content and accession but the same company/form/date triple.
	meta := appleMeta()
	meta.AccessionNumber = "0000320193-24-000999"
	second := reg.InsertIfNew("content v2", meta)

	assert.True(t, second.Duplicate)
	assert.Equal(t, ReasonSimilarTriple, second.Reason)
	assert.Equal(t, 1, reg.Len())
}

func TestInsert_DifferentTripleAccepted(t *testing.T) {
	reg := newTestRegistry(t)

	require.True(t, reg.InsertIfNew("content 10-K", appleMeta()).OK)

	meta := appleMeta()
	meta.AccessionNumber = "0000320193-24-000050"
	meta.FormType = "10-Q"
	meta.FilingDate = "2024-08-02"
	assert.True(t, reg.InsertIfNew("content 10-Q", meta).OK)

	assert.Equal(t, 2, reg.Len())
}

func TestInsert_WithSummary(t *testing.T) {
	reg := newTestRegistry(t)
	summary := models.StructuredSummary{
		ExecutiveSummary:    "Strong year",
		FinancialHighlights: "Revenue up",
		InvestmentInsights:  "Buy",
		RiskFactors:         "Competition",
	}

	res := reg.Insert("content", appleMeta(), &summary)
	require.True(t, res.OK)

	entry, ok := reg.Get(res.Fingerprint)
	require.True(t, ok)
	require.NotNil(t, entry.Summary)
	assert.Equal(t, "Strong year", entry.Summary.ExecutiveSummary)
	assert.NotNil(t, entry.SummaryGeneratedAt)
}

func TestEntryFields(t *testing.T) {
	reg := newTestRegistry(t)
	content := strings.Repeat("x", PreviewLength+500)

	res := reg.InsertIfNew(content, appleMeta())
	require.True(t, res.OK)

	entry, ok := reg.Get(res.Fingerprint)
	require.True(t, ok)
	assert.Equal(t, content, entry.FullContent)
	assert.Len(t, entry.ContentPreview, PreviewLength)
	assert.Equal(t, len(content), entry.ContentLength)
	assert.Equal(t, ContentHash(content), entry.ContentHash)
	assert.False(t, entry.StoredAt.IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	reg := New(path)
	summary := models.StructuredSummary{
		ExecutiveSummary:    "Summary",
		FinancialHighlights: "Highlights",
		InvestmentInsights:  "Insights",
		RiskFactors:         "Risks",
	}
	res := reg.Insert("full content preserved", appleMeta(), &summary)
	require.True(t, res.OK)
	require.NoError(t, reg.Save())

	reloaded := New(path)
	assert.Equal(t, 1, reloaded.Len())

	entry, ok := reloaded.Get(res.Fingerprint)
	require.True(t, ok)
	assert.Equal(t, "full content preserved", entry.FullContent)
	assert.Equal(t, appleMeta(), entry.Metadata)
	require.NotNil(t, entry.Summary)
	assert.Equal(t, summary, *entry.Summary)
}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	reg := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Equal(t, 0, reg.Len())
}

func TestListSummaries_OrderAndFilter(t *testing.T) {
	reg := newTestRegistry(t)

	require.True(t, reg.InsertIfNew("apple 10-K", appleMeta()).OK)

	msft := models.DocumentMetadata{
		AccessionNumber: "0000789019-24-000001",
		FormType:        "10-Q",
		CompanyName:     "Microsoft Corp",
		CIK:             "0000789019",
		FilingDate:      "2025-01-15",
	}
	require.True(t, reg.InsertIfNew("msft 10-Q", msft).OK)

	all := reg.ListSummaries("")
	require.Len(t, all, 2)
	// Filing date descending.
	assert.Equal(t, "Microsoft Corp", all[0].Metadata.CompanyName)
	assert.Equal(t, "Apple Inc.", all[1].Metadata.CompanyName)

	// Substring match in either direction.
	apple := reg.ListSummaries("Apple")
	require.Len(t, apple, 1)
	assert.Equal(t, "Apple Inc.", apple[0].Metadata.CompanyName)

	longFilter := reg.ListSummaries("Microsoft Corp and Subsidiaries")
	require.Len(t, longFilter, 1)
	assert.Equal(t, "Microsoft Corp", longFilter[0].Metadata.CompanyName)
}

func TestListSummaries_PlaceholderWithoutSummary(t *testing.T) {
	reg := newTestRegistry(t)
	require.True(t, reg.InsertIfNew("content", appleMeta()).OK)

	summaries := reg.ListSummaries("")
	require.Len(t, summaries, 1)
	assert.Equal(t, models.SummaryPlaceholder, summaries[0].Summary.ExecutiveSummary)
	assert.Equal(t, models.SummaryPlaceholder, summaries[0].Summary.RiskFactors)
}

func TestLookupByAccession(t *testing.T) {
	reg := newTestRegistry(t)
	require.True(t, reg.InsertIfNew("content", appleMeta()).OK)

	entry, ok := reg.LookupByAccession("0000320193-24-000123")
	require.True(t, ok)
	assert.Equal(t, "Apple Inc.", entry.Metadata.CompanyName)

	_, ok = reg.LookupByAccession("missing")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	reg := newTestRegistry(t)
	require.True(t, reg.Insert("content a", appleMeta(), &models.StructuredSummary{}).OK)

	msft := appleMeta()
	msft.AccessionNumber = "acc-msft"
	msft.CompanyName = "Microsoft Corp"
	msft.FilingDate = "2025-01-15"
	require.True(t, reg.InsertIfNew("content b", msft).OK)

	stats := reg.Stats()
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, []string{"Apple Inc.", "Microsoft Corp"}, stats.Companies)
	assert.Equal(t, 2, stats.FormTypes["10-K"])
	assert.Equal(t, 1, stats.WithSummaries)
	assert.Equal(t, len("content a")+len("content b"), stats.TotalContentBytes)
}

func TestClear(t *testing.T) {
	reg := newTestRegistry(t)
	require.True(t, reg.InsertIfNew("content", appleMeta()).OK)

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
}

func TestAttachSummary(t *testing.T) {
	reg := newTestRegistry(t)
	res := reg.InsertIfNew("content", appleMeta())
	require.True(t, res.OK)

	err := reg.AttachSummary(res.Fingerprint, models.StructuredSummary{ExecutiveSummary: "Late summary"})
	require.NoError(t, err)

	entry, _ := reg.Get(res.Fingerprint)
	assert.Equal(t, "Late summary", entry.Summary.ExecutiveSummary)

	assert.Error(t, reg.AttachSummary("unknown", models.StructuredSummary{}))
}

func TestFullContentByCompany_Truncates(t *testing.T) {
	reg := newTestRegistry(t)
	require.True(t, reg.InsertIfNew(strings.Repeat("a", 100), appleMeta()).OK)

	content := reg.FullContentByCompany("Apple", 50)
	assert.Len(t, content, 50)
}
