package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

func TestSearchAndStoreDocuments(t *testing.T) {
	srv, _, _ := newTestServer()

	w := doRequest(srv, http.MethodPost, "/api/documents/search_and_store",
		SearchStoreRequest{Query: "apple annual report", Limit: 3})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(3), body["documentsFound"])
	assert.Equal(t, float64(2), body["documentsQueued"])
}

func TestSearchAndStoreDocuments_EmptyQuery(t *testing.T) {
	srv, _, _ := newTestServer()
	w := doRequest(srv, http.MethodPost, "/api/documents/search_and_store", SearchStoreRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDocuments(t *testing.T) {
	docs := &stubDocStore{entries: []*registry.Entry{{
		Fingerprint: "abc123",
		Metadata: models.DocumentMetadata{
			CompanyName: "Apple Inc.",
			FormType:    "10-K",
			FilingDate:  "2024-11-01",
		},
		ContentLength: 250000,
		StoredAt:      time.Now(),
		Summary:       &models.StructuredSummary{ExecutiveSummary: "Annual report."},
	}}}
	srv := NewServer(newStubAnalysisStore(), docs, &stubDispatcher{}, nil, true, true)

	body := decode(t, doRequest(srv, http.MethodGet, "/api/documents", nil))

	assert.Equal(t, float64(1), body["count"])
	doc := body["documents"].([]any)[0].(map[string]any)
	assert.Equal(t, "abc123", doc["id"])
	assert.Equal(t, true, doc["hasSummary"])
	meta := doc["metadata"].(map[string]any)
	assert.Equal(t, "Apple Inc.", meta["companyName"])
}

func TestDocumentStats(t *testing.T) {
	srv, _, _ := newTestServer()

	body := decode(t, doRequest(srv, http.MethodGet, "/api/documents/stats", nil))

	assert.Equal(t, float64(4), body["totalDocuments"])
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer()

	w := doRequest(srv, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	components := body["components"].(map[string]any)
	assert.Equal(t, true, components["chatLLMConfigured"])
}
