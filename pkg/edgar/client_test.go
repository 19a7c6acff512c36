package edgar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerForQuery(t *testing.T) {
	assert.Equal(t, "AAPL", TickerForQuery("Analyze Apple Inc's latest 10-K"))
	assert.Equal(t, "MSFT", TickerForQuery("microsoft quarterly results"))
	assert.Equal(t, "TSLA", TickerForQuery("What are Tesla's risk factors?"))
	assert.Equal(t, DefaultTicker, TickerForQuery("generic semiconductor outlook"))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("FinDocGPT test (test@example.com)")
	c.dataBaseURL = srv.URL
	c.archiveBaseURL = srv.URL
	c.filesBaseURL = srv.URL
	return c, srv
}

const tickersJSON = `{
	"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
	"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"}
}`

const submissionsJSON = `{
	"name": "Apple Inc.",
	"filings": {"recent": {
		"accessionNumber": ["0000320193-24-000123", "0000320193-24-000100", "0000320193-24-000050"],
		"form": ["10-K", "4", "10-Q"],
		"filingDate": ["2024-11-01", "2024-10-15", "2024-08-02"],
		"reportDate": ["2024-09-28", "", "2024-06-29"],
		"primaryDocDescription": ["Annual report", "Ownership", "Quarterly report"]
	}}
}`

func edgarHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(tickersJSON))
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(submissionsJSON))
	})
	mux.HandleFunc("/Archives/edgar/data/320193/000032019324000123/0000320193-24-000123.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ANNUAL REPORT FULL TEXT"))
	})
	return mux
}

func TestSearchFilings_FiltersSupportedForms(t *testing.T) {
	client, _ := newTestClient(t, edgarHandler(t))

	filings, err := client.SearchFilings(context.Background(), "Apple annual report", 5)
	require.NoError(t, err)
	require.Len(t, filings, 2)

	assert.Equal(t, "10-K", filings[0].Form)
	assert.Equal(t, "0000320193-24-000123", filings[0].AccessionNumber)
	assert.Equal(t, "Apple Inc.", filings[0].CompanyName)
	assert.Equal(t, "AAPL", filings[0].Ticker)
	assert.Equal(t, "2024-11-01", filings[0].FilingDate)
	assert.Equal(t, "2024-09-28", filings[0].PeriodOfReport)
	assert.Contains(t, filings[0].URL, "0000320193-24-000123-index.html")

	// Form "4" is skipped.
	assert.Equal(t, "10-Q", filings[1].Form)
}

func TestSearchFilings_RespectsLimit(t *testing.T) {
	client, _ := newTestClient(t, edgarHandler(t))

	filings, err := client.SearchFilings(context.Background(), "Apple", 1)
	require.NoError(t, err)
	assert.Len(t, filings, 1)
}

func TestFetchContent(t *testing.T) {
	client, _ := newTestClient(t, edgarHandler(t))

	content, err := client.FetchContent(context.Background(), "0000320193-24-000123", "0000320193")
	require.NoError(t, err)

	assert.Equal(t, "0000320193-24-000123", content.AccessionNumber)
	assert.Equal(t, "ANNUAL REPORT FULL TEXT", content.Content)
	assert.Equal(t, len("ANNUAL REPORT FULL TEXT"), content.Size)
	assert.False(t, content.RetrievedAt.IsZero())
}

func TestFetchContent_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.FetchContent(context.Background(), "0000000000-00-000000", "123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFilingMetadata(t *testing.T) {
	f := Filing{
		AccessionNumber: "acc-1",
		Form:            "10-K",
		CompanyName:     "Apple Inc.",
		Ticker:          "AAPL",
		CIK:             "0000320193",
		FilingDate:      "2024-11-01",
	}
	meta := f.Metadata()
	assert.Equal(t, "acc-1", meta.AccessionNumber)
	assert.Equal(t, "10-K", meta.FormType)
	assert.Equal(t, "Apple Inc.", meta.CompanyName)
}
