// Package edgar provides read access to the SEC EDGAR filings source:
// company search, recent-filings listing, and full-text filing retrieval.
package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// Form types the service ingests.
var supportedForms = map[string]bool{
	"10-K": true,
	"10-Q": true,
	"8-K":  true,
}

// Well-known company names to tickers, used to resolve free-form queries.
var queryTickers = []struct {
	name   string
	ticker string
}{
	{"APPLE", "AAPL"},
	{"MICROSOFT", "MSFT"},
	{"GOOGLE", "GOOGL"},
	{"AMAZON", "AMZN"},
	{"TESLA", "TSLA"},
	{"META", "META"},
	{"NVIDIA", "NVDA"},
}

// DefaultTicker is used when no known company appears in the query.
const DefaultTicker = "AAPL"

// Filing is one filing descriptor returned by SearchFilings.
type Filing struct {
	AccessionNumber string `json:"accessionNumber"`
	Form            string `json:"form"`
	CompanyName     string `json:"companyName"`
	Ticker          string `json:"ticker"`
	CIK             string `json:"cik"`
	FilingDate      string `json:"filingDate"`
	PeriodOfReport  string `json:"periodOfReport,omitempty"`
	Description     string `json:"description,omitempty"`
	URL             string `json:"url"`
}

// Metadata converts the descriptor to document metadata for ingestion.
func (f Filing) Metadata() models.DocumentMetadata {
	return models.DocumentMetadata{
		AccessionNumber: f.AccessionNumber,
		FormType:        f.Form,
		CompanyName:     f.CompanyName,
		Ticker:          f.Ticker,
		CIK:             f.CIK,
		FilingDate:      f.FilingDate,
		PeriodOfReport:  f.PeriodOfReport,
		Description:     f.Description,
		SourceURL:       f.URL,
	}
}

// FilingContent is the retrieved full text of one filing.
type FilingContent struct {
	AccessionNumber string    `json:"accessionNumber"`
	Content         string    `json:"content"`
	ContentType     string    `json:"contentType"`
	Size            int       `json:"size"`
	RetrievedAt     time.Time `json:"retrievedAt"`
}

// Client provides HTTP access to EDGAR. SEC requires a descriptive
// User-Agent with contact information on every request.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger

	// Overridable in tests.
	dataBaseURL    string
	archiveBaseURL string
	filesBaseURL   string
}

// NewClient creates an EDGAR client with the given User-Agent.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		userAgent:      userAgent,
		logger:         slog.Default(),
		dataBaseURL:    "https://data.sec.gov",
		archiveBaseURL: "https://www.sec.gov",
		filesBaseURL:   "https://www.sec.gov",
	}
}

// TickerForQuery resolves a free-form query to a ticker symbol using the
// well-known company list, defaulting to DefaultTicker.
func TickerForQuery(query string) string {
	upper := strings.ToUpper(query)
	for _, c := range queryTickers {
		if strings.Contains(upper, c.name) {
			return c.ticker
		}
	}
	return DefaultTicker
}

// SearchFilings resolves the query to a company and returns up to limit of
// its most recent supported filings, newest first.
func (c *Client) SearchFilings(ctx context.Context, query string, limit int) ([]Filing, error) {
	if limit <= 0 {
		limit = 5
	}

	ticker := TickerForQuery(query)
	cik, companyName, err := c.lookupCompany(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("resolve ticker %s: %w", ticker, err)
	}

	filings, err := c.recentFilings(ctx, cik, ticker, companyName, limit)
	if err != nil {
		return nil, fmt.Errorf("list filings for CIK %s: %w", cik, err)
	}

	c.logger.Info("EDGAR search finished", "query", query, "ticker", ticker, "filings", len(filings))
	return filings, nil
}

// FetchContent downloads the full submission text of one filing.
func (c *Client) FetchContent(ctx context.Context, accession, cik string) (*FilingContent, error) {
	cikNum := strings.TrimLeft(cik, "0")
	noDashes := strings.ReplaceAll(accession, "-", "")
	url := fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s.txt", c.archiveBaseURL, cikNum, noDashes, accession)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch filing %s: %w", accession, err)
	}

	return &FilingContent{
		AccessionNumber: accession,
		Content:         string(body),
		ContentType:     "text/plain",
		Size:            len(body),
		RetrievedAt:     time.Now().UTC(),
	}, nil
}

// companyTickerEntry is one record of the SEC company_tickers.json file.
type companyTickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

func (c *Client) lookupCompany(ctx context.Context, ticker string) (cik, companyName string, err error) {
	body, err := c.get(ctx, c.filesBaseURL+"/files/company_tickers.json")
	if err != nil {
		return "", "", err
	}

	var entries map[string]companyTickerEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", "", fmt.Errorf("decode company tickers: %w", err)
	}

	for _, e := range entries {
		if strings.EqualFold(e.Ticker, ticker) {
			return fmt.Sprintf("%010d", e.CIK), e.Title, nil
		}
	}
	return "", "", fmt.Errorf("ticker %s not found", ticker)
}

// submissionsResponse is the subset of the EDGAR submissions API we read.
type submissionsResponse struct {
	Name    string `json:"name"`
	Filings struct {
		Recent struct {
			AccessionNumber       []string `json:"accessionNumber"`
			Form                  []string `json:"form"`
			FilingDate            []string `json:"filingDate"`
			ReportDate            []string `json:"reportDate"`
			PrimaryDocDescription []string `json:"primaryDocDescription"`
		} `json:"recent"`
	} `json:"filings"`
}

func (c *Client) recentFilings(ctx context.Context, cik, ticker, companyName string, limit int) ([]Filing, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/submissions/CIK%s.json", c.dataBaseURL, cik))
	if err != nil {
		return nil, err
	}

	var subs submissionsResponse
	if err := json.Unmarshal(body, &subs); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	if companyName == "" {
		companyName = subs.Name
	}

	recent := subs.Filings.Recent
	var filings []Filing
	for i := range recent.AccessionNumber {
		if len(filings) >= limit {
			break
		}
		form := indexOrEmpty(recent.Form, i)
		if !supportedForms[form] {
			continue
		}

		accession := recent.AccessionNumber[i]
		filings = append(filings, Filing{
			AccessionNumber: accession,
			Form:            form,
			CompanyName:     companyName,
			Ticker:          ticker,
			CIK:             cik,
			FilingDate:      indexOrEmpty(recent.FilingDate, i),
			PeriodOfReport:  indexOrEmpty(recent.ReportDate, i),
			Description:     indexOrEmpty(recent.PrimaryDocDescription, i),
			URL:             c.indexURL(cik, accession),
		})
	}
	return filings, nil
}

// indexURL builds the human-readable filing index page URL.
func (c *Client) indexURL(cik, accession string) string {
	cikNum := strings.TrimLeft(cik, "0")
	noDashes := strings.ReplaceAll(accession, "-", "")
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s-index.html", c.archiveBaseURL, cikNum, noDashes, accession)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("EDGAR returned HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

func indexOrEmpty(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
