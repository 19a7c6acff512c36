package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/findocgpt/findocgpt/pkg/edgar"
	"github.com/findocgpt/findocgpt/pkg/ingest"
	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

// defaultFilingLimit is used when a search request does not specify one.
const defaultFilingLimit = 5

// FilingSource finds and downloads SEC filings.
type FilingSource interface {
	SearchFilings(ctx context.Context, query string, limit int) ([]edgar.Filing, error)
	FetchContent(ctx context.Context, accession, cik string) (*edgar.FilingContent, error)
}

// Ingester runs one document through summarization, indexing, and the
// registry.
type Ingester interface {
	Ingest(ctx context.Context, content string, meta models.DocumentMetadata) ingest.Outcome
}

// StoredDocument is the per-filing outcome of a search-and-store request.
type StoredDocument struct {
	AccessionNumber string `json:"accessionNumber"`
	CompanyName     string `json:"companyName"`
	FormType        string `json:"formType"`
	FilingDate      string `json:"filingDate"`
	Stored          bool   `json:"stored"`
	Duplicate       bool   `json:"duplicate"`
	Reason          string `json:"reason,omitempty"`
	Error           string `json:"error,omitempty"`
}

// SearchAndStoreResult summarizes one search-and-store request.
type SearchAndStoreResult struct {
	Query      string           `json:"query"`
	Ticker     string           `json:"ticker"`
	Requested  int              `json:"requested"`
	Stored     int              `json:"stored"`
	Duplicates int              `json:"duplicates"`
	Failed     int              `json:"failed"`
	Documents  []StoredDocument `json:"documents"`
}

// DocumentService orchestrates filing discovery and ingestion.
type DocumentService struct {
	source   FilingSource
	ingester Ingester
	registry *registry.Registry
	logger   *slog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(source FilingSource, ingester Ingester, reg *registry.Registry) *DocumentService {
	return &DocumentService{
		source:   source,
		ingester: ingester,
		registry: reg,
		logger:   slog.Default(),
	}
}

// SearchAndStore finds recent filings matching the query and ingests each
// one. Per-filing failures are reported in the result instead of aborting
// the batch.
func (s *DocumentService) SearchAndStore(ctx context.Context, query string, limit int) (*SearchAndStoreResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	if limit <= 0 {
		limit = defaultFilingLimit
	}

	filings, err := s.source.SearchFilings(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search filings: %w", err)
	}

	result := &SearchAndStoreResult{
		Query:     query,
		Ticker:    edgar.TickerForQuery(query),
		Requested: len(filings),
	}

	for _, filing := range filings {
		doc := StoredDocument{
			AccessionNumber: filing.AccessionNumber,
			CompanyName:     filing.CompanyName,
			FormType:        filing.Form,
			FilingDate:      filing.FilingDate,
		}

		// Known accessions are skipped before any download happens.
		if _, ok := s.registry.LookupByAccession(filing.AccessionNumber); ok {
			doc.Duplicate = true
			doc.Reason = registry.ReasonExactFingerprint
			result.Duplicates++
			result.Documents = append(result.Documents, doc)
			continue
		}

		content, err := s.source.FetchContent(ctx, filing.AccessionNumber, filing.CIK)
		if err != nil {
			s.logger.Warn("Filing download failed", "accession", filing.AccessionNumber, "error", err)
			doc.Error = err.Error()
			result.Failed++
			result.Documents = append(result.Documents, doc)
			continue
		}

		outcome := s.ingester.Ingest(ctx, content.Content, filing.Metadata())
		switch {
		case outcome.Duplicate:
			doc.Duplicate = true
			doc.Reason = outcome.Reason
			result.Duplicates++
		case outcome.OK:
			doc.Stored = true
			result.Stored++
		default:
			// The registry entry was recorded but indexing failed; the
			// document is searchable by summary only.
			doc.Stored = true
			if outcome.IndexErr != nil {
				doc.Error = outcome.IndexErr.Error()
			}
			result.Stored++
		}
		result.Documents = append(result.Documents, doc)
	}

	s.logger.Info("Search and store finished",
		"query", query,
		"stored", result.Stored,
		"duplicates", result.Duplicates,
		"failed", result.Failed)
	return result, nil
}

// StartSearchAndStore finds matching filings synchronously, then downloads
// and ingests the new ones in the background. Returns how many filings were
// found and how many were queued for ingestion.
func (s *DocumentService) StartSearchAndStore(ctx context.Context, query string, limit int) (found, queued int, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, 0, NewValidationError("query", "required")
	}
	if limit <= 0 {
		limit = defaultFilingLimit
	}

	filings, err := s.source.SearchFilings(ctx, query, limit)
	if err != nil {
		return 0, 0, fmt.Errorf("search filings: %w", err)
	}

	fresh := make([]edgar.Filing, 0, len(filings))
	for _, filing := range filings {
		if _, ok := s.registry.LookupByAccession(filing.AccessionNumber); !ok {
			fresh = append(fresh, filing)
		}
	}

	// Ingestion outlives the HTTP request.
	go func() {
		bg := context.Background()
		for _, filing := range fresh {
			content, err := s.source.FetchContent(bg, filing.AccessionNumber, filing.CIK)
			if err != nil {
				s.logger.Warn("Filing download failed", "accession", filing.AccessionNumber, "error", err)
				continue
			}
			s.ingester.Ingest(bg, content.Content, filing.Metadata())
		}
	}()

	return len(filings), len(fresh), nil
}

// ListDocuments returns registry entries, newest filing first.
func (s *DocumentService) ListDocuments(companyFilter string) []*registry.Entry {
	return s.registry.ListEntries(companyFilter)
}

// DocumentStats returns corpus-level statistics.
func (s *DocumentService) DocumentStats() registry.Stats {
	return s.registry.Stats()
}
