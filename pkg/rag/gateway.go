// Package rag wraps the opaque vector/graph store with search-mode mapping,
// result projection, memoization, and destructive maintenance operations.
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

// Gateway-level search modes accepted from callers.
const (
	ModeNatural    = "natural"
	ModeCompletion = "completion"
	ModeChunks     = "chunks"
	ModeInsights   = "insights"
	ModeGraph      = "graph"
	ModeSummaries  = "summaries"
)

// DefaultCacheTTL bounds how long memoized search results stay valid.
const DefaultCacheTTL = 15 * time.Minute

var modeToStoreType = map[string]string{
	ModeNatural:    StoreTypeGraphCompletion,
	ModeCompletion: StoreTypeRAGCompletion,
	ModeChunks:     StoreTypeChunks,
	ModeInsights:   StoreTypeInsights,
	ModeGraph:      StoreTypeGraphCompletion,
	ModeSummaries:  StoreTypeSummaries,
}

// StoreTypeForMode maps a gateway mode to the store's search type.
// Unknown modes fall back to the natural-language graph completion.
func StoreTypeForMode(mode string) string {
	if t, ok := modeToStoreType[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return t
	}
	return StoreTypeGraphCompletion
}

// Gateway is the single entry point to the RAG store.
type Gateway struct {
	store    Store
	cache    *Cache
	registry *registry.Registry
	logger   *slog.Logger

	// State directories removed and recreated by ResetAll.
	dataRoot   string
	systemRoot string
}

// NewGateway wires the gateway over a store and the document registry.
func NewGateway(store Store, reg *registry.Registry, dataRoot, systemRoot string) *Gateway {
	return &Gateway{
		store:      store,
		cache:      NewCache(DefaultCacheTTL),
		registry:   reg,
		logger:     slog.Default(),
		dataRoot:   dataRoot,
		systemRoot: systemRoot,
	}
}

// AddDocument submits a composed document text to the store for indexing.
func (g *Gateway) AddDocument(ctx context.Context, text string) error {
	if err := g.store.Add(ctx, text); err != nil {
		return fmt.Errorf("add document to store: %w", err)
	}
	return nil
}

// Cognify rebuilds the store's derived structures after a batch of adds.
func (g *Gateway) Cognify(ctx context.Context) error {
	if err := g.store.Cognify(ctx); err != nil {
		return fmt.Errorf("cognify store: %w", err)
	}
	return nil
}

// Search runs one query in the given gateway mode, returning projected
// strings. Results are memoized on (normalizedQuery, mode).
func (g *Gateway) Search(ctx context.Context, query, mode string) ([]string, error) {
	if cached, ok := g.cache.Get(query, mode); ok {
		g.logger.Debug("RAG search cache hit", "query", query, "mode", mode)
		return cached, nil
	}

	results, err := g.store.Search(ctx, query, StoreTypeForMode(mode))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	projected := Project(results)
	g.cache.Set(query, mode, projected)

	g.logger.Debug("RAG search finished", "query", query, "mode", mode, "results", len(projected))
	return projected, nil
}

// SearchByCompany biases the query toward one company by appending the
// company name to the query text. No stronger filtering is performed; the
// store is trusted to respect the bias.
func (g *Gateway) SearchByCompany(ctx context.Context, query, companyName, mode string) ([]string, error) {
	return g.Search(ctx, query+" "+companyName, mode)
}

// ComposeDocumentText builds the text blob stored for one document: a
// metadata header followed by the raw content. Summaries are never included.
func ComposeDocumentText(content string, meta models.DocumentMetadata) string {
	fields := map[string]string{
		"accession_number": meta.AccessionNumber,
		"company_name":     meta.CompanyName,
		"form_type":        meta.FormType,
		"filing_date":      meta.FilingDate,
	}
	if meta.Ticker != "" {
		fields["ticker"] = meta.Ticker
	}
	if meta.CIK != "" {
		fields["cik"] = meta.CIK
	}
	if meta.PeriodOfReport != "" {
		fields["period_of_report"] = meta.PeriodOfReport
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Document Metadata:\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
		b.WriteString("\n")
	}
	b.WriteString("\nDocument Content:\n")
	b.WriteString(content)
	return b.String()
}

// Prune clears the store's indexed data and the local search cache. The
// registry is untouched.
func (g *Gateway) Prune(ctx context.Context) error {
	if err := g.store.Prune(ctx); err != nil {
		return fmt.Errorf("prune store: %w", err)
	}
	g.cache.Clear()
	g.logger.Info("RAG store pruned")
	return nil
}

// ResetAll is the destructive maintenance operation: prune the store, delete
// and recreate its state directories, clear the cache, and clear the
// registry.
func (g *Gateway) ResetAll(ctx context.Context) error {
	if err := g.store.Prune(ctx); err != nil {
		// Directory removal below still clears on-disk state.
		g.logger.Warn("Store prune failed during reset", "error", err)
	}

	for _, dir := range []string{g.dataRoot, g.systemRoot} {
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("remove state dir %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("recreate state dir %s: %w", dir, err)
		}
	}

	g.cache.Clear()
	g.registry.Clear()
	if err := g.registry.Save(); err != nil {
		g.logger.Warn("Could not persist cleared registry", "error", err)
	}

	g.logger.Info("RAG store reset complete")
	return nil
}

// CacheSize exposes the number of memoized searches.
func (g *Gateway) CacheSize() int {
	return g.cache.Len()
}
