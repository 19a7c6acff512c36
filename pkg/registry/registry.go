// Package registry is the durable, content-addressed store of ingested
// documents and their agent summaries. Entries live in an in-memory map
// behind one lock and are serialized to a versioned JSON file written with
// atomic replace.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// Duplicate reasons reported by Insert.
const (
	ReasonExactFingerprint = "exact fingerprint"
	ReasonSimilarTriple    = "similar triple"
)

// PreviewLength bounds the stored content preview.
const PreviewLength = 2000

// fileVersion is bumped when the on-disk layout changes.
const fileVersion = 1

// Entry is one registered document. Immutable after insertion except for
// attaching a summary.
type Entry struct {
	Fingerprint        string                    `json:"fingerprint"`
	Metadata           models.DocumentMetadata   `json:"metadata"`
	ContentHash        string                    `json:"contentHash"`
	FullContent        string                    `json:"fullContent"`
	ContentPreview     string                    `json:"contentPreview"`
	ContentLength      int                       `json:"contentLength"`
	Summary            *models.StructuredSummary `json:"summary,omitempty"`
	StoredAt           time.Time                 `json:"storedAt"`
	SummaryGeneratedAt *time.Time                `json:"summaryGeneratedAt,omitempty"`
}

// InsertResult reports the outcome of an insertion attempt.
type InsertResult struct {
	OK          bool
	Fingerprint string
	Duplicate   bool
	Reason      string
	Existing    *Entry
}

// Stats summarizes registry contents for status endpoints and the CLI.
type Stats struct {
	TotalDocuments    int            `json:"totalDocuments"`
	Companies         []string       `json:"companies"`
	FormTypes         map[string]int `json:"formTypes"`
	TotalContentBytes int            `json:"totalContentBytes"`
	WithSummaries     int            `json:"withSummaries"`
}

// Registry guards the entry map with one coarse lock; the duplicate checks
// run under that lock so racing ingestions of the same document deduplicate
// correctly.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	path    string
	logger  *slog.Logger
}

// New creates a registry persisting to path and attempts to load existing
// state. Load errors are non-fatal: the registry starts empty and logs.
func New(path string) *Registry {
	r := &Registry{
		entries: make(map[string]*Entry),
		path:    path,
		logger:  slog.Default(),
	}
	if err := r.Load(); err != nil {
		r.logger.Warn("Could not load document registry, starting empty", "path", path, "error", err)
	}
	return r
}

// Insert performs the tiered duplicate check and, if the document is new,
// records it together with its optional summary. The whole operation holds
// the write lock.
func (r *Registry) Insert(content string, meta models.DocumentMetadata, summary *models.StructuredSummary) InsertResult {
	fingerprint := Fingerprint(content, meta)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[fingerprint]; ok {
		return InsertResult{Duplicate: true, Reason: ReasonExactFingerprint, Fingerprint: fingerprint, Existing: existing}
	}

	triple := tripleKey(meta)
	for _, e := range r.entries {
		if tripleKey(e.Metadata) == triple {
			return InsertResult{Duplicate: true, Reason: ReasonSimilarTriple, Fingerprint: fingerprint, Existing: e}
		}
	}

	entry := &Entry{
		Fingerprint:    fingerprint,
		Metadata:       meta,
		ContentHash:    ContentHash(content),
		FullContent:    content,
		ContentPreview: preview(content),
		ContentLength:  len(content),
		StoredAt:       time.Now().UTC(),
	}
	if summary != nil {
		s := *summary
		entry.Summary = &s
		now := entry.StoredAt
		entry.SummaryGeneratedAt = &now
	}
	r.entries[fingerprint] = entry

	return InsertResult{OK: true, Fingerprint: fingerprint}
}

// InsertIfNew records a document without a summary.
func (r *Registry) InsertIfNew(content string, meta models.DocumentMetadata) InsertResult {
	return r.Insert(content, meta, nil)
}

// CheckDuplicate runs the tiered duplicate policy without inserting.
func (r *Registry) CheckDuplicate(content string, meta models.DocumentMetadata) (string, *Entry, bool) {
	fingerprint := Fingerprint(content, meta)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if existing, ok := r.entries[fingerprint]; ok {
		return ReasonExactFingerprint, existing, true
	}
	triple := tripleKey(meta)
	for _, e := range r.entries {
		if tripleKey(e.Metadata) == triple {
			return ReasonSimilarTriple, e, true
		}
	}
	return "", nil, false
}

// AttachSummary sets the summary of an existing entry.
func (r *Registry) AttachSummary(fingerprint string, summary models.StructuredSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[fingerprint]
	if !ok {
		return fmt.Errorf("no registry entry for fingerprint %s", fingerprint)
	}
	s := summary
	entry.Summary = &s
	now := time.Now().UTC()
	entry.SummaryGeneratedAt = &now
	return nil
}

// Get returns the entry for a fingerprint.
func (r *Registry) Get(fingerprint string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[fingerprint]
	if !ok {
		return nil, false
	}
	copied := *e
	return &copied, true
}

// LookupByAccession returns the entry holding the given accession number.
func (r *Registry) LookupByAccession(accession string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Metadata.AccessionNumber == accession {
			copied := *e
			return &copied, true
		}
	}
	return nil, false
}

// ListEntries returns entries ordered by filing date descending, optionally
// restricted by company filter.
func (r *Registry) ListEntries(companyFilter string) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Entry
	for _, e := range r.entries {
		if !matchesCompany(e.Metadata.CompanyName, companyFilter) {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Metadata.FilingDate > out[j].Metadata.FilingDate
	})
	return out
}

// ListSummaries is the controller's read model: metadata plus summary for
// every matching document, filing date descending. Entries without a
// generated summary get the invariant placeholder shape.
func (r *Registry) ListSummaries(companyFilter string) []models.DocumentSummary {
	entries := r.ListEntries(companyFilter)

	out := make([]models.DocumentSummary, 0, len(entries))
	for _, e := range entries {
		summary := models.StructuredSummary{
			ExecutiveSummary:    models.SummaryPlaceholder,
			FinancialHighlights: models.SummaryPlaceholder,
			InvestmentInsights:  models.SummaryPlaceholder,
			RiskFactors:         models.SummaryPlaceholder,
		}
		if e.Summary != nil {
			summary = *e.Summary
		}
		out = append(out, models.DocumentSummary{
			Metadata:      e.Metadata,
			Summary:       summary,
			ContentLength: e.ContentLength,
		})
	}
	return out
}

// FullContentByCompany concatenates the stored full content of matching
// documents, truncated at maxChars. Used by the grading path only.
func (r *Registry) FullContentByCompany(companyFilter string, maxChars int) string {
	entries := r.ListEntries(companyFilter)

	var b strings.Builder
	for _, e := range entries {
		if maxChars > 0 && b.Len() >= maxChars {
			break
		}
		b.WriteString(e.FullContent)
		b.WriteString("\n\n")
	}
	s := b.String()
	if maxChars > 0 && len(s) > maxChars {
		s = s[:maxChars]
	}
	return s
}

// Stats returns counts and derived sets over the current entries.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companySet := make(map[string]bool)
	formTypes := make(map[string]int)
	totalBytes := 0
	withSummaries := 0

	for _, e := range r.entries {
		companySet[e.Metadata.CompanyName] = true
		formTypes[e.Metadata.FormType]++
		totalBytes += e.ContentLength
		if e.Summary != nil {
			withSummaries++
		}
	}

	companies := make([]string, 0, len(companySet))
	for c := range companySet {
		companies = append(companies, c)
	}
	sort.Strings(companies)

	return Stats{
		TotalDocuments:    len(r.entries),
		Companies:         companies,
		FormTypes:         formTypes,
		TotalContentBytes: totalBytes,
		WithSummaries:     withSummaries,
	}
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear drops every entry. Used by the RAG reset path.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*Entry)
}

// registryFile is the on-disk envelope.
type registryFile struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"savedAt"`
	Entries map[string]*Entry `json:"entries"`
}

// Save serializes the registry to its JSON file, writing to a temp file in
// the same directory and renaming over the target so readers never observe
// a partial write.
func (r *Registry) Save() error {
	r.mu.RLock()
	file := registryFile{
		Version: fileVersion,
		SavedAt: time.Now().UTC(),
		Entries: r.entries,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close registry file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace registry file: %w", err)
	}
	return nil
}

// Load reads the registry file. A missing file is not an error.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read registry file: %w", err)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode registry file: %w", err)
	}
	if file.Entries == nil {
		file.Entries = make(map[string]*Entry)
	}

	r.mu.Lock()
	r.entries = file.Entries
	r.mu.Unlock()

	r.logger.Info("Document registry loaded", "path", r.path, "documents", len(file.Entries))
	return nil
}

// matchesCompany applies the bidirectional substring match so that a filter
// of "Apple" matches "Apple Inc." and vice versa.
func matchesCompany(companyName, filter string) bool {
	if filter == "" {
		return true
	}
	name := strings.ToLower(companyName)
	f := strings.ToLower(filter)
	return strings.Contains(name, f) || strings.Contains(f, name)
}

func preview(content string) string {
	if len(content) <= PreviewLength {
		return content
	}
	return content[:PreviewLength]
}
