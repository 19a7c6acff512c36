// Package ingest adds documents to the system: duplicate check against the
// registry, RAG indexing and summary generation run concurrently, then the
// registry entry is recorded and persisted.
package ingest

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/rag"
	"github.com/findocgpt/findocgpt/pkg/registry"
	"github.com/findocgpt/findocgpt/pkg/summary"
)

// Outcome reports the result of one ingestion attempt.
type Outcome struct {
	OK          bool
	Duplicate   bool
	Reason      string
	Fingerprint string
	Existing    *registry.Entry

	// IndexErr is set when RAG indexing failed. The registry entry is still
	// recorded with its summary, but OK is false.
	IndexErr error

	// SummaryFromLLM is false when the deterministic fallback produced the
	// summary.
	SummaryFromLLM bool
}

// Pipeline wires the registry, RAG gateway, and summary generator.
type Pipeline struct {
	registry   *registry.Registry
	gateway    *rag.Gateway
	summarizer *summary.Generator
	logger     *slog.Logger
}

// New creates an ingestion pipeline.
func New(reg *registry.Registry, gateway *rag.Gateway, summarizer *summary.Generator) *Pipeline {
	return &Pipeline{
		registry:   reg,
		gateway:    gateway,
		summarizer: summarizer,
		logger:     slog.Default(),
	}
}

// Ingest processes one document. RAG indexing is heavy and the summary call
// is latency-dominated by the LLM, so the two run concurrently; the summary
// is never fed into the RAG store.
func (p *Pipeline) Ingest(ctx context.Context, content string, meta models.DocumentMetadata) Outcome {
	if reason, existing, dup := p.registry.CheckDuplicate(content, meta); dup {
		p.logger.Info("Skipping duplicate document",
			"company", meta.CompanyName, "accession", meta.AccessionNumber, "reason", reason)
		return Outcome{Duplicate: true, Reason: reason, Existing: existing, Fingerprint: existing.Fingerprint}
	}

	ragText := rag.ComposeDocumentText(content, meta)

	var (
		indexErr error
		sum      models.StructuredSummary
		fromLLM  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Indexing failure must not cancel the summary task; the error is
		// captured instead of returned.
		indexErr = p.gateway.AddDocument(gctx, ragText)
		return nil
	})
	g.Go(func() error {
		sum, fromLLM = p.summarizer.Summarize(gctx, content, meta)
		return nil
	})
	_ = g.Wait()

	if indexErr == nil {
		if err := p.gateway.Cognify(ctx); err != nil {
			p.logger.Warn("Cognify failed after add", "accession", meta.AccessionNumber, "error", err)
			indexErr = err
		}
	} else {
		p.logger.Warn("RAG indexing failed", "accession", meta.AccessionNumber, "error", indexErr)
	}

	// The insert repeats the duplicate check under the registry lock, so two
	// racing ingestions of the same document still deduplicate.
	res := p.registry.Insert(content, meta, &sum)
	if res.Duplicate {
		return Outcome{Duplicate: true, Reason: res.Reason, Existing: res.Existing, Fingerprint: res.Fingerprint}
	}

	if err := p.registry.Save(); err != nil {
		// Non-fatal: the in-memory entry is live, persistence is retried on
		// the next save.
		p.logger.Warn("Could not persist document registry", "error", err)
	}

	p.logger.Info("Document ingested",
		"company", meta.CompanyName,
		"accession", meta.AccessionNumber,
		"fingerprint", res.Fingerprint,
		"indexed", indexErr == nil,
		"summary_from_llm", fromLLM)

	return Outcome{
		OK:             indexErr == nil,
		Fingerprint:    res.Fingerprint,
		IndexErr:       indexErr,
		SummaryFromLLM: fromLLM,
	}
}
