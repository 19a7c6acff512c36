package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findocgpt/findocgpt/pkg/models"
	"github.com/findocgpt/findocgpt/pkg/rag"
	"github.com/findocgpt/findocgpt/pkg/registry"
	"github.com/findocgpt/findocgpt/pkg/summary"
)

// blockingStore lets tests observe concurrency between add and summarize.
type blockingStore struct {
	mu        sync.Mutex
	added     []string
	cognified int
	addErr    error
	addDelay  time.Duration
}

func (s *blockingStore) Add(_ context.Context, text string) error {
	if s.addDelay > 0 {
		time.Sleep(s.addDelay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, text)
	return nil
}

func (s *blockingStore) Cognify(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cognified++
	return nil
}

func (s *blockingStore) Search(context.Context, string, string) ([]rag.Result, error) {
	return nil, nil
}

func (s *blockingStore) Prune(context.Context) error { return nil }

func testMeta() models.DocumentMetadata {
	return models.DocumentMetadata{
		AccessionNumber: "0000320193-24-000123",
		FormType:        "10-K",
		CompanyName:     "Apple Inc.",
		FilingDate:      "2024-11-01",
	}
}

func newTestPipeline(t *testing.T, store *blockingStore) (*Pipeline, *registry.Registry) {
	t.Helper()
	dir := t.TempDir()
	reg := registry.New(filepath.Join(dir, "registry.json"))
	gw := rag.NewGateway(store, reg, filepath.Join(dir, "data"), filepath.Join(dir, "system"))
	// Nil LLM client: summaries come from the deterministic fallback.
	return New(reg, gw, summary.New(nil)), reg
}

func TestIngest_HappyPath(t *testing.T) {
	store := &blockingStore{}
	pipeline, reg := newTestPipeline(t, store)

	outcome := pipeline.Ingest(context.Background(), "revenue grew while debt fell", testMeta())

	assert.True(t, outcome.OK)
	assert.False(t, outcome.Duplicate)
	assert.NotEmpty(t, outcome.Fingerprint)
	assert.NoError(t, outcome.IndexErr)

	// The store received the metadata header plus content, not the summary.
	require.Len(t, store.added, 1)
	assert.Contains(t, store.added[0], "Document Metadata:")
	assert.Contains(t, store.added[0], "revenue grew while debt fell")
	assert.NotContains(t, store.added[0], "The filing discusses")
	assert.Equal(t, 1, store.cognified)

	// Registry entry carries the summary.
	entry, ok := reg.Get(outcome.Fingerprint)
	require.True(t, ok)
	require.NotNil(t, entry.Summary)
	assert.Contains(t, entry.Summary.FinancialHighlights, "revenue")
}

func TestIngest_Duplicate(t *testing.T) {
	store := &blockingStore{}
	pipeline, reg := newTestPipeline(t, store)

	first := pipeline.Ingest(context.Background(), "content", testMeta())
	require.True(t, first.OK)

	second := pipeline.Ingest(context.Background(), "content", testMeta())
	assert.True(t, second.Duplicate)
	assert.Equal(t, registry.ReasonExactFingerprint, second.Reason)
	assert.Equal(t, 1, reg.Len())

	// The store was not touched for the duplicate.
	assert.Len(t, store.added, 1)
}

func TestIngest_IndexFailureStillRecordsEntry(t *testing.T) {
	store := &blockingStore{addErr: errors.New("store unreachable")}
	pipeline, reg := newTestPipeline(t, store)

	outcome := pipeline.Ingest(context.Background(), "revenue data", testMeta())

	assert.False(t, outcome.OK)
	assert.Error(t, outcome.IndexErr)
	assert.False(t, outcome.Duplicate)

	entry, ok := reg.Get(outcome.Fingerprint)
	require.True(t, ok)
	assert.NotNil(t, entry.Summary)
	assert.Equal(t, 0, store.cognified)
}

func TestIngest_RegistryPersisted(t *testing.T) {
	store := &blockingStore{}
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.json")
	reg := registry.New(path)
	gw := rag.NewGateway(store, reg, filepath.Join(dir, "data"), filepath.Join(dir, "system"))
	pipeline := New(reg, gw, summary.New(nil))

	outcome := pipeline.Ingest(context.Background(), "content", testMeta())
	require.True(t, outcome.OK)

	reloaded := registry.New(path)
	assert.Equal(t, 1, reloaded.Len())
}

func TestIngest_ConcurrentSameDocumentDeduplicates(t *testing.T) {
	store := &blockingStore{addDelay: 20 * time.Millisecond}
	pipeline, reg := newTestPipeline(t, store)

	var wg sync.WaitGroup
	outcomes := make([]Outcome, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = pipeline.Ingest(context.Background(), "same content", testMeta())
		}(i)
	}
	wg.Wait()

	inserted := 0
	for _, o := range outcomes {
		if !o.Duplicate {
			inserted++
		}
	}
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, reg.Len())
}
