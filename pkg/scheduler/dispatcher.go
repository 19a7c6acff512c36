// Package scheduler runs analysis jobs in the background and tracks their
// cancel functions so the API can abort a specific run.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/findocgpt/findocgpt/pkg/analysis"
)

// Runner executes one analysis job to a terminal outcome.
type Runner interface {
	Run(ctx context.Context, query, companyFilter string, cancelled analysis.CancelSignal, updater analysis.JobUpdater) *analysis.Outcome
}

// JobStore is the persistence surface the dispatcher needs around a run.
type JobStore interface {
	ProgressWriter(jobID int) analysis.JobUpdater
	IsCancelRequested(ctx context.Context, id int) bool
	ApplyOutcome(ctx context.Context, id int, out *analysis.Outcome) error
}

// Dispatcher spawns one goroutine per analysis job.
type Dispatcher struct {
	runner Runner
	store  JobStore
	logger *slog.Logger

	// Job cancel registry: analysis_id → cancel function
	mu     sync.RWMutex
	active map[int]context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(runner Runner, store JobStore) *Dispatcher {
	return &Dispatcher{
		runner: runner,
		store:  store,
		logger: slog.Default(),
		active: make(map[int]context.CancelFunc),
	}
}

// StartJob launches the run for a freshly created job. The run owns a
// background-derived context so an HTTP disconnect never aborts it.
func (d *Dispatcher) StartJob(id int, query, companyFilter string) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher is shut down")
	}
	if _, ok := d.active[id]; ok {
		d.mu.Unlock()
		return fmt.Errorf("analysis job %d is already running", id)
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.active[id] = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(ctx, id, query, companyFilter)
	return nil
}

func (d *Dispatcher) run(ctx context.Context, id int, query, companyFilter string) {
	defer d.wg.Done()
	defer d.unregister(id)

	d.logger.Info("Analysis job started", "analysis_id", id, "query", query)

	cancelled := func(c context.Context) bool {
		return d.store.IsCancelRequested(c, id)
	}
	out := d.runner.Run(ctx, query, companyFilter, cancelled, d.store.ProgressWriter(id))

	// Terminal write happens on a fresh context; the run context may already
	// be cancelled.
	if err := d.store.ApplyOutcome(context.Background(), id, out); err != nil {
		d.logger.Error("Failed to persist analysis outcome", "analysis_id", id, "error", err)
		return
	}
	d.logger.Info("Analysis job finished",
		"analysis_id", id,
		"status", out.Status,
		"iterations", out.TotalIterations,
		"completeness_score", out.FinalCompletenessScore)
}

func (d *Dispatcher) unregister(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cancel, ok := d.active[id]; ok {
		cancel()
		delete(d.active, id)
	}
}

// Cancel aborts a running job's context. Returns false when the job is not
// running here; the persisted cancel flag still stops it at the next poll.
func (d *Dispatcher) Cancel(id int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cancel, ok := d.active[id]
	if ok {
		cancel()
	}
	return ok
}

// IsRunning reports whether the job is currently executing on this process.
func (d *Dispatcher) IsRunning(id int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.active[id]
	return ok
}

// ActiveCount returns the number of running jobs.
func (d *Dispatcher) ActiveCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.active)
}

// Shutdown stops accepting jobs and waits for running ones. When the context
// expires first, all remaining runs are cancelled and then awaited; they
// persist as cancelled.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Shutdown deadline reached, cancelling active jobs", "active", d.ActiveCount())
		d.mu.RLock()
		for _, cancel := range d.active {
			cancel()
		}
		d.mu.RUnlock()
		<-done
		return ctx.Err()
	}
}
