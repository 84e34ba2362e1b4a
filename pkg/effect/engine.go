// Package effect runs asynchronous workflows against the API and file-store
// collaborators in response to dispatched intents, and feeds the outcomes
// back into the store as success or failure intents.
package effect

import (
	"context"
	"sync"

	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// Policy is the concurrency policy of a pipeline. The distinctions are
// behaviorally load-bearing: a collection fetch must supersede its in-flight
// predecessor, mutations must apply in dispatch order, and per-id background
// fetches must run side by side.
type Policy int

const (
	// PolicySwitch cancels the in-flight run when a new trigger arrives;
	// a superseded run's result intents are dropped.
	PolicySwitch Policy = iota
	// PolicyMerge runs every trigger concurrently and independently.
	PolicyMerge
	// PolicyConcat queues triggers and runs them one at a time in order.
	PolicyConcat
)

// SnapshotFunc returns the current store state. Pipelines read options and
// auth through it at execution time rather than from captured state.
type SnapshotFunc func() store.State

// Pipeline reacts to matching intents. Run returns the intents to dispatch
// back; it must map every collaborator failure to a failure intent rather
// than returning it, so a nil or empty result is the only "nothing happened"
// signal.
type Pipeline struct {
	Name   string
	Policy Policy
	Match  func(in intent.Intent) bool
	Run    func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent
}

type runner struct {
	pipeline Pipeline

	// mu guards cancelPrev (switch policy) and stopped
	mu         sync.Mutex
	cancelPrev context.CancelFunc
	stopped    bool

	// concat policy: serializing queue
	queue chan queued
}

type queued struct {
	in intent.Intent
}

// Engine subscribes pipelines to a store. Every pipeline run happens on its
// own goroutine (or the pipeline's queue worker), so result dispatches never
// re-enter the store lock held during notification.
type Engine struct {
	store   *store.Store
	runners []*runner

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine builds an engine over the given pipelines. Call Start to begin
// processing.
func NewEngine(ctx context.Context, st *store.Store, pipelines ...Pipeline) *Engine {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if logger := logging.From(ctx); logger != nil {
		runCtx = logging.With(runCtx, logger)
	}

	e := &Engine{store: st, ctx: runCtx, cancel: cancel}
	for _, p := range pipelines {
		r := &runner{pipeline: p}
		if p.Policy == PolicyConcat {
			r.queue = make(chan queued, 64)
		}
		e.runners = append(e.runners, r)
	}
	return e
}

// Start subscribes the engine and launches the concat queue workers
func (e *Engine) Start() {
	for _, r := range e.runners {
		if r.pipeline.Policy == PolicyConcat {
			e.wg.Add(1)
			go e.concatWorker(r)
		}
	}

	e.store.Subscribe(func(in intent.Intent, _ store.State) {
		for _, r := range e.runners {
			if r.pipeline.Match(in) {
				e.trigger(r, in)
			}
		}
	})
}

// Stop cancels all in-flight runs and waits for the workers to drain
func (e *Engine) Stop() {
	e.cancel()
	for _, r := range e.runners {
		// The stopped flag and the close share r.mu with trigger, so a
		// notification racing Stop can never send on the closed queue.
		r.mu.Lock()
		r.stopped = true
		if r.queue != nil {
			close(r.queue)
		}
		r.mu.Unlock()
	}
	e.wg.Wait()
}

func (e *Engine) trigger(r *runner, in intent.Intent) {
	switch r.pipeline.Policy {
	case PolicySwitch:
		r.mu.Lock()
		if r.cancelPrev != nil {
			r.cancelPrev()
		}
		runCtx, cancel := context.WithCancel(e.ctx)
		r.cancelPrev = cancel
		r.mu.Unlock()

		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			defer cancel()
			e.run(runCtx, r, in)
		}()

	case PolicyMerge:
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			e.run(e.ctx, r, in)
		}()

	case PolicyConcat:
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.stopped {
			return
		}
		select {
		case r.queue <- queued{in: in}:
		default:
			logging.From(e.ctx).Error("pipeline queue full, dropping trigger",
				"pipeline", r.pipeline.Name, "intent", in.IntentType())
		}
	}
}

func (e *Engine) concatWorker(r *runner) {
	defer e.wg.Done()
	for q := range r.queue {
		e.run(e.ctx, r, q.in)
	}
}

func (e *Engine) run(ctx context.Context, r *runner, in intent.Intent) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.From(e.ctx).Error("panic in pipeline",
				"pipeline", r.pipeline.Name, "intent", in.IntentType(), "panic", rec)
		}
	}()

	out := r.pipeline.Run(ctx, in, e.store.Snapshot)

	// A superseded switch run must not dispatch its late results.
	if ctx.Err() != nil {
		logging.From(e.ctx).Debug("dropping results of superseded run",
			"pipeline", r.pipeline.Name, "intent", in.IntentType())
		return
	}

	for _, next := range out {
		e.store.Dispatch(next)
	}
}
