package effect_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/effect"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

type trigger struct {
	N int
}

func (trigger) IntentType() string { return "[Test] trigger" }

type result struct {
	N int
}

func (result) IntentType() string { return "[Test] result" }

// recorder collects dispatched intents of one type
type recorder struct {
	mu   sync.Mutex
	seen []intent.Intent
}

func (r *recorder) subscribe(st *store.Store) {
	st.Subscribe(func(in intent.Intent, _ store.State) {
		if _, ok := in.(result); !ok {
			return
		}
		r.mu.Lock()
		r.seen = append(r.seen, in)
		r.mu.Unlock()
	})
}

func (r *recorder) results() []result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]result, 0, len(r.seen))
	for _, in := range r.seen {
		out = append(out, in.(result))
	}
	return out
}

func matchTrigger(in intent.Intent) bool {
	_, ok := in.(trigger)
	return ok
}

func TestEngineSwitchDropsSupersededResults(t *testing.T) {
	st := store.New(store.NewState())
	rec := &recorder{}
	rec.subscribe(st)

	var calls atomic.Int32
	p := effect.Pipeline{
		Name:   "test.switch",
		Policy: effect.PolicySwitch,
		Match:  matchTrigger,
		Run: func(ctx context.Context, in intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			req := in.(trigger)
			if calls.Add(1) == 1 {
				// hold the first run until it is superseded
				<-ctx.Done()
			}
			return []intent.Intent{result{N: req.N}}
		},
	}

	e := effect.NewEngine(context.Background(), st, p)
	e.Start()

	st.Dispatch(trigger{N: 1})
	// give the first run time to start before superseding it
	for calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	st.Dispatch(trigger{N: 2})

	// wait for the second run's result before stopping, so Stop's cancel
	// cannot race it
	deadline := time.Now().Add(2 * time.Second)
	for len(rec.results()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	e.Stop()

	gt.Array(t, rec.results()).Equal([]result{{N: 2}})
}

func TestEngineConcatRunsInOrder(t *testing.T) {
	st := store.New(store.NewState())
	rec := &recorder{}
	rec.subscribe(st)

	p := effect.Pipeline{
		Name:   "test.concat",
		Policy: effect.PolicyConcat,
		Match:  matchTrigger,
		Run: func(_ context.Context, in intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			req := in.(trigger)
			// stagger so interleaving would reorder results
			time.Sleep(time.Duration(5-req.N) * time.Millisecond)
			return []intent.Intent{result{N: req.N}}
		},
	}

	e := effect.NewEngine(context.Background(), st, p)
	e.Start()

	st.Dispatch(trigger{N: 1})
	st.Dispatch(trigger{N: 2})
	st.Dispatch(trigger{N: 3})

	deadline := time.Now().Add(2 * time.Second)
	for len(rec.results()) < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	e.Stop()

	gt.Array(t, rec.results()).Equal([]result{{N: 1}, {N: 2}, {N: 3}})
}

func TestEngineMergeRunsConcurrently(t *testing.T) {
	st := store.New(store.NewState())

	// two runs must be in flight at once or neither can pass the barrier
	barrier := make(chan struct{})
	p := effect.Pipeline{
		Name:   "test.merge",
		Policy: effect.PolicyMerge,
		Match:  matchTrigger,
		Run: func(_ context.Context, in intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			select {
			case barrier <- struct{}{}:
			case <-barrier:
			}
			return nil
		},
	}

	e := effect.NewEngine(context.Background(), st, p)
	e.Start()

	st.Dispatch(trigger{N: 1})
	st.Dispatch(trigger{N: 2})

	done := make(chan struct{})
	go func() {
		e.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("merge pipeline runs did not overlap")
	}
}

func TestEngineResultsCanTriggerOtherPipelines(t *testing.T) {
	st := store.New(store.NewState())
	rec := &recorder{}
	rec.subscribe(st)

	first := effect.Pipeline{
		Name:   "test.first",
		Policy: effect.PolicyMerge,
		Match:  matchTrigger,
		Run: func(_ context.Context, _ intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			return []intent.Intent{result{N: 10}}
		},
	}

	followed := make(chan struct{})
	second := effect.Pipeline{
		Name:   "test.second",
		Policy: effect.PolicyMerge,
		Match: func(in intent.Intent) bool {
			_, ok := in.(result)
			return ok
		},
		Run: func(_ context.Context, _ intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			close(followed)
			return nil
		},
	}

	e := effect.NewEngine(context.Background(), st, first, second)
	e.Start()

	st.Dispatch(trigger{N: 1})

	select {
	case <-followed:
	case <-time.After(2 * time.Second):
		t.Fatal("second pipeline never saw the first pipeline's result")
	}
	e.Stop()
}

func TestEngineConcatIgnoresTriggersAfterStop(t *testing.T) {
	st := store.New(store.NewState())
	rec := &recorder{}
	rec.subscribe(st)

	p := effect.Pipeline{
		Name:   "test.concatStop",
		Policy: effect.PolicyConcat,
		Match:  matchTrigger,
		Run: func(_ context.Context, in intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			req := in.(trigger)
			return []intent.Intent{result{N: req.N}}
		},
	}

	e := effect.NewEngine(context.Background(), st, p)
	e.Start()
	e.Stop()

	// the subscription outlives Stop; a late dispatch must be dropped, not
	// sent on the closed queue
	st.Dispatch(trigger{N: 1})

	gt.Array(t, rec.results()).Length(0)
}

func TestEngineRecoversFromPipelinePanic(t *testing.T) {
	st := store.New(store.NewState())
	rec := &recorder{}
	rec.subscribe(st)

	panicky := effect.Pipeline{
		Name:   "test.panic",
		Policy: effect.PolicyMerge,
		Match:  matchTrigger,
		Run: func(_ context.Context, _ intent.Intent, _ effect.SnapshotFunc) []intent.Intent {
			panic("boom")
		},
	}

	e := effect.NewEngine(context.Background(), st, panicky)
	e.Start()

	st.Dispatch(trigger{N: 1})
	e.Stop()

	// the engine survived; nothing was dispatched
	gt.Array(t, rec.results()).Length(0)
}
