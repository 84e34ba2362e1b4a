package store

import (
	"context"
	"sync"

	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// Subscriber receives every dispatched intent together with the state that
// resulted from it. Subscribers run synchronously inside Dispatch and must
// not call Dispatch themselves; hand follow-up intents to a goroutine.
type Subscriber func(in intent.Intent, next State)

// Store serializes all state transitions through a single mutex. Dispatch
// reduces and notifies atomically, so subscribers observe intents in
// dispatch order and never see a torn tree.
type Store struct {
	mu     sync.Mutex
	state  State
	reduce Reducer
	subs   []Subscriber
}

// New builds a store over the given initial state. Meta reducers wrap
// RootReduce outermost-first: the first one sees the intent before any
// slice reducer does and sees the reduced tree last.
func New(initial State, metas ...MetaReducer) *Store {
	reduce := Reducer(RootReduce)
	for i := len(metas) - 1; i >= 0; i-- {
		reduce = metas[i](reduce)
	}
	return &Store{state: initial, reduce: reduce}
}

// Dispatch applies the intent and notifies subscribers before returning
func (s *Store) Dispatch(in intent.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.reduce(s.state, in)
	for _, sub := range s.subs {
		sub(in, s.state)
	}
}

// Snapshot returns the current tree. The slice pointers inside are shared
// immutable values; callers must not mutate through them.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for all future dispatches
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// IntentLog returns a meta reducer that records every dispatched intent
func IntentLog(ctx context.Context) MetaReducer {
	return func(next Reducer) Reducer {
		return func(s State, in intent.Intent) State {
			logging.From(ctx).Debug("dispatch", "intent", in.IntentType())
			return next(s, in)
		}
	}
}
