package persist

import (
	"context"
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// ResetLoadingStates returns a meta reducer that, once on rehydration
// completion, forces any slice stuck in a foreground loading status back to
// idle. A loading status can only have been persisted from an interrupted
// session; left in place it renders as a spinner that never resolves.
// Slices that are idle, errored or background-loading are left alone, and
// when nothing needed a reset the input tree is returned unchanged, same
// slice pointers and all.
func ResetLoadingStates() store.MetaReducer {
	return func(next store.Reducer) store.Reducer {
		return func(s store.State, in intent.Intent) store.State {
			out := next(s, in)
			if _, ok := in.(intent.RehydrationCompleted); !ok {
				return out
			}

			if out.Articles.Call.IsLoading() {
				reset := *out.Articles
				reset.Call = model.IdleCall()
				out.Articles = &reset
			}
			if out.Auth.Call.IsLoading() {
				reset := *out.Auth
				reset.Call = model.IdleCall()
				out.Auth = &reset
			}
			if out.Events.Call.IsLoading() {
				reset := *out.Events
				reset.Call = model.IdleCall()
				out.Events = &reset
			}
			if out.Images.Call.IsLoading() {
				reset := *out.Images
				reset.Call = model.IdleCall()
				out.Images = &reset
			}
			if out.Members.Call.IsLoading() {
				reset := *out.Members
				reset.Call = model.IdleCall()
				out.Members = &reset
			}

			return out
		}
	}
}

// ValidateSession returns a meta reducer that, once on rehydration
// completion, clears a session that expired while the process was down.
// No-op (same auth pointer) when there is no session start time or the
// session is still within maxAge.
func ValidateSession(ctx context.Context, clock interfaces.Clock, maxAge time.Duration) store.MetaReducer {
	return func(next store.Reducer) store.Reducer {
		return func(s store.State, in intent.Intent) store.State {
			out := next(s, in)
			if _, ok := in.(intent.RehydrationCompleted); !ok {
				return out
			}

			if out.Auth.SessionStartTime == nil || !out.Auth.SessionExpired(clock.Now(), maxAge) {
				return out
			}

			logging.From(ctx).Info("session expired during offline period, clearing auth state",
				"sessionStart", *out.Auth.SessionStartTime)

			cleared := *out.Auth
			cleared.User = nil
			cleared.SessionStartTime = nil
			out.Auth = &cleared

			return out
		}
	}
}

// Wrap composes the persistence meta reducers in their required order: the
// loading reset runs first, session validation second, and Sync wraps both
// so the persisted snapshot is the sanitized one.
func Wrap(ctx context.Context, storage interfaces.Storage, clock interfaces.Clock, currentVersion string, maxSessionAge time.Duration) []store.MetaReducer {
	return []store.MetaReducer{
		Sync(ctx, storage, currentVersion),
		ValidateSession(ctx, clock, maxSessionAge),
		ResetLoadingStates(),
	}
}

// Bootstrap builds a fully persisted store: it migrates old-version records,
// rehydrates the current-version ones into the initial state, wires the
// persistence meta chain around the root reducer (extra meta reducers go
// outermost) and fires the lifecycle intents so the sanitizers run exactly
// once before the first real dispatch.
func Bootstrap(ctx context.Context, storage interfaces.Storage, fileStore interfaces.FileStore, clock interfaces.Clock, currentVersion string, maxSessionAge time.Duration, extra ...store.MetaReducer) (*store.Store, error) {
	if err := Migrate(ctx, storage, fileStore, currentVersion); err != nil {
		return nil, err
	}

	initial := Rehydrate(ctx, storage, currentVersion, store.NewState())

	metas := append(append([]store.MetaReducer{}, extra...),
		Wrap(ctx, storage, clock, currentVersion, maxSessionAge)...)

	st := store.New(initial, metas...)
	st.Dispatch(intent.Init{})
	st.Dispatch(intent.RehydrationCompleted{})

	return st, nil
}
