package persist

import (
	"context"
	"encoding/json"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// Sync returns a meta reducer that writes every changed slice back to
// durable storage under the current-version key. Change detection is the
// slice pointer: a reducer that ignored the intent returned the identical
// pointer and costs nothing here. Write failures are logged, never fatal;
// storage is a cache, not the source of truth.
//
// Register Sync outside the sanitizers so the persisted snapshot is the
// sanitized one.
func Sync(ctx context.Context, storage interfaces.Storage, currentVersion string) store.MetaReducer {
	return func(next store.Reducer) store.Reducer {
		return func(s store.State, in intent.Intent) store.State {
			out := next(s, in)

			syncSlice(ctx, storage, currentVersion, AppSlice, s.App, out.App)
			syncSlice(ctx, storage, currentVersion, ArticlesSlice, s.Articles, out.Articles)
			syncSlice(ctx, storage, currentVersion, AuthSlice, s.Auth, out.Auth)
			syncSlice(ctx, storage, currentVersion, EventsSlice, s.Events, out.Events)
			syncSlice(ctx, storage, currentVersion, ImagesSlice, s.Images, out.Images)
			syncSlice(ctx, storage, currentVersion, MembersSlice, s.Members, out.Members)

			return out
		}
	}
}

func syncSlice[T any](ctx context.Context, storage interfaces.Storage, version, name string, prev, next *T) {
	if prev == next {
		return
	}

	logger := logging.From(ctx)

	raw, err := json.Marshal(next)
	if err != nil {
		logger.Warn("failed to serialize slice for persistence", "slice", name, "error", err)
		return
	}

	if err := storage.SetItem(ctx, EncodeKey(name, version), string(raw)); err != nil {
		logger.Warn("failed to persist slice", "slice", name, "error", err)
	}
}
