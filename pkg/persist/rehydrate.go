package persist

import (
	"context"
	"encoding/json"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// Rehydrate merges persisted current-version snapshots into the initial
// state. A missing key keeps the slice's default; a snapshot that fails to
// decode is logged and treated like a missing key, so one corrupt record
// never blocks startup.
func Rehydrate(ctx context.Context, storage interfaces.Storage, currentVersion string, initial store.State) store.State {
	next := initial

	hydrateSlice(ctx, storage, currentVersion, AppSlice, &next.App)
	hydrateSlice(ctx, storage, currentVersion, ArticlesSlice, &next.Articles)
	hydrateSlice(ctx, storage, currentVersion, AuthSlice, &next.Auth)
	hydrateSlice(ctx, storage, currentVersion, EventsSlice, &next.Events)
	hydrateSlice(ctx, storage, currentVersion, ImagesSlice, &next.Images)
	hydrateSlice(ctx, storage, currentVersion, MembersSlice, &next.Members)

	return next
}

func hydrateSlice[T any](ctx context.Context, storage interfaces.Storage, version, name string, dst **T) {
	logger := logging.From(ctx)

	value, ok, err := storage.GetItem(ctx, EncodeKey(name, version))
	if err != nil {
		logger.Warn("failed to read persisted slice", "slice", name, "error", err)
		return
	}
	if !ok {
		return
	}

	restored := new(T)
	if err := json.Unmarshal([]byte(value), restored); err != nil {
		logger.Warn("discarding corrupt persisted slice", "slice", name, "error", err)
		return
	}

	*dst = restored
	logger.Debug("rehydrated slice", "slice", name)
}
