package persist

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// staleBefore is the oldest version whose snapshots are still structurally
// compatible. Anything persisted under an earlier version is discarded
// wholesale instead of carried forward.
var staleBefore = semver.MustParse("5.12.0")

// isStaleVersion reports whether snapshots from the given version must not
// be migrated. An unparseable version is not stale: it is carried forward,
// matching how the shipped migration treated malformed suffixes.
func isStaleVersion(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.LessThan(staleBefore)
}

// Migrate moves persisted slice snapshots from older app versions to the
// current one. Run once, before rehydration.
//
// Every hydrated-slice key under a non-current version is removed. Its value
// is carried forward under the current version, except that the images slice
// is always discarded on a version change to force a clean image-cache
// rebuild, and any slice persisted under a stale version is discarded. When
// images keys were dropped, the staged-image file store is purged too,
// best-effort.
func Migrate(ctx context.Context, storage interfaces.Storage, fileStore interfaces.FileStore, currentVersion string) error {
	keys, err := storage.Keys(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list storage keys", goerr.T(types.ErrTagPersistence))
	}

	logger := logging.From(ctx)
	imagesRemoved := false

	for _, key := range keys {
		slice, version, ok := DecodeKey(key)
		if !ok || !isHydratedSlice(slice) || version == currentVersion {
			continue
		}

		value, found, err := storage.GetItem(ctx, key)
		if err != nil {
			logger.Warn("failed to read old-version snapshot, dropping it",
				"key", key, "error", err)
		} else if found && slice != ImagesSlice && !isStaleVersion(version) {
			if err := storage.SetItem(ctx, EncodeKey(slice, currentVersion), value); err != nil {
				return goerr.Wrap(err, "failed to carry snapshot forward",
					goerr.T(types.ErrTagPersistence), goerr.V("slice", slice))
			}
		}

		if slice == ImagesSlice {
			imagesRemoved = true
		}

		if err := storage.RemoveItem(ctx, key); err != nil {
			return goerr.Wrap(err, "failed to remove old-version key",
				goerr.T(types.ErrTagPersistence), goerr.V("key", key))
		}

		logger.Info("migrated persisted slice",
			"slice", slice, "from", version, "to", currentVersion)
	}

	if imagesRemoved && fileStore != nil {
		if err := fileStore.ClearAllImages(ctx); err != nil {
			logger.Warn("failed to purge staged images after version change", "error", err)
		} else {
			logger.Info("purged staged images for new version", "version", currentVersion)
		}
	}

	return nil
}
