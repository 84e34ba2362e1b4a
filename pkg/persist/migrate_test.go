package persist_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/persist"
	"github.com/lakecity-club/clubstate/pkg/repository/memory"
)

func TestMigrateCarriesSnapshotForward(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	oldKey := persist.EncodeKey(persist.ArticlesSlice, "5.12.0")
	gt.NoError(t, storage.SetItem(ctx, oldKey, `{"totalCount":3}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, nil, "5.13.0")).Required()

	_, found, err := storage.GetItem(ctx, oldKey)
	gt.NoError(t, err)
	gt.Bool(t, found).False()

	value, found, err := storage.GetItem(ctx, persist.EncodeKey(persist.ArticlesSlice, "5.13.0"))
	gt.NoError(t, err)
	gt.Bool(t, found).True()
	gt.Value(t, value).Equal(`{"totalCount":3}`)
}

func TestMigrateCurrentVersionUntouched(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	key := persist.EncodeKey(persist.AuthSlice, "5.13.0")
	gt.NoError(t, storage.SetItem(ctx, key, `{"hasCode":false}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, nil, "5.13.0")).Required()

	value, found, err := storage.GetItem(ctx, key)
	gt.NoError(t, err)
	gt.Bool(t, found).True()
	gt.Value(t, value).Equal(`{"hasCode":false}`)
}

func TestMigrateAlwaysDiscardsImagesSlice(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()
	fileStore := memory.NewFileStore()

	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.ImagesSlice, "5.12.0"), `{"totalCount":9}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, fileStore, "5.13.0")).Required()

	_, found, err := storage.GetItem(ctx, persist.EncodeKey(persist.ImagesSlice, "5.13.0"))
	gt.NoError(t, err)
	gt.Bool(t, found).False()

	keys, err := storage.Keys(ctx)
	gt.NoError(t, err)
	gt.Array(t, keys).Length(0)
}

func TestMigratePurgesFileStoreWhenImagesDropped(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()
	fileStore := memory.NewFileStore()

	gt.NoError(t, fileStore.PutImage(ctx, stagedImage("s1"))).Required()
	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.ImagesSlice, "5.12.0"), `{}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, fileStore, "5.13.0")).Required()

	staged, err := fileStore.GetAllImages(ctx)
	gt.NoError(t, err)
	gt.Array(t, staged).Length(0)
}

func TestMigrateFileStoreKeptWithoutImagesKeys(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()
	fileStore := memory.NewFileStore()

	gt.NoError(t, fileStore.PutImage(ctx, stagedImage("s1"))).Required()
	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.EventsSlice, "5.12.0"), `{}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, fileStore, "5.13.0")).Required()

	staged, err := fileStore.GetAllImages(ctx)
	gt.NoError(t, err)
	gt.Array(t, staged).Length(1)
}

func TestMigrateDiscardsStaleVersionsWholesale(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.ArticlesSlice, "5.11.0"), `{"totalCount":3}`)).Required()
	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.AuthSlice, "4.9.2"), `{"hasCode":true}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, nil, "5.12.0")).Required()

	keys, err := storage.Keys(ctx)
	gt.NoError(t, err)
	gt.Array(t, keys).Length(0)
}

func TestMigrateCarriesUnparseableVersionForward(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	gt.NoError(t, storage.SetItem(ctx, persist.EncodeKey(persist.MembersSlice, "garbage"), `{"totalCount":8}`)).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, nil, "5.13.0")).Required()

	value, found, err := storage.GetItem(ctx, persist.EncodeKey(persist.MembersSlice, "5.13.0"))
	gt.NoError(t, err)
	gt.Bool(t, found).True()
	gt.Value(t, value).Equal(`{"totalCount":8}`)

	_, found, err = storage.GetItem(ctx, persist.EncodeKey(persist.MembersSlice, "garbage"))
	gt.NoError(t, err)
	gt.Bool(t, found).False()
}

func TestMigrateIgnoresForeignKeys(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	gt.NoError(t, storage.SetItem(ctx, "someOtherApp_v1.0.0", "keep")).Required()
	gt.NoError(t, storage.SetItem(ctx, "plainKey", "keep")).Required()

	gt.NoError(t, persist.Migrate(ctx, storage, nil, "5.13.0")).Required()

	keys, err := storage.Keys(ctx)
	gt.NoError(t, err)
	gt.Array(t, keys).Length(2)
}
