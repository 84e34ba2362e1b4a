package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// FileStore is an in-memory image staging store
type FileStore struct {
	mu     sync.RWMutex
	staged map[types.ImageID]model.StagedImage
}

var _ interfaces.FileStore = &FileStore{}

// NewFileStore returns an empty staging store
func NewFileStore() *FileStore {
	return &FileStore{staged: map[types.ImageID]model.StagedImage{}}
}

// PutImage stages an image for upload
func (f *FileStore) PutImage(_ context.Context, img model.StagedImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged[img.ID] = img
	return nil
}

func (f *FileStore) GetImage(_ context.Context, id types.ImageID) (*model.StagedImage, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	img, ok := f.staged[id]
	if !ok {
		return nil, goerr.New("staged image not found",
			goerr.T(types.ErrTagPersistence), goerr.V("imageID", id))
	}
	return &img, nil
}

func (f *FileStore) GetAllImages(_ context.Context) ([]model.StagedImage, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]model.StagedImage, 0, len(f.staged))
	for _, img := range f.staged {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FileStore) ClearAllImages(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = map[types.ImageID]model.StagedImage{}
	return nil
}
