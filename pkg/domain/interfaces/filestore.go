package interfaces

import (
	"context"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// FileStore is the local staging store holding binary image data selected in
// the UI before it is uploaded. Pipelines must check the returned error
// before treating a result as valid data; a failed read is reported to the
// owning slice, never thrown.
type FileStore interface {
	PutImage(ctx context.Context, img model.StagedImage) error
	GetImage(ctx context.Context, id types.ImageID) (*model.StagedImage, error)
	GetAllImages(ctx context.Context) ([]model.StagedImage, error)
	ClearAllImages(ctx context.Context) error
}
