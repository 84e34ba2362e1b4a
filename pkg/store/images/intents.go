package images

import (
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

type FetchMetadataRequested struct {
	Background bool
}

func (FetchMetadataRequested) IntentType() string { return "[Images] Fetch all images metadata requested" }

type FetchMetadataSucceeded struct {
	Images []model.Image
}

func (FetchMetadataSucceeded) IntentType() string { return "[Images] Fetch all images metadata succeeded" }

type FetchMetadataFailed struct {
	Error model.ErrorInfo
}

func (FetchMetadataFailed) IntentType() string { return "[Images] Fetch all images metadata failed" }

type FetchFilteredThumbnailsRequested struct {
	Background bool
}

func (FetchFilteredThumbnailsRequested) IntentType() string {
	return "[Images] Fetch filtered thumbnails requested"
}

type FetchFilteredThumbnailsSucceeded struct {
	Images        []model.Image
	FilteredCount int
	TotalCount    int
}

func (FetchFilteredThumbnailsSucceeded) IntentType() string {
	return "[Images] Fetch filtered thumbnails succeeded"
}

type FetchFilteredThumbnailsFailed struct {
	Error model.ErrorInfo
}

func (FetchFilteredThumbnailsFailed) IntentType() string {
	return "[Images] Fetch filtered thumbnails failed"
}

type FetchBatchThumbnailsRequested struct {
	ImageIDs []types.ImageID
	Context  types.ImageFetchContext
}

func (FetchBatchThumbnailsRequested) IntentType() string {
	return "[Images] Fetch batch thumbnails requested"
}

type FetchBatchThumbnailsSucceeded struct {
	Images  []model.Image
	Context types.ImageFetchContext
}

func (FetchBatchThumbnailsSucceeded) IntentType() string {
	return "[Images] Fetch batch thumbnails succeeded"
}

type FetchBatchThumbnailsFailed struct {
	Error   model.ErrorInfo
	Context types.ImageFetchContext
}

func (FetchBatchThumbnailsFailed) IntentType() string {
	return "[Images] Fetch batch thumbnails failed"
}

type FetchAlbumThumbnailsRequested struct {
	Album types.Album
}

func (FetchAlbumThumbnailsRequested) IntentType() string {
	return "[Images] Fetch album thumbnails requested"
}

type FetchMainImageRequested struct {
	ImageID    types.ImageID
	Background bool
}

func (FetchMainImageRequested) IntentType() string { return "[Images] Fetch main image requested" }

type FetchMainImageSucceeded struct {
	Image model.Image
}

func (FetchMainImageSucceeded) IntentType() string { return "[Images] Fetch main image succeeded" }

type FetchMainImageFailed struct {
	Error model.ErrorInfo
}

func (FetchMainImageFailed) IntentType() string { return "[Images] Fetch main image failed" }

type AddImageRequested struct {
	ImageID types.ImageID
}

func (AddImageRequested) IntentType() string { return "[Images] Add image requested" }

type AddImageSucceeded struct {
	Image model.Image
}

func (AddImageSucceeded) IntentType() string { return "[Images] Add image succeeded" }

type AddImageFailed struct {
	Error model.ErrorInfo
}

func (AddImageFailed) IntentType() string { return "[Images] Add image failed" }

type AddImagesRequested struct{}

func (AddImagesRequested) IntentType() string { return "[Images] Add images requested" }

type AddImagesSucceeded struct {
	Images []model.Image
}

func (AddImagesSucceeded) IntentType() string { return "[Images] Add images succeeded" }

type AddImagesFailed struct {
	Error model.ErrorInfo
}

func (AddImagesFailed) IntentType() string { return "[Images] Add images failed" }

type UpdateImageRequested struct {
	ImageID types.ImageID
}

func (UpdateImageRequested) IntentType() string { return "[Images] Update image requested" }

type UpdateImageSucceeded struct {
	Image model.Image
}

func (UpdateImageSucceeded) IntentType() string { return "[Images] Update image succeeded" }

type UpdateImageFailed struct {
	Image model.Image
	Error model.ErrorInfo
}

func (UpdateImageFailed) IntentType() string { return "[Images] Update image failed" }

type UpdateAlbumRequested struct {
	Album types.Album
}

func (UpdateAlbumRequested) IntentType() string { return "[Images] Update album requested" }

type UpdateAlbumSucceeded struct {
	Album         types.Album
	NewImages     []model.Image
	UpdatedImages []model.Image
}

func (UpdateAlbumSucceeded) IntentType() string { return "[Images] Update album succeeded" }

type UpdateAlbumFailed struct {
	Album types.Album
	Error model.ErrorInfo
}

func (UpdateAlbumFailed) IntentType() string { return "[Images] Update album failed" }

type DeleteImageRequested struct {
	Image model.Image
}

func (DeleteImageRequested) IntentType() string { return "[Images] Delete image requested" }

type DeleteImageSucceeded struct {
	Image model.Image
}

func (DeleteImageSucceeded) IntentType() string { return "[Images] Delete image succeeded" }

type DeleteImageFailed struct {
	Image model.Image
	Error model.ErrorInfo
}

func (DeleteImageFailed) IntentType() string { return "[Images] Delete image failed" }

type DeleteAlbumRequested struct {
	Album types.Album
}

func (DeleteAlbumRequested) IntentType() string { return "[Images] Delete album requested" }

type DeleteAlbumSucceeded struct {
	Album    types.Album
	ImageIDs []types.ImageID
}

func (DeleteAlbumSucceeded) IntentType() string { return "[Images] Delete album succeeded" }

type DeleteAlbumFailed struct {
	Album types.Album
	Error model.ErrorInfo
}

func (DeleteAlbumFailed) IntentType() string { return "[Images] Delete album failed" }

type AlbumCoverSwitchSucceeded struct {
	Image model.Image
}

func (AlbumCoverSwitchSucceeded) IntentType() string {
	return "[Images] Automatic album cover switch succeeded"
}

type AlbumCoverSwitchFailed struct {
	Album types.Album
	Error model.ErrorInfo
}

func (AlbumCoverSwitchFailed) IntentType() string {
	return "[Images] Automatic album cover switch failed"
}

type PaginationOptionsChanged struct {
	Options model.PageOptions
}

func (PaginationOptionsChanged) IntentType() string { return "[Images] Pagination options changed" }

type StageImageRequested struct {
	Filename string
	Data     []byte
}

func (StageImageRequested) IntentType() string { return "[Images] Stage new image requested" }

// ImageStaged carries the freshly minted id the form keeps editing under
// until the upload is requested.
type ImageStaged struct {
	ImageID  types.ImageID
	Filename string
}

func (ImageStaged) IntentType() string { return "[Images] New image staged" }

type StageImageFailed struct {
	Error model.ErrorInfo
}

func (StageImageFailed) IntentType() string { return "[Images] Stage new image failed" }

type NewImageFormDataChanged struct {
	ImageID  types.ImageID
	FormData model.ImageFormData
}

func (NewImageFormDataChanged) IntentType() string { return "[Images] New image form data changed" }

type ImageFormDataRestored struct{}

func (ImageFormDataRestored) IntentType() string { return "[Images] Image form data restored" }

type AlbumFormDataRestored struct{}

func (AlbumFormDataRestored) IntentType() string { return "[Images] Album form data restored" }
