package images

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/entity"
)

// State is the images slice. Metadata, the filtered thumbnail grid and the
// album-cover strip each track their own fetch timestamp; the presigned URL
// fields on the entities are transient and never persisted.
type State struct {
	Images                      entity.Collection[types.ImageID, model.Image] `json:"images"`
	FilteredIDs                 []types.ImageID                               `json:"filteredIds"`
	Call                        model.CallState                               `json:"callState"`
	Options                     model.PageOptions                             `json:"options"`
	FilteredCount               *int                                          `json:"filteredCount"`
	TotalCount                  int                                           `json:"totalCount"`
	LastMetadataFetch           *time.Time                                    `json:"lastMetadataFetch"`
	LastFilteredThumbnailsFetch *time.Time                                    `json:"lastFilteredThumbnailsFetch"`
	LastAlbumCoversFetch        *time.Time                                    `json:"lastAlbumCoversFetch"`
	NewImagesFormData           map[types.ImageID]model.ImageFormData         `json:"newImagesFormData"`
}

// NewState returns the initial images slice
func NewState() *State {
	return &State{
		Images:            entity.NewCollection[types.ImageID, model.Image](),
		Call:              model.IdleCall(),
		Options:           model.DefaultPageOptions("album", model.SortAscending),
		NewImagesFormData: map[types.ImageID]model.ImageFormData{},
	}
}
