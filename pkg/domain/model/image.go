package model

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// Image is the metadata of a gallery image plus lazily fetched, transient
// URL fields. The URL fields are never persisted: presigned URLs expire, so
// a rehydrated slice always starts without them and the background fetch
// pipelines repopulate on demand.
type Image struct {
	ID               types.ImageID    `json:"id"`
	Filename         string           `json:"filename"`
	Caption          string           `json:"caption"`
	Album            types.Album      `json:"album"`
	AlbumCover       bool             `json:"albumCover"`
	AlbumOrdinality  int              `json:"albumOrdinality"`
	FileSize         int64            `json:"fileSize,omitempty"`
	ModificationInfo ModificationInfo `json:"modificationInfo"`

	// Transient, populated by background fetches only
	MainURL       string     `json:"-"`
	ThumbnailURL  string     `json:"-"`
	URLExpiration *time.Time `json:"-"`
}

// HasFreshThumbnail reports whether the thumbnail URL is present and not yet
// expired at the given time
func (i Image) HasFreshThumbnail(now time.Time) bool {
	if i.ThumbnailURL == "" {
		return false
	}
	return i.URLExpiration == nil || i.URLExpiration.After(now)
}

// HasFreshMainURL reports whether the main URL is present and not yet expired
func (i Image) HasFreshMainURL(now time.Time) bool {
	if i.MainURL == "" {
		return false
	}
	return i.URLExpiration == nil || i.URLExpiration.After(now)
}

// ImageFormData is the editable subset of an image held by the image form
type ImageFormData struct {
	Caption         string      `json:"caption"`
	Album           types.Album `json:"album"`
	AlbumCover      bool        `json:"albumCover"`
	AlbumOrdinality int         `json:"albumOrdinality"`
}

// StagedImage is a newly selected image waiting in the local staging file
// store before upload
type StagedImage struct {
	ID       types.ImageID
	Filename string
	Data     []byte
}
