package images

import (
	"sort"
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/selector"
)

// SelectCallState returns the slice call state
func SelectCallState(s *State) model.CallState {
	return s.Call
}

// SelectOptions returns the pagination/filter options
func SelectOptions(s *State) model.PageOptions {
	return s.Options
}

// SelectLastMetadataFetch returns the metadata fetch timestamp
func SelectLastMetadataFetch(s *State) *time.Time {
	return s.LastMetadataFetch
}

// SelectLastFilteredThumbnailsFetch returns the filtered grid fetch timestamp
func SelectLastFilteredThumbnailsFetch(s *State) *time.Time {
	return s.LastFilteredThumbnailsFetch
}

// SelectLastAlbumCoversFetch returns the album cover strip fetch timestamp
func SelectLastAlbumCoversFetch(s *State) *time.Time {
	return s.LastAlbumCoversFetch
}

// SelectImageByID looks up a single image
func SelectImageByID(s *State, id types.ImageID) (model.Image, bool) {
	return s.Images.Get(id)
}

// SelectNewImageFormData returns the staged form data for an image id
func SelectNewImageFormData(s *State, id types.ImageID) (model.ImageFormData, bool) {
	fd, ok := s.NewImagesFormData[id]
	return fd, ok
}

// SelectImagesByAlbum returns the images of an album ordered by their album
// ordinality
func SelectImagesByAlbum(s *State, album types.Album) []model.Image {
	var out []model.Image
	for _, img := range s.Images.All() {
		if img.Album == album {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AlbumOrdinality < out[j].AlbumOrdinality
	})
	return out
}

// SelectAllAlbums returns the distinct album names in first-seen order,
// recomputed only when the slice reference changes
var SelectAllAlbums = selector.Memo1(func(s *State) []types.Album {
	seen := map[types.Album]struct{}{}
	var out []types.Album
	for _, img := range s.Images.All() {
		if _, ok := seen[img.Album]; ok {
			continue
		}
		seen[img.Album] = struct{}{}
		out = append(out, img.Album)
	}
	return out
})

// SelectAlbumCoverIDs returns the ids of all album cover images
var SelectAlbumCoverIDs = selector.Memo1(func(s *State) []types.ImageID {
	var out []types.ImageID
	for _, img := range s.Images.All() {
		if img.AlbumCover {
			out = append(out, img.ID)
		}
	}
	return out
})

// SelectIDsWithMissingOrExpiredThumbnails returns the subset of the supplied
// context ids whose thumbnail URL is absent or already expired. Ids not
// present in the slice are skipped: without metadata there is nothing to
// fetch a thumbnail for.
func SelectIDsWithMissingOrExpiredThumbnails(s *State, contextIDs []types.ImageID, now time.Time) []types.ImageID {
	var out []types.ImageID
	for _, id := range contextIDs {
		img, ok := s.Images.Get(id)
		if !ok {
			continue
		}
		if !img.HasFreshThumbnail(now) {
			out = append(out, id)
		}
	}
	return out
}

// SelectBodyImageIDsNeedingMainURL returns the ids referenced by an article
// body whose main URL is absent or expired
func SelectBodyImageIDsNeedingMainURL(s *State, bodyImageIDs []types.ImageID, now time.Time) []types.ImageID {
	var out []types.ImageID
	for _, id := range bodyImageIDs {
		img, ok := s.Images.Get(id)
		if !ok {
			continue
		}
		if !img.HasFreshMainURL(now) {
			out = append(out, id)
		}
	}
	return out
}
