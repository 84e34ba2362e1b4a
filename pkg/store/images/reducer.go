package images

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/entity"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// Reduce applies an intent to the images slice. Unknown intents return the
// identical input pointer.
func Reduce(s *State, in intent.Intent) *State {
	switch v := in.(type) {
	case FetchMetadataRequested:
		return withCall(s, requestedCall(v.Background))

	case FetchMetadataSucceeded:
		// Metadata is authoritative for which images exist, but the incoming
		// records never carry URLs. Rebuild the collection from the response
		// and graft the transient URL fields of any entity we already hold.
		next := *s
		ids := make([]types.ImageID, 0, len(v.Images))
		entities := make(map[types.ImageID]model.Image, len(v.Images))
		for _, incoming := range v.Images {
			if existing, ok := s.Images.Get(incoming.ID); ok {
				incoming = graftTransient(existing, incoming)
			}
			ids = append(ids, incoming.ID)
			entities[incoming.ID] = incoming
		}
		next.Images = entity.Collection[types.ImageID, model.Image]{IDs: ids, Entities: entities}
		next.TotalCount = len(v.Images)
		next.Call = model.IdleCall()
		now := time.Now().UTC()
		next.LastMetadataFetch = &now
		return &next

	case FetchMetadataFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case FetchFilteredThumbnailsRequested:
		return withCall(s, requestedCall(v.Background))

	case FetchFilteredThumbnailsSucceeded:
		next := *s
		next.Images = mergeMany(s.Images, v.Images)
		next.FilteredIDs = idsOf(v.Images)
		filtered := v.FilteredCount
		next.FilteredCount = &filtered
		next.TotalCount = v.TotalCount
		next.Call = model.IdleCall()
		now := time.Now().UTC()
		next.LastFilteredThumbnailsFetch = &now
		return &next

	case FetchFilteredThumbnailsFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case FetchBatchThumbnailsRequested:
		return withCall(s, model.BackgroundLoadingCall(time.Now().UTC()))

	case FetchBatchThumbnailsSucceeded:
		next := *s
		next.Images = mergeKnown(s.Images, v.Images)
		next.Call = model.IdleCall()
		if v.Context == types.FetchContextAlbumCovers {
			now := time.Now().UTC()
			next.LastAlbumCoversFetch = &now
		}
		return &next

	case FetchBatchThumbnailsFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case FetchMainImageRequested:
		return withCall(s, requestedCall(v.Background))

	case FetchMainImageSucceeded:
		next := *s
		next.Images = mergeKnown(s.Images, []model.Image{v.Image})
		next.Call = model.IdleCall()
		return &next

	case FetchMainImageFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case AddImageRequested, AddImagesRequested, UpdateImageRequested,
		UpdateAlbumRequested, DeleteImageRequested, DeleteAlbumRequested:
		return withCall(s, model.LoadingCall(time.Now().UTC()))

	case AddImageSucceeded:
		next := *s
		next.Images = s.Images.Upsert(v.Image.ID, v.Image)
		next.Call = model.IdleCall()
		return &next

	case AddImageFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case AddImagesSucceeded:
		next := *s
		next.Images = mergeMany(s.Images, v.Images)
		next.Call = model.IdleCall()
		return &next

	case AddImagesFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case UpdateImageSucceeded:
		next := *s
		next.Images = updatePreservingTransient(s.Images, v.Image)
		next.Call = model.IdleCall()
		return &next

	case UpdateImageFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case UpdateAlbumSucceeded:
		next := *s
		merged := mergeMany(s.Images, v.NewImages)
		for _, updated := range v.UpdatedImages {
			merged = updatePreservingTransient(merged, updated)
		}
		next.Images = merged
		next.Call = model.IdleCall()
		return &next

	case UpdateAlbumFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case DeleteImageSucceeded:
		next := *s
		next.Images = s.Images.Remove(v.Image.ID)
		next.FilteredIDs = removeIDs(s.FilteredIDs, []types.ImageID{v.Image.ID})
		next.Call = model.IdleCall()
		return &next

	case DeleteImageFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case DeleteAlbumSucceeded:
		next := *s
		next.Images = s.Images.RemoveMany(v.ImageIDs)
		next.FilteredIDs = removeIDs(s.FilteredIDs, v.ImageIDs)
		next.Call = model.IdleCall()
		return &next

	case DeleteAlbumFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case AlbumCoverSwitchSucceeded:
		next := *s
		next.Images = updatePreservingTransient(s.Images, v.Image)
		next.Call = model.IdleCall()
		return &next

	case AlbumCoverSwitchFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case PaginationOptionsChanged:
		next := *s
		next.Options = v.Options
		return &next

	case NewImageFormDataChanged:
		next := *s
		next.NewImagesFormData = cloneFormData(s.NewImagesFormData)
		next.NewImagesFormData[v.ImageID] = v.FormData
		return &next

	case ImageStaged:
		// Seed an empty form entry under the minted id so the form has a
		// key to edit before the upload is requested.
		next := *s
		next.NewImagesFormData = cloneFormData(s.NewImagesFormData)
		next.NewImagesFormData[v.ImageID] = model.ImageFormData{}
		return &next

	case StageImageFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case ImageFormDataRestored, AlbumFormDataRestored:
		next := *s
		next.NewImagesFormData = map[types.ImageID]model.ImageFormData{}
		return &next

	default:
		return s
	}
}

func requestedCall(background bool) model.CallState {
	now := time.Now().UTC()
	if background {
		return model.BackgroundLoadingCall(now)
	}
	return model.LoadingCall(now)
}

func withCall(s *State, call model.CallState) *State {
	next := *s
	next.Call = call
	return &next
}

// graftTransient keeps the lazily fetched URL fields of an existing entity
// when a metadata-only record replaces it
func graftTransient(existing, incoming model.Image) model.Image {
	if incoming.MainURL == "" {
		incoming.MainURL = existing.MainURL
	}
	if incoming.ThumbnailURL == "" {
		incoming.ThumbnailURL = existing.ThumbnailURL
	}
	if incoming.URLExpiration == nil {
		incoming.URLExpiration = existing.URLExpiration
	}
	return incoming
}

// mergeMany upserts incoming images, grafting transient fields both ways
func mergeMany(c entity.Collection[types.ImageID, model.Image], list []model.Image) entity.Collection[types.ImageID, model.Image] {
	ids := make([]types.ImageID, 0, len(list))
	entities := make(map[types.ImageID]model.Image, len(list))
	for _, incoming := range list {
		if existing, ok := c.Get(incoming.ID); ok {
			incoming = graftTransient(existing, incoming)
		}
		ids = append(ids, incoming.ID)
		entities[incoming.ID] = incoming
	}
	return c.UpsertMany(ids, entities)
}

// mergeKnown merges incoming records into entities that already exist and
// silently skips unknown ids: a URL for an image whose metadata was deleted
// meanwhile must not resurrect it
func mergeKnown(c entity.Collection[types.ImageID, model.Image], list []model.Image) entity.Collection[types.ImageID, model.Image] {
	next := c
	for _, incoming := range list {
		existing, ok := next.Get(incoming.ID)
		if !ok {
			continue
		}
		next = next.Update(incoming.ID, graftTransient(existing, incoming))
	}
	return next
}

// updatePreservingTransient replaces the metadata of an existing entity while
// keeping its URL fields. Unknown ids are a no-op.
func updatePreservingTransient(c entity.Collection[types.ImageID, model.Image], incoming model.Image) entity.Collection[types.ImageID, model.Image] {
	existing, ok := c.Get(incoming.ID)
	if !ok {
		return c
	}
	return c.Update(incoming.ID, graftTransient(existing, incoming))
}

func idsOf(list []model.Image) []types.ImageID {
	ids := make([]types.ImageID, 0, len(list))
	for _, img := range list {
		ids = append(ids, img.ID)
	}
	return ids
}

func removeIDs(ids []types.ImageID, drop []types.ImageID) []types.ImageID {
	dropSet := make(map[types.ImageID]struct{}, len(drop))
	for _, id := range drop {
		dropSet[id] = struct{}{}
	}
	out := make([]types.ImageID, 0, len(ids))
	for _, id := range ids {
		if _, ok := dropSet[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func cloneFormData(src map[types.ImageID]model.ImageFormData) map[types.ImageID]model.ImageFormData {
	out := make(map[types.ImageID]model.ImageFormData, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
