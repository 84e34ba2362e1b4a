package effect

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

// verifyUploadCounts is the post-response integrity guard: the server
// reported counts must match the upload exactly, otherwise the call is a
// failure regardless of its transport-level success.
func verifyUploadCounts(expectedAdded, expectedUpdated int, res *interfaces.ImagesUploadResult) error {
	added, updated := len(res.NewImages), len(res.UpdatedImages)
	if added == expectedAdded && updated == expectedUpdated {
		return nil
	}
	return goerr.New(
		fmt.Sprintf("Expected %d images to be added and %d images to be updated, but backend reported %d added and %d updated.",
			expectedAdded, expectedUpdated, added, updated),
		goerr.T(types.ErrTagIntegrity),
	)
}

// ImagePipelines returns the gallery workflows. Fetches switch, per-batch
// and per-id background fetches merge, and the staging-store-backed
// mutations concat. All add/update calls run the upload-count integrity
// guard before a success intent is emitted.
func ImagePipelines(api interfaces.API, fileStore interfaces.FileStore, clock interfaces.Clock) []Pipeline {
	return []Pipeline{
		{
			Name:   "images.fetchMetadata",
			Policy: PolicySwitch,
			Match:  matchType[images.FetchMetadataRequested](),
			Run: func(ctx context.Context, _ intent.Intent, _ SnapshotFunc) []intent.Intent {
				metadata, err := api.Images().GetAllImagesMetadata(ctx)
				if err != nil {
					return fail(images.FetchMetadataFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.FetchMetadataSucceeded{Images: metadata})
			},
		},
		{
			Name:   "images.fetchFilteredThumbnails",
			Policy: PolicySwitch,
			Match:  matchType[images.FetchFilteredThumbnailsRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				opts := snap().Images.Options
				page, err := api.Images().GetFilteredThumbnails(ctx, opts)
				if err != nil {
					return fail(images.FetchFilteredThumbnailsFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.FetchFilteredThumbnailsSucceeded{
					Images:        page.Items,
					FilteredCount: count(page.FilteredCount, len(page.Items)),
					TotalCount:    page.TotalCount,
				})
			},
		},
		{
			Name:   "images.fetchBatchThumbnails",
			Policy: PolicyMerge,
			Match:  matchType[images.FetchBatchThumbnailsRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(images.FetchBatchThumbnailsRequested)
				batch, err := api.Images().GetBatchThumbnails(ctx, req.ImageIDs)
				if err != nil {
					return fail(images.FetchBatchThumbnailsFailed{Error: errutil.Normalize(err), Context: req.Context})
				}
				return ok(images.FetchBatchThumbnailsSucceeded{Images: batch, Context: req.Context})
			},
		},
		{
			// Album views reuse the batch fetch: resolve which of the album's
			// thumbnails are missing or expired, then trigger one batch.
			Name:   "images.fetchAlbumThumbnails",
			Policy: PolicyMerge,
			Match:  matchType[images.FetchAlbumThumbnailsRequested](),
			Run: func(_ context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(images.FetchAlbumThumbnailsRequested)
				s := snap()

				var albumIDs []types.ImageID
				for _, img := range images.SelectImagesByAlbum(s.Images, req.Album) {
					albumIDs = append(albumIDs, img.ID)
				}
				need := images.SelectIDsWithMissingOrExpiredThumbnails(s.Images, albumIDs, clock.Now())
				if len(need) == 0 {
					return nil
				}
				return ok(images.FetchBatchThumbnailsRequested{
					ImageIDs: need,
					Context:  types.FetchContextPhotosInAlbum,
				})
			},
		},
		{
			Name:   "images.fetchMainImage",
			Policy: PolicyMerge,
			Match:  matchType[images.FetchMainImageRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(images.FetchMainImageRequested)
				img, err := api.Images().GetMainImage(ctx, req.ImageID)
				if err != nil {
					return fail(images.FetchMainImageFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.FetchMainImageSucceeded{Image: *img})
			},
		},
		{
			// Staging mints the id the form and the later upload share.
			Name:   "images.stageImage",
			Policy: PolicyConcat,
			Match:  matchType[images.StageImageRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(images.StageImageRequested)
				staged := model.StagedImage{
					ID:       types.NewImageID(),
					Filename: req.Filename,
					Data:     req.Data,
				}
				if err := fileStore.PutImage(ctx, staged); err != nil {
					return fail(images.StageImageFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.ImageStaged{ImageID: staged.ID, Filename: staged.Filename})
			},
		},
		{
			Name:   "images.addImage",
			Policy: PolicyConcat,
			Match:  matchType[images.AddImageRequested](),
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(images.AddImageRequested)
				s := snap()

				fd, found := images.SelectNewImageFormData(s.Images, req.ImageID)
				if !found {
					return fail(images.AddImageFailed{Error: validationError("There is no staged form data for this image.")})
				}
				staged, err := fileStore.GetImage(ctx, req.ImageID)
				if err != nil {
					return fail(images.AddImageFailed{Error: errutil.Normalize(err)})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(images.AddImageFailed{Error: errutil.Normalize(err)})
				}

				img := imageFromFormData(req.ImageID, staged.Filename, fd, author, clock)
				// The first image of a brand-new album becomes its cover.
				if len(images.SelectImagesByAlbum(s.Images, fd.Album)) == 0 {
					img.AlbumCover = true
				}

				res, err := api.Images().AddImages(ctx, interfaces.ImagesUpload{
					NewImages:     []model.Image{img},
					NewImageFiles: []model.StagedImage{*staged},
				})
				if err != nil {
					return fail(images.AddImageFailed{Error: errutil.Normalize(err)})
				}
				if err := verifyUploadCounts(1, 0, res); err != nil {
					return fail(images.AddImageFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.AddImageSucceeded{Image: res.NewImages[0]})
			},
		},
		{
			Name:   "images.addImages",
			Policy: PolicyConcat,
			Match:  matchType[images.AddImagesRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				s := snap()

				staged, err := fileStore.GetAllImages(ctx)
				if err != nil {
					return fail(images.AddImagesFailed{Error: errutil.Normalize(err)})
				}
				if len(staged) == 0 {
					return fail(images.AddImagesFailed{Error: validationError("There are no staged images to add.")})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(images.AddImagesFailed{Error: errutil.Normalize(err)})
				}

				var newImages []model.Image
				for _, file := range staged {
					fd, found := images.SelectNewImageFormData(s.Images, file.ID)
					if !found {
						return fail(images.AddImagesFailed{Error: validationError(
							fmt.Sprintf("Staged image %q has no form data.", file.Filename))})
					}
					newImages = append(newImages, imageFromFormData(file.ID, file.Filename, fd, author, clock))
				}

				res, err := api.Images().AddImages(ctx, interfaces.ImagesUpload{
					NewImages:     newImages,
					NewImageFiles: staged,
				})
				if err != nil {
					return fail(images.AddImagesFailed{Error: errutil.Normalize(err)})
				}
				if err := verifyUploadCounts(len(newImages), 0, res); err != nil {
					return fail(images.AddImagesFailed{Error: errutil.Normalize(err)})
				}
				return ok(images.AddImagesSucceeded{Images: res.NewImages})
			},
		},
		{
			Name:   "images.updateImage",
			Policy: PolicyConcat,
			Match:  matchType[images.UpdateImageRequested](),
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(images.UpdateImageRequested)
				s := snap()

				existing, found := images.SelectImageByID(s.Images, req.ImageID)
				if !found {
					return fail(images.UpdateImageFailed{Error: validationError("The image to update is not loaded.")})
				}
				fd, found := images.SelectNewImageFormData(s.Images, req.ImageID)
				if !found {
					return fail(images.UpdateImageFailed{Image: existing, Error: validationError("There are no pending edits for this image.")})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(images.UpdateImageFailed{Image: existing, Error: errutil.Normalize(err)})
				}

				updated := existing
				updated.Caption = fd.Caption
				updated.Album = fd.Album
				updated.AlbumCover = fd.AlbumCover
				updated.AlbumOrdinality = fd.AlbumOrdinality
				updated.ModificationInfo = existing.ModificationInfo.Edited(author, clock.Now())

				res, err := api.Images().UpdateImages(ctx, interfaces.ImagesUpload{
					UpdatedImages: []model.Image{updated},
				})
				if err != nil {
					return fail(images.UpdateImageFailed{Image: existing, Error: errutil.Normalize(err)})
				}
				if err := verifyUploadCounts(0, 1, res); err != nil {
					return fail(images.UpdateImageFailed{Image: existing, Error: errutil.Normalize(err)})
				}
				return ok(images.UpdateImageSucceeded{Image: res.UpdatedImages[0]})
			},
		},
		{
			// Album save combines newly staged files with edits to the
			// album's existing images in one upload.
			Name:   "images.updateAlbum",
			Policy: PolicyConcat,
			Match:  matchType[images.UpdateAlbumRequested](),
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(images.UpdateAlbumRequested)
				s := snap()

				author, err := stampingUser(s)
				if err != nil {
					return fail(images.UpdateAlbumFailed{Album: req.Album, Error: errutil.Normalize(err)})
				}

				staged, err := fileStore.GetAllImages(ctx)
				if err != nil {
					return fail(images.UpdateAlbumFailed{Album: req.Album, Error: errutil.Normalize(err)})
				}

				var newImages []model.Image
				var newFiles []model.StagedImage
				for _, file := range staged {
					fd, found := images.SelectNewImageFormData(s.Images, file.ID)
					if !found || fd.Album != req.Album {
						continue
					}
					newImages = append(newImages, imageFromFormData(file.ID, file.Filename, fd, author, clock))
					newFiles = append(newFiles, file)
				}

				now := clock.Now()
				var updatedImages []model.Image
				for _, existing := range images.SelectImagesByAlbum(s.Images, req.Album) {
					fd, found := images.SelectNewImageFormData(s.Images, existing.ID)
					if !found {
						continue
					}
					updated := existing
					updated.Caption = fd.Caption
					updated.Album = fd.Album
					updated.AlbumCover = fd.AlbumCover
					updated.AlbumOrdinality = fd.AlbumOrdinality
					updated.ModificationInfo = existing.ModificationInfo.Edited(author, now)
					updatedImages = append(updatedImages, updated)
				}

				if len(newImages) == 0 && len(updatedImages) == 0 {
					return fail(images.UpdateAlbumFailed{Album: req.Album, Error: validationError("There are no changes to save for this album.")})
				}

				res, err := api.Images().UpdateImages(ctx, interfaces.ImagesUpload{
					NewImages:     newImages,
					NewImageFiles: newFiles,
					UpdatedImages: updatedImages,
				})
				if err != nil {
					return fail(images.UpdateAlbumFailed{Album: req.Album, Error: errutil.Normalize(err)})
				}
				if err := verifyUploadCounts(len(newImages), len(updatedImages), res); err != nil {
					return fail(images.UpdateAlbumFailed{Album: req.Album, Error: errutil.Normalize(err)})
				}
				return ok(images.UpdateAlbumSucceeded{
					Album:         req.Album,
					NewImages:     res.NewImages,
					UpdatedImages: res.UpdatedImages,
				})
			},
		},
		{
			Name:   "images.deleteImage",
			Policy: PolicyMerge,
			Match:  matchType[images.DeleteImageRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(images.DeleteImageRequested)
				id, err := api.Images().DeleteImage(ctx, req.Image.ID)
				if err != nil {
					return fail(images.DeleteImageFailed{Image: req.Image, Error: errutil.Normalize(err)})
				}
				if id != req.Image.ID {
					return fail(images.DeleteImageFailed{Image: req.Image, Error: idMismatch("delete", string(req.Image.ID), string(id))})
				}
				return ok(images.DeleteImageSucceeded{Image: req.Image})
			},
		},
		{
			Name:   "images.deleteAlbum",
			Policy: PolicyMerge,
			Match:  matchType[images.DeleteAlbumRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(images.DeleteAlbumRequested)
				ids, err := api.Images().DeleteAlbum(ctx, req.Album)
				if err != nil {
					return fail(images.DeleteAlbumFailed{Album: req.Album, Error: errutil.Normalize(err)})
				}
				return ok(images.DeleteAlbumSucceeded{Album: req.Album, ImageIDs: ids})
			},
		},
		{
			// Deleting an album's cover promotes the album's first remaining
			// image so the album never renders coverless.
			Name:   "images.albumCoverAutoSwitch",
			Policy: PolicyMerge,
			Match: func(in intent.Intent) bool {
				deleted, isDelete := in.(images.DeleteImageSucceeded)
				return isDelete && deleted.Image.AlbumCover
			},
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				deleted := in.(images.DeleteImageSucceeded)
				s := snap()

				remaining := images.SelectImagesByAlbum(s.Images, deleted.Image.Album)
				if len(remaining) == 0 {
					return nil
				}

				author, err := stampingUser(s)
				if err != nil {
					return fail(images.AlbumCoverSwitchFailed{Album: deleted.Image.Album, Error: errutil.Normalize(err)})
				}

				promoted := remaining[0]
				promoted.AlbumCover = true
				promoted.ModificationInfo = promoted.ModificationInfo.Edited(author, clock.Now())

				res, err := api.Images().UpdateImages(ctx, interfaces.ImagesUpload{
					UpdatedImages: []model.Image{promoted},
				})
				if err != nil {
					return fail(images.AlbumCoverSwitchFailed{Album: deleted.Image.Album, Error: errutil.Normalize(err)})
				}
				if err := verifyUploadCounts(0, 1, res); err != nil {
					return fail(images.AlbumCoverSwitchFailed{Album: deleted.Image.Album, Error: errutil.Normalize(err)})
				}
				return ok(images.AlbumCoverSwitchSucceeded{Image: res.UpdatedImages[0]})
			},
		},
		{
			// Dispatch-free side effect: once staged files have been uploaded
			// or the form is discarded, the staging store is purged. Failures
			// are logged only; there is no slice to report them to.
			Name:   "images.clearStaging",
			Policy: PolicyMerge,
			Match: matchAny(
				matchType[images.ImageFormDataRestored](),
				matchType[images.AlbumFormDataRestored](),
				matchType[images.AddImageSucceeded](),
				matchType[images.AddImagesSucceeded](),
				matchType[images.UpdateAlbumSucceeded](),
			),
			Run: func(ctx context.Context, _ intent.Intent, _ SnapshotFunc) []intent.Intent {
				if err := fileStore.ClearAllImages(ctx); err != nil {
					errutil.Log(ctx, err, "failed to clear image staging store")
				}
				return nil
			},
		},
	}
}

func imageFromFormData(id types.ImageID, filename string, fd model.ImageFormData, author string, clock interfaces.Clock) model.Image {
	return model.Image{
		ID:               id,
		Filename:         filename,
		Caption:          fd.Caption,
		Album:            fd.Album,
		AlbumCover:       fd.AlbumCover,
		AlbumOrdinality:  fd.AlbumOrdinality,
		ModificationInfo: model.NewModificationInfo(author, clock.Now()),
	}
}
