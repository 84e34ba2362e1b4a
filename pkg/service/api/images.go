package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

type imagesClient struct {
	c *Client
}

// imageRecord carries the transient URL fields over the wire. The domain
// model excludes them from JSON so they are never persisted, but fetch
// responses do include them.
type imageRecord struct {
	model.Image
	MainURL       string     `json:"mainUrl,omitempty"`
	ThumbnailURL  string     `json:"thumbnailUrl,omitempty"`
	URLExpiration *time.Time `json:"urlExpiration,omitempty"`
}

func (r imageRecord) toModel() model.Image {
	img := r.Image
	img.MainURL = r.MainURL
	img.ThumbnailURL = r.ThumbnailURL
	img.URLExpiration = r.URLExpiration
	return img
}

func toModels(records []imageRecord) []model.Image {
	out := make([]model.Image, 0, len(records))
	for _, r := range records {
		out = append(out, r.toModel())
	}
	return out
}

func (i *imagesClient) GetAllImagesMetadata(ctx context.Context) ([]model.Image, error) {
	var out []imageRecord
	if err := i.c.do(ctx, http.MethodGet, "/images/metadata", nil, nil, &out); err != nil {
		return nil, err
	}
	return toModels(out), nil
}

func (i *imagesClient) GetFilteredThumbnails(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Image], error) {
	var out interfaces.Paginated[imageRecord]
	if err := i.c.do(ctx, http.MethodGet, "/images/thumbnails", pageQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &interfaces.Paginated[model.Image]{
		Items:         toModels(out.Items),
		FilteredCount: out.FilteredCount,
		TotalCount:    out.TotalCount,
	}, nil
}

func (i *imagesClient) GetBatchThumbnails(ctx context.Context, ids []types.ImageID) ([]model.Image, error) {
	q := url.Values{}
	for _, id := range ids {
		q.Add("id", string(id))
	}
	var out []imageRecord
	if err := i.c.do(ctx, http.MethodGet, "/images/thumbnails/batch", q, nil, &out); err != nil {
		return nil, err
	}
	return toModels(out), nil
}

func (i *imagesClient) GetMainImage(ctx context.Context, id types.ImageID) (*model.Image, error) {
	var out imageRecord
	if err := i.c.do(ctx, http.MethodGet, "/images/"+string(id), nil, nil, &out); err != nil {
		return nil, err
	}
	img := out.toModel()
	return &img, nil
}

// uploadPayload carries metadata and base64 file data in one JSON body
type uploadPayload struct {
	NewImages     []model.Image      `json:"newImages,omitempty"`
	NewImageFiles []stagedFileRecord `json:"newImageFiles,omitempty"`
	UpdatedImages []model.Image      `json:"updatedImages,omitempty"`
}

type stagedFileRecord struct {
	ID       types.ImageID `json:"id"`
	Filename string        `json:"filename"`
	Data     []byte        `json:"data"`
}

func toUploadPayload(upload interfaces.ImagesUpload) uploadPayload {
	p := uploadPayload{
		NewImages:     upload.NewImages,
		UpdatedImages: upload.UpdatedImages,
	}
	for _, f := range upload.NewImageFiles {
		p.NewImageFiles = append(p.NewImageFiles, stagedFileRecord(f))
	}
	return p
}

func (i *imagesClient) AddImages(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error) {
	var out interfaces.ImagesUploadResult
	if err := i.c.do(ctx, http.MethodPost, "/images", nil, toUploadPayload(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *imagesClient) UpdateImages(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error) {
	var out interfaces.ImagesUploadResult
	if err := i.c.do(ctx, http.MethodPut, "/images", nil, toUploadPayload(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *imagesClient) DeleteImage(ctx context.Context, id types.ImageID) (types.ImageID, error) {
	var out struct {
		ID types.ImageID `json:"id"`
	}
	if err := i.c.do(ctx, http.MethodDelete, "/images/"+string(id), nil, nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (i *imagesClient) DeleteAlbum(ctx context.Context, album types.Album) ([]types.ImageID, error) {
	var out struct {
		IDs []types.ImageID `json:"ids"`
	}
	if err := i.c.do(ctx, http.MethodDelete, "/albums/"+url.PathEscape(string(album)), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.IDs, nil
}
