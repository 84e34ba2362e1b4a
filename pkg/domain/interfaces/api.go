package interfaces

import (
	"context"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// Paginated is the payload of a filtered collection fetch
type Paginated[T any] struct {
	Items         []T  `json:"items"`
	FilteredCount *int `json:"filteredCount,omitempty"`
	TotalCount    int  `json:"totalCount"`
}

// ImagesUpload carries new and existing image records for a combined
// add/update call
type ImagesUpload struct {
	NewImages     []model.Image
	NewImageFiles []model.StagedImage
	UpdatedImages []model.Image
}

// ImagesUploadResult reports what the server actually recorded. Pipelines
// verify the counts against the upload before treating the call as a success.
type ImagesUploadResult struct {
	NewImages     []model.Image `json:"newImages"`
	UpdatedImages []model.Image `json:"updatedImages"`
}

// ArticlesAPI is the article operations of the API collaborator
type ArticlesAPI interface {
	GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error)
	GetFilteredArticles(ctx context.Context, opts model.PageOptions) (*Paginated[model.Article], error)
	AddArticle(ctx context.Context, article model.Article) (types.ArticleID, error)
	UpdateArticle(ctx context.Context, article model.Article) (types.ArticleID, error)
	DeleteArticle(ctx context.Context, id types.ArticleID) (types.ArticleID, error)
}

// ImagesAPI is the image operations of the API collaborator
type ImagesAPI interface {
	GetAllImagesMetadata(ctx context.Context) ([]model.Image, error)
	GetFilteredThumbnails(ctx context.Context, opts model.PageOptions) (*Paginated[model.Image], error)
	GetBatchThumbnails(ctx context.Context, ids []types.ImageID) ([]model.Image, error)
	GetMainImage(ctx context.Context, id types.ImageID) (*model.Image, error)
	AddImages(ctx context.Context, upload ImagesUpload) (*ImagesUploadResult, error)
	UpdateImages(ctx context.Context, upload ImagesUpload) (*ImagesUploadResult, error)
	DeleteImage(ctx context.Context, id types.ImageID) (types.ImageID, error)
	DeleteAlbum(ctx context.Context, album types.Album) ([]types.ImageID, error)
}

// AuthAPI is the authentication operations of the API collaborator
type AuthAPI interface {
	LogIn(ctx context.Context, email, password string) (*model.User, error)
	LogOut(ctx context.Context) error
	SendCodeForPasswordChange(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email, password, code string) (*model.User, error)
	RefreshSession(ctx context.Context) error
}

// EventsAPI is the event operations of the API collaborator
type EventsAPI interface {
	GetFilteredEvents(ctx context.Context, opts model.PageOptions) (*Paginated[model.Event], error)
}

// MembersAPI is the member roster operations of the API collaborator
type MembersAPI interface {
	GetFilteredMembers(ctx context.Context, opts model.PageOptions) (*Paginated[model.Member], error)
}

// API aggregates the per-domain collaborators
type API interface {
	Articles() ArticlesAPI
	Images() ImagesAPI
	Auth() AuthAPI
	Events() EventsAPI
	Members() MembersAPI
}
