package effect_test

import (
	"context"
	"errors"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// errUnexpectedCall flags a collaborator method the test did not stub
var errUnexpectedCall = errors.New("unexpected API call")

type mockArticlesAPI struct {
	getArticle          func(ctx context.Context, id types.ArticleID) (*model.Article, error)
	getFilteredArticles func(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Article], error)
	addArticle          func(ctx context.Context, article model.Article) (types.ArticleID, error)
	updateArticle       func(ctx context.Context, article model.Article) (types.ArticleID, error)
	deleteArticle       func(ctx context.Context, id types.ArticleID) (types.ArticleID, error)
}

func (m *mockArticlesAPI) GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error) {
	if m.getArticle == nil {
		return nil, errUnexpectedCall
	}
	return m.getArticle(ctx, id)
}

func (m *mockArticlesAPI) GetFilteredArticles(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Article], error) {
	if m.getFilteredArticles == nil {
		return nil, errUnexpectedCall
	}
	return m.getFilteredArticles(ctx, opts)
}

func (m *mockArticlesAPI) AddArticle(ctx context.Context, article model.Article) (types.ArticleID, error) {
	if m.addArticle == nil {
		return "", errUnexpectedCall
	}
	return m.addArticle(ctx, article)
}

func (m *mockArticlesAPI) UpdateArticle(ctx context.Context, article model.Article) (types.ArticleID, error) {
	if m.updateArticle == nil {
		return "", errUnexpectedCall
	}
	return m.updateArticle(ctx, article)
}

func (m *mockArticlesAPI) DeleteArticle(ctx context.Context, id types.ArticleID) (types.ArticleID, error) {
	if m.deleteArticle == nil {
		return "", errUnexpectedCall
	}
	return m.deleteArticle(ctx, id)
}

type mockImagesAPI struct {
	getAllImagesMetadata  func(ctx context.Context) ([]model.Image, error)
	getFilteredThumbnails func(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Image], error)
	getBatchThumbnails    func(ctx context.Context, ids []types.ImageID) ([]model.Image, error)
	getMainImage          func(ctx context.Context, id types.ImageID) (*model.Image, error)
	addImages             func(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error)
	updateImages          func(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error)
	deleteImage           func(ctx context.Context, id types.ImageID) (types.ImageID, error)
	deleteAlbum           func(ctx context.Context, album types.Album) ([]types.ImageID, error)
}

func (m *mockImagesAPI) GetAllImagesMetadata(ctx context.Context) ([]model.Image, error) {
	if m.getAllImagesMetadata == nil {
		return nil, errUnexpectedCall
	}
	return m.getAllImagesMetadata(ctx)
}

func (m *mockImagesAPI) GetFilteredThumbnails(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Image], error) {
	if m.getFilteredThumbnails == nil {
		return nil, errUnexpectedCall
	}
	return m.getFilteredThumbnails(ctx, opts)
}

func (m *mockImagesAPI) GetBatchThumbnails(ctx context.Context, ids []types.ImageID) ([]model.Image, error) {
	if m.getBatchThumbnails == nil {
		return nil, errUnexpectedCall
	}
	return m.getBatchThumbnails(ctx, ids)
}

func (m *mockImagesAPI) GetMainImage(ctx context.Context, id types.ImageID) (*model.Image, error) {
	if m.getMainImage == nil {
		return nil, errUnexpectedCall
	}
	return m.getMainImage(ctx, id)
}

func (m *mockImagesAPI) AddImages(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error) {
	if m.addImages == nil {
		return nil, errUnexpectedCall
	}
	return m.addImages(ctx, upload)
}

func (m *mockImagesAPI) UpdateImages(ctx context.Context, upload interfaces.ImagesUpload) (*interfaces.ImagesUploadResult, error) {
	if m.updateImages == nil {
		return nil, errUnexpectedCall
	}
	return m.updateImages(ctx, upload)
}

func (m *mockImagesAPI) DeleteImage(ctx context.Context, id types.ImageID) (types.ImageID, error) {
	if m.deleteImage == nil {
		return "", errUnexpectedCall
	}
	return m.deleteImage(ctx, id)
}

func (m *mockImagesAPI) DeleteAlbum(ctx context.Context, album types.Album) ([]types.ImageID, error) {
	if m.deleteAlbum == nil {
		return nil, errUnexpectedCall
	}
	return m.deleteAlbum(ctx, album)
}

type mockAuthAPI struct {
	logIn                     func(ctx context.Context, email, password string) (*model.User, error)
	logOut                    func(ctx context.Context) error
	sendCodeForPasswordChange func(ctx context.Context, email string) error
	changePassword            func(ctx context.Context, email, password, code string) (*model.User, error)
	refreshSession            func(ctx context.Context) error
}

func (m *mockAuthAPI) LogIn(ctx context.Context, email, password string) (*model.User, error) {
	if m.logIn == nil {
		return nil, errUnexpectedCall
	}
	return m.logIn(ctx, email, password)
}

func (m *mockAuthAPI) LogOut(ctx context.Context) error {
	if m.logOut == nil {
		return errUnexpectedCall
	}
	return m.logOut(ctx)
}

func (m *mockAuthAPI) SendCodeForPasswordChange(ctx context.Context, email string) error {
	if m.sendCodeForPasswordChange == nil {
		return errUnexpectedCall
	}
	return m.sendCodeForPasswordChange(ctx, email)
}

func (m *mockAuthAPI) ChangePassword(ctx context.Context, email, password, code string) (*model.User, error) {
	if m.changePassword == nil {
		return nil, errUnexpectedCall
	}
	return m.changePassword(ctx, email, password, code)
}

func (m *mockAuthAPI) RefreshSession(ctx context.Context) error {
	if m.refreshSession == nil {
		return errUnexpectedCall
	}
	return m.refreshSession(ctx)
}

type mockEventsAPI struct {
	getFilteredEvents func(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Event], error)
}

func (m *mockEventsAPI) GetFilteredEvents(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Event], error) {
	if m.getFilteredEvents == nil {
		return nil, errUnexpectedCall
	}
	return m.getFilteredEvents(ctx, opts)
}

type mockMembersAPI struct {
	getFilteredMembers func(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Member], error)
}

func (m *mockMembersAPI) GetFilteredMembers(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Member], error) {
	if m.getFilteredMembers == nil {
		return nil, errUnexpectedCall
	}
	return m.getFilteredMembers(ctx, opts)
}

type mockAPI struct {
	articles mockArticlesAPI
	images   mockImagesAPI
	auth     mockAuthAPI
	events   mockEventsAPI
	members  mockMembersAPI
}

func (m *mockAPI) Articles() interfaces.ArticlesAPI { return &m.articles }
func (m *mockAPI) Images() interfaces.ImagesAPI     { return &m.images }
func (m *mockAPI) Auth() interfaces.AuthAPI         { return &m.auth }
func (m *mockAPI) Events() interfaces.EventsAPI     { return &m.events }
func (m *mockAPI) Members() interfaces.MembersAPI   { return &m.members }
