package articles

import (
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

type FetchHomeRequested struct {
	Background bool
}

func (FetchHomeRequested) IntentType() string { return "[Articles] Fetch home page articles requested" }

type FetchHomeSucceeded struct {
	Articles   []model.Article
	TotalCount int
}

func (FetchHomeSucceeded) IntentType() string { return "[Articles] Fetch home page articles succeeded" }

type FetchHomeFailed struct {
	Error model.ErrorInfo
}

func (FetchHomeFailed) IntentType() string { return "[Articles] Fetch home page articles failed" }

type FetchFilteredRequested struct {
	Background bool
}

func (FetchFilteredRequested) IntentType() string { return "[Articles] Fetch filtered articles requested" }

type FetchFilteredSucceeded struct {
	Articles      []model.Article
	FilteredCount int
	TotalCount    int
}

func (FetchFilteredSucceeded) IntentType() string { return "[Articles] Fetch filtered articles succeeded" }

type FetchFilteredFailed struct {
	Error model.ErrorInfo
}

func (FetchFilteredFailed) IntentType() string { return "[Articles] Fetch filtered articles failed" }

type FetchArticleRequested struct {
	ArticleID types.ArticleID
}

func (FetchArticleRequested) IntentType() string { return "[Articles] Fetch article requested" }

type FetchArticleSucceeded struct {
	Article model.Article
}

func (FetchArticleSucceeded) IntentType() string { return "[Articles] Fetch article succeeded" }

type FetchArticleFailed struct {
	Error model.ErrorInfo
}

func (FetchArticleFailed) IntentType() string { return "[Articles] Fetch article failed" }

type PublishRequested struct{}

func (PublishRequested) IntentType() string { return "[Articles] Publish article requested" }

type PublishSucceeded struct {
	Article model.Article
}

func (PublishSucceeded) IntentType() string { return "[Articles] Publish article succeeded" }

type PublishFailed struct {
	Error model.ErrorInfo
}

func (PublishFailed) IntentType() string { return "[Articles] Publish article failed" }

type UpdateRequested struct {
	ArticleID types.ArticleID
}

func (UpdateRequested) IntentType() string { return "[Articles] Update article requested" }

type UpdateSucceeded struct {
	Article       model.Article
	OriginalTitle string
}

func (UpdateSucceeded) IntentType() string { return "[Articles] Update article succeeded" }

type UpdateFailed struct {
	Error model.ErrorInfo
}

func (UpdateFailed) IntentType() string { return "[Articles] Update article failed" }

type BookmarkToggleRequested struct {
	ArticleID types.ArticleID
	Bookmark  bool
}

func (BookmarkToggleRequested) IntentType() string { return "[Articles] Update article bookmark requested" }

type DeleteRequested struct {
	Article model.Article
}

func (DeleteRequested) IntentType() string { return "[Articles] Delete article requested" }

type DeleteSucceeded struct {
	ArticleID    types.ArticleID
	ArticleTitle string
}

func (DeleteSucceeded) IntentType() string { return "[Articles] Delete article succeeded" }

type DeleteFailed struct {
	Error model.ErrorInfo
}

func (DeleteFailed) IntentType() string { return "[Articles] Delete article failed" }

type PaginationOptionsChanged struct {
	Options model.PageOptions
}

func (PaginationOptionsChanged) IntentType() string { return "[Articles] Pagination options changed" }

type FormDataChanged struct {
	ArticleID types.ArticleID
	FormData  model.ArticleFormData
}

func (FormDataChanged) IntentType() string { return "[Articles] Form data changed" }

type FormDataRestored struct{}

func (FormDataRestored) IntentType() string { return "[Articles] Form data restored" }
