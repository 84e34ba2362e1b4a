package effect

import (
	"context"
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

// bodyImagePattern matches {{{imageId}}} placeholders in an article body
var bodyImagePattern = regexp.MustCompile(`\{\{\{([^{}]+)\}\}\}`)

// BodyImageIDs extracts the distinct image ids referenced by an article
// body, in first-appearance order
func BodyImageIDs(body string) []types.ImageID {
	seen := map[types.ImageID]struct{}{}
	var out []types.ImageID
	for _, m := range bodyImagePattern.FindAllStringSubmatch(body, -1) {
		id := types.ImageID(m[1])
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// homePageOptions is the fixed query for the home page article strip
var homePageOptions = model.PageOptions{
	Page:      1,
	PageSize:  6,
	SortBy:    "modificationInfo.dateCreated",
	SortOrder: model.SortDescending,
}

// ArticlePipelines returns the article workflows. Collection fetches switch,
// single-article and delete flows merge, and the publish/update mutations
// concat so edits apply in dispatch order. maxBodyImages is the pre-flight
// budget for {{{imageId}}} references in a body.
func ArticlePipelines(api interfaces.API, clock interfaces.Clock, maxBodyImages int) []Pipeline {
	return []Pipeline{
		{
			Name:   "articles.fetchHome",
			Policy: PolicySwitch,
			Match:  matchType[articles.FetchHomeRequested](),
			Run: func(ctx context.Context, _ intent.Intent, _ SnapshotFunc) []intent.Intent {
				page, err := api.Articles().GetFilteredArticles(ctx, homePageOptions)
				if err != nil {
					return fail(articles.FetchHomeFailed{Error: errutil.Normalize(err)})
				}
				return ok(articles.FetchHomeSucceeded{
					Articles:   page.Items,
					TotalCount: page.TotalCount,
				})
			},
		},
		{
			Name:   "articles.fetchFiltered",
			Policy: PolicySwitch,
			Match:  matchType[articles.FetchFilteredRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				opts := snap().Articles.Options
				page, err := api.Articles().GetFilteredArticles(ctx, opts)
				if err != nil {
					return fail(articles.FetchFilteredFailed{Error: errutil.Normalize(err)})
				}
				return ok(articles.FetchFilteredSucceeded{
					Articles:      page.Items,
					FilteredCount: count(page.FilteredCount, len(page.Items)),
					TotalCount:    page.TotalCount,
				})
			},
		},
		{
			Name:   "articles.fetchArticle",
			Policy: PolicyMerge,
			Match:  matchType[articles.FetchArticleRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(articles.FetchArticleRequested)
				article, err := api.Articles().GetArticle(ctx, req.ArticleID)
				if err != nil {
					return fail(articles.FetchArticleFailed{Error: errutil.Normalize(err)})
				}
				return ok(articles.FetchArticleSucceeded{Article: *article})
			},
		},
		{
			Name:   "articles.publish",
			Policy: PolicyConcat,
			Match:  matchType[articles.PublishRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				s := snap()

				fd, found := articles.SelectFormData(s.Articles, articles.NewArticleKey)
				if !found {
					return fail(articles.PublishFailed{Error: validationError("There is no article draft to publish.")})
				}
				if err := validateBodyImages(fd.Body, maxBodyImages); err != nil {
					return fail(articles.PublishFailed{Error: errutil.Normalize(err)})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(articles.PublishFailed{Error: errutil.Normalize(err)})
				}

				article := model.Article{
					Title:            fd.Title,
					Body:             fd.Body,
					BannerImageID:    fd.BannerImageID,
					ModificationInfo: model.NewModificationInfo(author, clock.Now()),
				}

				id, err := api.Articles().AddArticle(ctx, article)
				if err != nil {
					return fail(articles.PublishFailed{Error: errutil.Normalize(err)})
				}
				article.ID = id
				return ok(articles.PublishSucceeded{Article: article})
			},
		},
		{
			Name:   "articles.update",
			Policy: PolicyConcat,
			Match:  matchType[articles.UpdateRequested](),
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(articles.UpdateRequested)
				s := snap()

				existing, found := articles.SelectArticleByID(s.Articles, req.ArticleID)
				if !found {
					return fail(articles.UpdateFailed{Error: validationError("The article to update is not loaded.")})
				}
				fd, found := articles.SelectFormData(s.Articles, req.ArticleID)
				if !found {
					return fail(articles.UpdateFailed{Error: validationError("There are no pending edits for this article.")})
				}
				if err := validateBodyImages(fd.Body, maxBodyImages); err != nil {
					return fail(articles.UpdateFailed{Error: errutil.Normalize(err)})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(articles.UpdateFailed{Error: errutil.Normalize(err)})
				}

				updated := existing
				updated.Title = fd.Title
				updated.Body = fd.Body
				updated.BannerImageID = fd.BannerImageID
				updated.ModificationInfo = existing.ModificationInfo.Edited(author, clock.Now())

				id, err := api.Articles().UpdateArticle(ctx, updated)
				if err != nil {
					return fail(articles.UpdateFailed{Error: errutil.Normalize(err)})
				}
				if id != updated.ID {
					return fail(articles.UpdateFailed{Error: idMismatch("update", string(updated.ID), string(id))})
				}
				return ok(articles.UpdateSucceeded{Article: updated, OriginalTitle: existing.Title})
			},
		},
		{
			Name:   "articles.toggleBookmark",
			Policy: PolicyMerge,
			Match:  matchType[articles.BookmarkToggleRequested](),
			Run: func(ctx context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(articles.BookmarkToggleRequested)
				s := snap()

				existing, found := articles.SelectArticleByID(s.Articles, req.ArticleID)
				if !found {
					return fail(articles.UpdateFailed{Error: validationError("The article to bookmark is not loaded.")})
				}
				author, err := stampingUser(s)
				if err != nil {
					return fail(articles.UpdateFailed{Error: errutil.Normalize(err)})
				}

				now := clock.Now()
				updated := existing
				if req.Bookmark {
					updated.BookmarkDate = &now
				} else {
					updated.BookmarkDate = nil
				}
				updated.ModificationInfo = existing.ModificationInfo.Edited(author, now)

				id, err := api.Articles().UpdateArticle(ctx, updated)
				if err != nil {
					return fail(articles.UpdateFailed{Error: errutil.Normalize(err)})
				}
				if id != updated.ID {
					return fail(articles.UpdateFailed{Error: idMismatch("bookmark update", string(updated.ID), string(id))})
				}
				return ok(articles.UpdateSucceeded{Article: updated, OriginalTitle: existing.Title})
			},
		},
		{
			Name:   "articles.delete",
			Policy: PolicyMerge,
			Match:  matchType[articles.DeleteRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(articles.DeleteRequested)
				id, err := api.Articles().DeleteArticle(ctx, req.Article.ID)
				if err != nil {
					return fail(articles.DeleteFailed{Error: errutil.Normalize(err)})
				}
				if id != req.Article.ID {
					return fail(articles.DeleteFailed{Error: idMismatch("delete", string(req.Article.ID), string(id))})
				}
				return ok(articles.DeleteSucceeded{
					ArticleID:    req.Article.ID,
					ArticleTitle: req.Article.Title,
				})
			},
		},
		{
			Name:   "articles.prefetchBannerThumbnails",
			Policy: PolicyMerge,
			Match: matchAny(
				matchType[articles.FetchHomeSucceeded](),
				matchType[articles.FetchFilteredSucceeded](),
				matchType[articles.FetchArticleSucceeded](),
			),
			Run: func(_ context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				s := snap()
				bannerIDs := articles.SelectBannerImageIDs(s.Articles)
				need := images.SelectIDsWithMissingOrExpiredThumbnails(s.Images, bannerIDs, clock.Now())
				if len(need) == 0 {
					return nil
				}
				return ok(images.FetchBatchThumbnailsRequested{
					ImageIDs: need,
					Context:  types.FetchContextArticleBanners,
				})
			},
		},
		{
			Name:   "articles.fetchBodyImages",
			Policy: PolicyMerge,
			Match:  matchType[articles.FetchArticleSucceeded](),
			Run: func(_ context.Context, in intent.Intent, snap SnapshotFunc) []intent.Intent {
				req := in.(articles.FetchArticleSucceeded)
				s := snap()
				need := images.SelectBodyImageIDsNeedingMainURL(s.Images, BodyImageIDs(req.Article.Body), clock.Now())
				var out []intent.Intent
				for _, id := range need {
					out = append(out, images.FetchMainImageRequested{ImageID: id, Background: true})
				}
				return out
			},
		},
	}
}

func validateBodyImages(body string, budget int) error {
	n := len(BodyImageIDs(body))
	if n > budget {
		return goerr.New(
			fmt.Sprintf("Article body contains %d images, but the maximum is %d.", n, budget),
			goerr.T(types.ErrTagValidation),
		)
	}
	return nil
}
