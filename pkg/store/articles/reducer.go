package articles

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// Reduce applies an intent to the articles slice. Unknown intents return the
// identical input pointer; observers rely on that reference equality to skip
// recomputation.
func Reduce(s *State, in intent.Intent) *State {
	switch v := in.(type) {
	case FetchHomeRequested:
		return withCall(s, requestedCall(v.Background))

	case FetchHomeSucceeded:
		next := *s
		ids, entities := index(v.Articles)
		next.Articles = s.Articles.UpsertMany(ids, entities)
		next.HomeIDs = ids
		next.TotalCount = v.TotalCount
		next.Call = model.IdleCall()
		now := time.Now().UTC()
		next.LastHomeFetch = &now
		return &next

	case FetchHomeFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case FetchFilteredRequested:
		return withCall(s, requestedCall(v.Background))

	case FetchFilteredSucceeded:
		next := *s
		ids, entities := index(v.Articles)
		next.Articles = s.Articles.UpsertMany(ids, entities)
		next.FilteredIDs = ids
		filtered := v.FilteredCount
		next.FilteredCount = &filtered
		next.TotalCount = v.TotalCount
		next.Call = model.IdleCall()
		now := time.Now().UTC()
		next.LastFilteredFetch = &now
		return &next

	case FetchFilteredFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case FetchArticleRequested:
		return withCall(s, model.LoadingCall(time.Now().UTC()))

	case FetchArticleSucceeded:
		next := *s
		next.Articles = s.Articles.Upsert(v.Article.ID, v.Article)
		next.Call = model.IdleCall()
		return &next

	case FetchArticleFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case PublishRequested, UpdateRequested, DeleteRequested:
		return withCall(s, model.LoadingCall(time.Now().UTC()))

	case PublishSucceeded:
		// Mutation successes never touch the fetch timestamps: the filtered
		// and home lists still count as stale-by-mutation and are refetched
		// eagerly by the scheduler.
		next := *s
		next.Articles = s.Articles.Upsert(v.Article.ID, v.Article)
		next.Call = model.IdleCall()
		return &next

	case PublishFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case UpdateSucceeded:
		next := *s
		next.Articles = s.Articles.Update(v.Article.ID, v.Article)
		next.Call = model.IdleCall()
		return &next

	case UpdateFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case DeleteSucceeded:
		next := *s
		next.Articles = s.Articles.Remove(v.ArticleID)
		next.HomeIDs = removeID(s.HomeIDs, v.ArticleID)
		next.FilteredIDs = removeID(s.FilteredIDs, v.ArticleID)
		next.Call = model.IdleCall()
		return &next

	case DeleteFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case PaginationOptionsChanged:
		next := *s
		next.Options = v.Options
		return &next

	case FormDataChanged:
		next := *s
		next.FormData = cloneFormData(s.FormData)
		next.FormData[v.ArticleID] = v.FormData
		return &next

	case FormDataRestored:
		next := *s
		next.FormData = map[types.ArticleID]model.ArticleFormData{}
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

func index(list []model.Article) ([]types.ArticleID, map[types.ArticleID]model.Article) {
	ids := make([]types.ArticleID, 0, len(list))
	entities := make(map[types.ArticleID]model.Article, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
		entities[a.ID] = a
	}
	return ids, entities
}

func removeID(ids []types.ArticleID, id types.ArticleID) []types.ArticleID {
	out := make([]types.ArticleID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func cloneFormData(src map[types.ArticleID]model.ArticleFormData) map[types.ArticleID]model.ArticleFormData {
	out := make(map[types.ArticleID]model.ArticleFormData, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
