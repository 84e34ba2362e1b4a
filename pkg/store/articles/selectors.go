package articles

import (
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

// SelectLastHomeFetch returns the home page fetch timestamp
func SelectLastHomeFetch(s *State) *time.Time {
	return s.LastHomeFetch
}

// SelectLastFilteredFetch returns the filtered list fetch timestamp
func SelectLastFilteredFetch(s *State) *time.Time {
	return s.LastFilteredFetch
}

// SelectArticleByID looks up a single article
func SelectArticleByID(s *State, id types.ArticleID) (model.Article, bool) {
	return s.Articles.Get(id)
}

// SelectFormData returns the draft form data for an article id, or false if
// no draft exists
func SelectFormData(s *State, id types.ArticleID) (model.ArticleFormData, bool) {
	fd, ok := s.FormData[id]
	return fd, ok
}

// SelectHomeArticles returns the home page articles in display order,
// recomputed only when the slice reference changes
var SelectHomeArticles = selector.Memo1(func(s *State) []model.Article {
	return resolve(s, s.HomeIDs)
})

// SelectFilteredArticles returns the filtered news list in display order
var SelectFilteredArticles = selector.Memo1(func(s *State) []model.Article {
	return resolve(s, s.FilteredIDs)
})

// SelectBannerImageIDs returns the banner image ids referenced by the
// currently loaded home and filtered articles. This is the context set for
// the banner thumbnail prefetch.
var SelectBannerImageIDs = selector.Memo1(func(s *State) []types.ImageID {
	seen := map[types.ImageID]struct{}{}
	var out []types.ImageID
	for _, id := range append(append([]types.ArticleID{}, s.HomeIDs...), s.FilteredIDs...) {
		article, ok := s.Articles.Get(id)
		if !ok || article.BannerImageID == "" {
			continue
		}
		if _, dup := seen[article.BannerImageID]; dup {
			continue
		}
		seen[article.BannerImageID] = struct{}{}
		out = append(out, article.BannerImageID)
	}
	return out
})

func resolve(s *State, ids []types.ArticleID) []model.Article {
	out := make([]model.Article, 0, len(ids))
	for _, id := range ids {
		if article, ok := s.Articles.Get(id); ok {
			out = append(out, article)
		}
	}
	return out
}
