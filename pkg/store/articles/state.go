package articles

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/entity"
)

// NewArticleKey is the FormData key of a draft that has not been published
// yet
const NewArticleKey = types.ArticleID("")

// State is the articles slice. The home page and the filtered news list
// share one entity collection but track their own id sets and fetch
// timestamps, so their staleness policies stay independent.
type State struct {
	Articles          entity.Collection[types.ArticleID, model.Article] `json:"articles"`
	HomeIDs           []types.ArticleID                                 `json:"homeIds"`
	FilteredIDs       []types.ArticleID                                 `json:"filteredIds"`
	Call              model.CallState                                   `json:"callState"`
	Options           model.PageOptions                                 `json:"options"`
	FilteredCount     *int                                              `json:"filteredCount"`
	TotalCount        int                                               `json:"totalCount"`
	LastHomeFetch     *time.Time                                        `json:"lastHomeFetch"`
	LastFilteredFetch *time.Time                                        `json:"lastFilteredFetch"`
	FormData          map[types.ArticleID]model.ArticleFormData         `json:"formData"`
}

// NewState returns the initial articles slice
func NewState() *State {
	return &State{
		Articles: entity.NewCollection[types.ArticleID, model.Article](),
		Call:     model.IdleCall(),
		Options:  model.DefaultPageOptions("modificationInfo.dateCreated", model.SortDescending),
		FormData: map[types.ArticleID]model.ArticleFormData{},
	}
}
