package members

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/entity"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// State is the membership roster slice
type State struct {
	Members       entity.Collection[types.MemberID, model.Member] `json:"members"`
	Call          model.CallState                                 `json:"callState"`
	Options       model.PageOptions                               `json:"options"`
	FilteredCount *int                                            `json:"filteredCount"`
	TotalCount    int                                             `json:"totalCount"`
	LastFetch     *time.Time                                      `json:"lastFetch"`
}

// NewState returns the initial members slice
func NewState() *State {
	return &State{
		Members: entity.NewCollection[types.MemberID, model.Member](),
		Call:    model.IdleCall(),
		Options: model.DefaultPageOptions("lastName", model.SortAscending),
	}
}

type FetchRequested struct {
	Background bool
}

func (FetchRequested) IntentType() string { return "[Members] Fetch members requested" }

type FetchSucceeded struct {
	Members       []model.Member
	FilteredCount int
	TotalCount    int
}

func (FetchSucceeded) IntentType() string { return "[Members] Fetch members succeeded" }

type FetchFailed struct {
	Error model.ErrorInfo
}

func (FetchFailed) IntentType() string { return "[Members] Fetch members failed" }

type PaginationOptionsChanged struct {
	Options model.PageOptions
}

func (PaginationOptionsChanged) IntentType() string { return "[Members] Pagination options changed" }

// Reduce applies an intent to the members slice. Unknown intents return the
// identical input pointer.
func Reduce(s *State, in intent.Intent) *State {
	switch v := in.(type) {
	case FetchRequested:
		next := *s
		now := time.Now().UTC()
		if v.Background {
			next.Call = model.BackgroundLoadingCall(now)
		} else {
			next.Call = model.LoadingCall(now)
		}
		return &next

	case FetchSucceeded:
		next := *s
		ids := make([]types.MemberID, 0, len(v.Members))
		entities := make(map[types.MemberID]model.Member, len(v.Members))
		for _, m := range v.Members {
			ids = append(ids, m.ID)
			entities[m.ID] = m
		}
		next.Members = entity.Collection[types.MemberID, model.Member]{IDs: ids, Entities: entities}
		filtered := v.FilteredCount
		next.FilteredCount = &filtered
		next.TotalCount = v.TotalCount
		next.Call = model.IdleCall()
		now := time.Now().UTC()
		next.LastFetch = &now
		return &next

	case FetchFailed:
		next := *s
		next.Call = model.ErrorCall(v.Error)
		return &next

	case PaginationOptionsChanged:
		next := *s
		next.Options = v.Options
		return &next

	default:
		return s
	}
}

// SelectCallState returns the slice call state
func SelectCallState(s *State) model.CallState {
	return s.Call
}

// SelectLastFetch returns the fetch timestamp
func SelectLastFetch(s *State) *time.Time {
	return s.LastFetch
}
