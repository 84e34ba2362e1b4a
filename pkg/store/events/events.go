package events

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store/entity"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// State is the events slice
type State struct {
	Events        entity.Collection[types.EventID, model.Event] `json:"events"`
	Call          model.CallState                               `json:"callState"`
	Options       model.PageOptions                             `json:"options"`
	FilteredCount *int                                          `json:"filteredCount"`
	TotalCount    int                                           `json:"totalCount"`
	LastFetch     *time.Time                                    `json:"lastFetch"`
}

// NewState returns the initial events slice
func NewState() *State {
	return &State{
		Events:  entity.NewCollection[types.EventID, model.Event](),
		Call:    model.IdleCall(),
		Options: model.DefaultPageOptions("start", model.SortAscending),
	}
}

type FetchRequested struct {
	Background bool
}

func (FetchRequested) IntentType() string { return "[Events] Fetch events requested" }

type FetchSucceeded struct {
	Events        []model.Event
	FilteredCount int
	TotalCount    int
}

func (FetchSucceeded) IntentType() string { return "[Events] Fetch events succeeded" }

type FetchFailed struct {
	Error model.ErrorInfo
}

func (FetchFailed) IntentType() string { return "[Events] Fetch events failed" }

type PaginationOptionsChanged struct {
	Options model.PageOptions
}

func (PaginationOptionsChanged) IntentType() string { return "[Events] Pagination options changed" }

// Reduce applies an intent to the events slice. Unknown intents return the
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
		ids := make([]types.EventID, 0, len(v.Events))
		entities := make(map[types.EventID]model.Event, len(v.Events))
		for _, e := range v.Events {
			ids = append(ids, e.ID)
			entities[e.ID] = e
		}
		next.Events = entity.Collection[types.EventID, model.Event]{IDs: ids, Entities: entities}
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

// SelectNextUpcoming returns the next event starting after now, or false if
// none is scheduled
func SelectNextUpcoming(s *State, now time.Time) (model.Event, bool) {
	var best model.Event
	found := false
	for _, e := range s.Events.All() {
		if !e.IsUpcoming(now) {
			continue
		}
		if !found || e.Start.Before(best.Start) {
			best = e
			found = true
		}
	}
	return best, found
}
