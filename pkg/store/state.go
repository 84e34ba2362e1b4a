package store

import (
	"github.com/lakecity-club/clubstate/pkg/store/app"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/auth"
	"github.com/lakecity-club/clubstate/pkg/store/events"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/store/members"
)

// State is the full store tree. Slices are held by pointer: a reducer that
// ignores an intent returns the identical pointer, and every observer keys
// change detection on that reference equality.
type State struct {
	App      *app.State
	Articles *articles.State
	Auth     *auth.State
	Events   *events.State
	Images   *images.State
	Members  *members.State
}

// NewState returns the default initial state
func NewState() State {
	return State{
		App:      app.NewState(),
		Articles: articles.NewState(),
		Auth:     auth.NewState(),
		Events:   events.NewState(),
		Images:   images.NewState(),
		Members:  members.NewState(),
	}
}

// Reducer is a pure transition over the full tree
type Reducer func(State, intent.Intent) State

// MetaReducer wraps a reducer with cross-cutting behavior. Meta reducers are
// composed outermost-first, matching their registration order.
type MetaReducer func(Reducer) Reducer

// RootReduce forwards the intent to every slice reducer
func RootReduce(s State, in intent.Intent) State {
	s.App = app.Reduce(s.App, in)
	s.Articles = articles.Reduce(s.Articles, in)
	s.Auth = auth.Reduce(s.Auth, in)
	s.Events = events.Reduce(s.Events, in)
	s.Images = images.Reduce(s.Images, in)
	s.Members = members.Reduce(s.Members, in)
	return s
}

// IsLoading is the aggregate loading selector over the full tree
func (s State) IsLoading() bool {
	return app.SelectIsLoading(s.Articles, s.Auth, s.Events, s.Images, s.Members)
}
