package app

import (
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/auth"
	"github.com/lakecity-club/clubstate/pkg/store/events"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/members"
	"github.com/lakecity-club/clubstate/pkg/store/selector"
)

// SelectIsLoading reports whether any of the five tracked slices is in a
// foreground load. Background loads deliberately do not count, so silent
// refreshes never show the global loader. Memoized on the five slice
// references; a dispatch that changes nothing recomputes nothing.
var SelectIsLoading = selector.Memo5(func(
	art *articles.State,
	au *auth.State,
	ev *events.State,
	img *images.State,
	mem *members.State,
) bool {
	states := []model.CallState{art.Call, au.Call, ev.Call, img.Call, mem.Call}
	for _, cs := range states {
		if cs.Status == model.CallStatusLoading {
			return true
		}
	}
	return false
})

// SelectIsDarkMode returns the dark mode preference
func SelectIsDarkMode(s *State) bool {
	return s.IsDarkMode
}

// SelectShowUpcomingEventBanner reports whether the event banner is visible
func SelectShowUpcomingEventBanner(s *State) bool {
	return s.ShowUpcomingEventBanner
}
