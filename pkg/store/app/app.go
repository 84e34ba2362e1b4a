package app

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// State is the app slice: UI preferences and the app-wide refresh trigger
type State struct {
	IsDarkMode              bool       `json:"isDarkMode"`
	IsSafeMode              bool       `json:"isSafeMode"`
	IsDesktopView           bool       `json:"isDesktopView"`
	IsWideView              bool       `json:"isWideView"`
	ShowUpcomingEventBanner bool       `json:"showUpcomingEventBanner"`
	BannerLastCleared       *time.Time `json:"bannerLastCleared"`
}

// NewState returns the initial app slice
func NewState() *State {
	return &State{
		ShowUpcomingEventBanner: true,
	}
}

// RefreshRequested asks every refetchable slice to background-refresh. It is
// a trigger only; no reducer changes state for it.
type RefreshRequested struct{}

func (RefreshRequested) IntentType() string { return "[App] Refresh app requested" }

type ThemeToggled struct{}

func (ThemeToggled) IntentType() string { return "[App] Theme toggled" }

type SafeModeToggled struct{}

func (SafeModeToggled) IntentType() string { return "[App] Safe mode toggled" }

type DesktopViewToggled struct{}

func (DesktopViewToggled) IntentType() string { return "[App] Desktop view toggled" }

type WideViewChanged struct {
	IsWideView bool
}

func (WideViewChanged) IntentType() string { return "[App] Wide view changed" }

type UpcomingEventBannerCleared struct{}

func (UpcomingEventBannerCleared) IntentType() string { return "[App] Upcoming event banner cleared" }

// Reduce applies an intent to the app slice. Unknown intents return the
// identical input pointer.
func Reduce(s *State, in intent.Intent) *State {
	switch v := in.(type) {
	case ThemeToggled:
		next := *s
		next.IsDarkMode = !s.IsDarkMode
		return &next

	case SafeModeToggled:
		next := *s
		next.IsSafeMode = !s.IsSafeMode
		return &next

	case DesktopViewToggled:
		next := *s
		next.IsDesktopView = !s.IsDesktopView
		return &next

	case WideViewChanged:
		next := *s
		next.IsWideView = v.IsWideView
		return &next

	case UpcomingEventBannerCleared:
		next := *s
		now := time.Now().UTC()
		next.ShowUpcomingEventBanner = false
		next.BannerLastCleared = &now
		return &next

	default:
		return s
	}
}
