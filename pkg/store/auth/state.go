package auth

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
)

// State is the auth slice. SessionStartTime is non-nil iff User is non-nil;
// the post-rehydration session validator enforces the pairing for persisted
// state that outlived its session.
type State struct {
	Call             model.CallState `json:"callState"`
	User             *model.User     `json:"user"`
	HasCode          bool            `json:"hasCode"`
	SessionStartTime *time.Time      `json:"sessionStartTime"`
}

// NewState returns the initial auth slice
func NewState() *State {
	return &State{
		Call: model.IdleCall(),
	}
}

// SessionExpired reports whether the session started more than maxAge before
// now. A state without a session never counts as expired.
func (s *State) SessionExpired(now time.Time, maxAge time.Duration) bool {
	if s.SessionStartTime == nil {
		return false
	}
	return now.Sub(*s.SessionStartTime) > maxAge
}
