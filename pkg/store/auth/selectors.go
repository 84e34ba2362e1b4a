package auth

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
)

// SelectCallState returns the slice call state
func SelectCallState(s *State) model.CallState {
	return s.Call
}

// SelectUser returns the authenticated user, or nil
func SelectUser(s *State) *model.User {
	return s.User
}

// SelectIsAuthenticated reports whether a user session exists
func SelectIsAuthenticated(s *State) bool {
	return s.User != nil
}

// SelectHasCode reports whether a password-change code has been issued
func SelectHasCode(s *State) bool {
	return s.HasCode
}

// SelectSessionStartTime returns the session start, or nil
func SelectSessionStartTime(s *State) *time.Time {
	return s.SessionStartTime
}
