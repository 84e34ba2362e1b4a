package auth

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

// Reduce applies an intent to the auth slice. Unknown intents return the
// identical input pointer.
func Reduce(s *State, in intent.Intent) *State {
	switch v := in.(type) {
	case LoginRequested, LogoutRequested, CodeForPasswordChangeRequested,
		PasswordChangeRequested, SessionRefreshRequested:
		next := *s
		next.Call = model.LoadingCall(time.Now().UTC())
		return &next

	case LoginSucceeded:
		next := *s
		user := v.User
		now := time.Now().UTC()
		next.User = &user
		next.SessionStartTime = &now
		next.Call = model.IdleCall()
		return &next

	case LoginFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case LogoutSucceeded:
		next := *s
		next.User = nil
		next.SessionStartTime = nil
		next.HasCode = false
		next.Call = model.IdleCall()
		return &next

	case LogoutFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case CodeForPasswordChangeSucceeded:
		next := *s
		next.HasCode = true
		next.Call = model.IdleCall()
		return &next

	case CodeForPasswordChangeFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case PasswordChangeSucceeded:
		next := *s
		user := v.User
		now := time.Now().UTC()
		next.User = &user
		next.SessionStartTime = &now
		next.HasCode = false
		next.Call = model.IdleCall()
		return &next

	case PasswordChangeFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case SessionRefreshSucceeded:
		next := *s
		now := time.Now().UTC()
		next.SessionStartTime = &now
		next.Call = model.IdleCall()
		return &next

	case SessionRefreshFailed:
		return withCall(s, model.ErrorCall(v.Error))

	case RequestTimedOut:
		return withCall(s, model.ErrorCall(model.ErrorInfo{
			Name:    "TimeoutError",
			Message: "The request timed out. Please check your connection and try again.",
		}))

	default:
		return s
	}
}

func withCall(s *State, call model.CallState) *State {
	next := *s
	next.Call = call
	return &next
}
