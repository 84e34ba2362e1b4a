package auth

import "github.com/lakecity-club/clubstate/pkg/domain/model"

type LoginRequested struct {
	Email    string
	Password string `masq:"secret"`
}

func (LoginRequested) IntentType() string { return "[Auth] Login requested" }

type LoginSucceeded struct {
	User model.User
}

func (LoginSucceeded) IntentType() string { return "[Auth] Login succeeded" }

type LoginFailed struct {
	Error model.ErrorInfo
}

func (LoginFailed) IntentType() string { return "[Auth] Login failed" }

type LogoutRequested struct {
	SessionExpired bool
}

func (LogoutRequested) IntentType() string { return "[Auth] Logout requested" }

type LogoutSucceeded struct {
	SessionExpired bool
}

func (LogoutSucceeded) IntentType() string { return "[Auth] Logout succeeded" }

type LogoutFailed struct {
	Error model.ErrorInfo
}

func (LogoutFailed) IntentType() string { return "[Auth] Logout failed" }

type CodeForPasswordChangeRequested struct {
	Email string
}

func (CodeForPasswordChangeRequested) IntentType() string {
	return "[Auth] Code for password change requested"
}

type CodeForPasswordChangeSucceeded struct{}

func (CodeForPasswordChangeSucceeded) IntentType() string {
	return "[Auth] Code for password change succeeded"
}

type CodeForPasswordChangeFailed struct {
	Error model.ErrorInfo
}

func (CodeForPasswordChangeFailed) IntentType() string {
	return "[Auth] Code for password change failed"
}

type PasswordChangeRequested struct {
	Email    string
	Password string `masq:"secret"`
	Code     string `masq:"secret"`
}

func (PasswordChangeRequested) IntentType() string { return "[Auth] Password change requested" }

type PasswordChangeSucceeded struct {
	User model.User
}

func (PasswordChangeSucceeded) IntentType() string { return "[Auth] Password change succeeded" }

type PasswordChangeFailed struct {
	Error model.ErrorInfo
}

func (PasswordChangeFailed) IntentType() string { return "[Auth] Password change failed" }

type SessionRefreshRequested struct{}

func (SessionRefreshRequested) IntentType() string { return "[Auth] Session refresh requested" }

type SessionRefreshSucceeded struct{}

func (SessionRefreshSucceeded) IntentType() string { return "[Auth] Session refresh succeeded" }

type SessionRefreshFailed struct {
	Error model.ErrorInfo
}

func (SessionRefreshFailed) IntentType() string { return "[Auth] Session refresh failed" }

// RequestTimedOut is emitted when an auth request loses the race against the
// request timeout. It is a distinct intent from the network failures so the
// UI can tell stalled connectivity from rejected credentials.
type RequestTimedOut struct{}

func (RequestTimedOut) IntentType() string { return "[Auth] Request timed out" }
