package model

import "time"

// CallStatus is the request lifecycle status of a slice
type CallStatus string

const (
	CallStatusIdle              CallStatus = "idle"
	CallStatusLoading           CallStatus = "loading"
	CallStatusBackgroundLoading CallStatus = "background-loading"
	CallStatusError             CallStatus = "error"
)

// ErrorInfo is the normalized error record stored in a slice. Heterogeneous
// collaborator errors are mapped into this shape before they reach a reducer.
type ErrorInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// CallState tracks the request lifecycle of the slice that embeds it.
// Invariants: LoadStart is non-nil iff Status is loading or
// background-loading; Error is non-nil iff Status is error. The constructors
// below are the only way reducers build one, which keeps both invariants
// holding for every reachable state.
type CallState struct {
	Status    CallStatus `json:"status"`
	LoadStart *time.Time `json:"loadStart"`
	Error     *ErrorInfo `json:"error"`
}

// IdleCall returns the idle call state
func IdleCall() CallState {
	return CallState{Status: CallStatusIdle}
}

// LoadingCall returns a loading call state started at the given time
func LoadingCall(start time.Time) CallState {
	return CallState{Status: CallStatusLoading, LoadStart: &start}
}

// BackgroundLoadingCall returns a background-loading call state. Background
// loads do not flip the aggregate loading indicator.
func BackgroundLoadingCall(start time.Time) CallState {
	return CallState{Status: CallStatusBackgroundLoading, LoadStart: &start}
}

// ErrorCall returns an error call state holding the given error record
func ErrorCall(errInfo ErrorInfo) CallState {
	return CallState{Status: CallStatusError, Error: &errInfo}
}

// IsLoading reports whether the call state is a foreground load
func (c CallState) IsLoading() bool {
	return c.Status == CallStatusLoading
}

// Valid reports whether the LoadStart/Error invariants hold
func (c CallState) Valid() bool {
	inFlight := c.Status == CallStatusLoading || c.Status == CallStatusBackgroundLoading
	if inFlight != (c.LoadStart != nil) {
		return false
	}
	return (c.Status == CallStatusError) == (c.Error != nil)
}
