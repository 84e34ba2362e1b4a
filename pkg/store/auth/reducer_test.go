package auth_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store/auth"
)

var testUser = model.User{ID: "u1", Email: "jo@club.example", FirstName: "Jo", LastName: "Lakes"}

type noMatch struct{}

func (noMatch) IntentType() string { return "[Test] no auth reducer handles this" }

func TestReduceUnknownIntentReturnsSamePointer(t *testing.T) {
	s := auth.NewState()
	if auth.Reduce(s, noMatch{}) != s {
		t.Error("unknown intent must return the identical state pointer")
	}
}

func TestReduceLoginLifecycle(t *testing.T) {
	s := auth.NewState()

	loading := auth.Reduce(s, auth.LoginRequested{})
	gt.Bool(t, loading.Call.IsLoading()).True()
	gt.Bool(t, loading.Call.Valid()).True()

	in := auth.Reduce(loading, auth.LoginSucceeded{User: testUser})
	gt.Value(t, in.User).NotNil()
	gt.Value(t, in.User.FullName()).Equal("Jo Lakes")
	gt.Value(t, in.SessionStartTime).NotNil()
	gt.Value(t, in.Call.Status).Equal(model.CallStatusIdle)

	out := auth.Reduce(in, auth.LogoutSucceeded{})
	gt.Value(t, out.User).Nil()
	gt.Value(t, out.SessionStartTime).Nil()
	gt.Bool(t, out.HasCode).False()
}

func TestReduceLoginFailed(t *testing.T) {
	s := auth.NewState()
	next := auth.Reduce(s, auth.LoginFailed{Error: model.ErrorInfo{Name: "ValidationError", Message: "wrong password"}})
	gt.Value(t, next.Call.Status).Equal(model.CallStatusError)
	gt.Value(t, next.Call.Error.Name).Equal("ValidationError")
	gt.Value(t, next.User).Nil()
}

func TestReducePasswordChangeFlow(t *testing.T) {
	s := auth.NewState()

	withCode := auth.Reduce(s, auth.CodeForPasswordChangeSucceeded{})
	gt.Bool(t, withCode.HasCode).True()

	changed := auth.Reduce(withCode, auth.PasswordChangeSucceeded{User: testUser})
	gt.Bool(t, changed.HasCode).False()
	gt.Value(t, changed.User).NotNil()
	gt.Value(t, changed.SessionStartTime).NotNil()
}

func TestReduceSessionRefreshResetsStartTime(t *testing.T) {
	s := auth.NewState()
	in := auth.Reduce(s, auth.LoginSucceeded{User: testUser})
	old := *in.SessionStartTime

	time.Sleep(5 * time.Millisecond)
	refreshed := auth.Reduce(in, auth.SessionRefreshSucceeded{})
	gt.Bool(t, refreshed.SessionStartTime.After(old)).True()
	gt.Value(t, refreshed.User).Equal(in.User)
}

func TestReduceRequestTimedOut(t *testing.T) {
	s := auth.NewState()
	next := auth.Reduce(s, auth.RequestTimedOut{})
	gt.Value(t, next.Call.Status).Equal(model.CallStatusError)
	gt.Value(t, next.Call.Error.Name).Equal("TimeoutError")
	gt.Bool(t, next.Call.Valid()).True()
}

func TestSessionExpired(t *testing.T) {
	s := auth.NewState()
	now := time.Now().UTC()

	gt.Bool(t, s.SessionExpired(now, 30*time.Minute)).False()

	start := now.Add(-31 * time.Minute)
	s = &auth.State{Call: model.IdleCall(), User: &testUser, SessionStartTime: &start}
	gt.Bool(t, s.SessionExpired(now, 30*time.Minute)).True()

	recent := now.Add(-29 * time.Minute)
	s = &auth.State{Call: model.IdleCall(), User: &testUser, SessionStartTime: &recent}
	gt.Bool(t, s.SessionExpired(now, 30*time.Minute)).False()
}
