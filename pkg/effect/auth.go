package effect

import (
	"context"
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store/auth"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

// DefaultAuthTimeout bounds every auth request. Auth flows block the UI, so
// a stalled connection must resolve to a distinct timed-out state instead of
// hanging in loading.
const DefaultAuthTimeout = 5000 * time.Millisecond

// race runs call against a deadline. Exactly one outcome wins: on timeout
// the call's eventual resolution is dropped, it never produces a second
// intent.
func race[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (result T, timedOut bool, err error) {
	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, callErr := call(ctx)
		done <- outcome{value: v, err: callErr}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.value, false, out.err
	case <-timer.C:
		var zero T
		return zero, true, nil
	}
}

// AuthPipelines returns the authentication workflows. Every request races
// the timeout; re-triggering a flow supersedes the in-flight one.
func AuthPipelines(api interfaces.API, timeout time.Duration) []Pipeline {
	return []Pipeline{
		{
			Name:   "auth.login",
			Policy: PolicySwitch,
			Match:  matchType[auth.LoginRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(auth.LoginRequested)
				user, timedOut, err := race(ctx, timeout, func(ctx context.Context) (*model.User, error) {
					return api.Auth().LogIn(ctx, req.Email, req.Password)
				})
				if timedOut {
					return ok(auth.RequestTimedOut{})
				}
				if err != nil {
					return fail(auth.LoginFailed{Error: errutil.Normalize(err)})
				}
				return ok(auth.LoginSucceeded{User: *user})
			},
		},
		{
			Name:   "auth.logout",
			Policy: PolicySwitch,
			Match:  matchType[auth.LogoutRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(auth.LogoutRequested)
				_, timedOut, err := race(ctx, timeout, func(ctx context.Context) (struct{}, error) {
					return struct{}{}, api.Auth().LogOut(ctx)
				})
				if timedOut {
					return ok(auth.RequestTimedOut{})
				}
				if err != nil {
					return fail(auth.LogoutFailed{Error: errutil.Normalize(err)})
				}
				return ok(auth.LogoutSucceeded{SessionExpired: req.SessionExpired})
			},
		},
		{
			Name:   "auth.sendCode",
			Policy: PolicySwitch,
			Match:  matchType[auth.CodeForPasswordChangeRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(auth.CodeForPasswordChangeRequested)
				_, timedOut, err := race(ctx, timeout, func(ctx context.Context) (struct{}, error) {
					return struct{}{}, api.Auth().SendCodeForPasswordChange(ctx, req.Email)
				})
				if timedOut {
					return ok(auth.RequestTimedOut{})
				}
				if err != nil {
					return fail(auth.CodeForPasswordChangeFailed{Error: errutil.Normalize(err)})
				}
				return ok(auth.CodeForPasswordChangeSucceeded{})
			},
		},
		{
			Name:   "auth.changePassword",
			Policy: PolicySwitch,
			Match:  matchType[auth.PasswordChangeRequested](),
			Run: func(ctx context.Context, in intent.Intent, _ SnapshotFunc) []intent.Intent {
				req := in.(auth.PasswordChangeRequested)
				user, timedOut, err := race(ctx, timeout, func(ctx context.Context) (*model.User, error) {
					return api.Auth().ChangePassword(ctx, req.Email, req.Password, req.Code)
				})
				if timedOut {
					return ok(auth.RequestTimedOut{})
				}
				if err != nil {
					return fail(auth.PasswordChangeFailed{Error: errutil.Normalize(err)})
				}
				return ok(auth.PasswordChangeSucceeded{User: *user})
			},
		},
		{
			Name:   "auth.refreshSession",
			Policy: PolicyMerge,
			Match:  matchType[auth.SessionRefreshRequested](),
			Run: func(ctx context.Context, _ intent.Intent, _ SnapshotFunc) []intent.Intent {
				_, timedOut, err := race(ctx, timeout, func(ctx context.Context) (struct{}, error) {
					return struct{}{}, api.Auth().RefreshSession(ctx)
				})
				if timedOut {
					return ok(auth.RequestTimedOut{})
				}
				if err != nil {
					return fail(auth.SessionRefreshFailed{Error: errutil.Normalize(err)})
				}
				return ok(auth.SessionRefreshSucceeded{})
			},
		},
	}
}
