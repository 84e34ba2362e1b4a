package effect

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

func matchType[T intent.Intent]() func(intent.Intent) bool {
	return func(in intent.Intent) bool {
		_, ok := in.(T)
		return ok
	}
}

func matchAny(matchers ...func(intent.Intent) bool) func(intent.Intent) bool {
	return func(in intent.Intent) bool {
		for _, m := range matchers {
			if m(in) {
				return true
			}
		}
		return false
	}
}

func ok(intents ...intent.Intent) []intent.Intent { return intents }

func fail(in intent.Intent) []intent.Intent { return []intent.Intent{in} }

// count resolves an optional filtered count against the page length
func count(filtered *int, pageLen int) int {
	if filtered != nil {
		return *filtered
	}
	return pageLen
}

func validationError(msg string) model.ErrorInfo {
	return errutil.Normalize(goerr.New(msg, goerr.T(types.ErrTagValidation)))
}

func idMismatch(op, expected, actual string) model.ErrorInfo {
	return errutil.Normalize(goerr.New(
		fmt.Sprintf("The %s was confirmed for id %q, but id %q was requested.", op, actual, expected),
		goerr.T(types.ErrTagIntegrity),
	))
}

// stampingUser returns the display name used to stamp modification info,
// read from the snapshot at execution time
func stampingUser(s store.State) (string, error) {
	if s.Auth.User == nil {
		return "", goerr.New("You must be signed in to modify content.", goerr.T(types.ErrTagValidation))
	}
	return s.Auth.User.FullName(), nil
}
