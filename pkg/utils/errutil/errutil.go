package errutil

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// Normalize maps a heterogeneous collaborator error into the single error
// record reducers store. Goerr errors keep their outermost message; anything
// else is passed through verbatim under a generic name.
func Normalize(err error) model.ErrorInfo {
	if err == nil {
		return model.ErrorInfo{}
	}

	name := "Error"
	switch {
	case goerr.HasTag(err, types.ErrTagValidation):
		name = "ValidationError"
	case goerr.HasTag(err, types.ErrTagIntegrity):
		name = "IntegrityError"
	case goerr.HasTag(err, types.ErrTagTimeout):
		name = "TimeoutError"
	case goerr.HasTag(err, types.ErrTagNetwork):
		name = "NetworkError"
	case goerr.HasTag(err, types.ErrTagPersistence):
		name = "PersistenceError"
	}

	return model.ErrorInfo{Name: name, Message: err.Error()}
}

// Log logs the error with its structured goerr values. Used by side-effect
// pipelines and the persistence layer, where failures are swallowed rather
// than propagated.
func Log(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
		)
		return
	}
	logger.Error(msg, "error", err.Error())
}
