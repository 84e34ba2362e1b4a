package types

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy tags. Every failure produced by an effect pipeline or the
// persistence layer carries exactly one of these, so callers can classify an
// error without inspecting its message.
var (
	// ErrTagValidation marks pre-flight failures that never reached the network
	ErrTagValidation = goerr.NewTag("validation")

	// ErrTagNetwork marks normalized transport failures from a collaborator
	ErrTagNetwork = goerr.NewTag("network")

	// ErrTagIntegrity marks post-response count mismatches. An integrity
	// failure takes precedence over the transport-level success of the call.
	ErrTagIntegrity = goerr.NewTag("integrity")

	// ErrTagTimeout marks requests that lost the race against their deadline
	ErrTagTimeout = goerr.NewTag("timeout")

	// ErrTagPersistence marks durable-storage failures. These are always
	// swallowed at the boundary and never surface as a slice error state.
	ErrTagPersistence = goerr.NewTag("persistence")
)
