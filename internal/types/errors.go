package types

import "errors"

// Internal failure modes of the generative fallback. Both are absorbed by the
// discovery service, which degrades to generic defaults instead of failing
// the request.
var (
	// ErrGenerationParse means the generative backend answered but its output
	// could not be coerced into place records.
	ErrGenerationParse = errors.New("generative response could not be parsed")

	// ErrBackendUnavailable means the generative backend could not be reached
	// or timed out.
	ErrBackendUnavailable = errors.New("generative backend unavailable")
)
