package assistant

import "errors"

var (
	// ErrInterpretation means the language model could not be reached or
	// returned something that was not parseable JSON.
	ErrInterpretation = errors.New("could not interpret the command")

	// ErrUnknownAction means the model emitted an action outside the
	// supported vocabulary. Raised before any calendar call is made.
	ErrUnknownAction = errors.New("unsupported action")

	// ErrMalformedTime means a time slot the model extracted does not
	// parse under any accepted layout.
	ErrMalformedTime = errors.New("malformed time in command")

	ErrMissingTitle     = errors.New("event title is required")
	ErrMissingStartTime = errors.New("event start time is required")

	// ErrNoMatch means entity resolution found no event for the fragment.
	ErrNoMatch = errors.New("no matching event")
)
