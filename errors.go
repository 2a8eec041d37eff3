package procmock

import "errors"

var (
	// ErrMalformedReference is returned when CallRef cannot extract a
	// procedure address from its argument. It is the only failure the
	// client originates itself; scripted and handler errors always
	// propagate verbatim.
	ErrMalformedReference = errors.New("malformed procedure reference")
)
