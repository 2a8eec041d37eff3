package procmock

import "time"

// Call is an immutable record of one procedure invocation: the address, the
// input value as passed (held by reference, not deep-copied), and the time
// the call was issued. Records are appended before behavior resolution, so
// the log order is invocation-start order, independent of per-call delay.
type Call struct {
	Address Address
	Input   any
	Time    time.Time
}
