package procmock

import "sync"

// Spy records the raw arguments of every invocation of one entry point. It
// is the framework-facing history handed to assertion helpers, kept separate
// from the domain Call Log: a malformed CallRef still shows up in the spy
// because the entry point was invoked, even though no Call record exists.
type Spy struct {
	mu    sync.Mutex
	calls [][]any
}

// Record appends one invocation's argument list.
func (s *Spy) Record(args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, args)
}

// Calls returns a snapshot of all recorded argument lists in invocation
// order. Mutating the returned slices does not affect the spy.
func (s *Spy) Calls() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]any, len(s.calls))
	for i, args := range s.calls {
		out[i] = append([]any(nil), args...)
	}
	return out
}

// Count returns how many invocations have been recorded.
func (s *Spy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// NthCall returns the argument list of the n-th invocation (1-based), or
// nil when no such invocation exists.
func (s *Spy) NthCall(n int) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.calls) {
		return nil
	}
	return s.calls[n-1]
}

// Reset clears the recorded history.
func (s *Spy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}
