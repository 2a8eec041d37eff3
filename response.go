package procmock

import "time"

// Response describes a canned outcome for a procedure address. All fields
// are optional. When both Output and Err are set, Err wins and the output is
// never returned. Delay, when positive, elapses before either outcome is
// produced.
type Response struct {
	// Output is the value returned on success. A nil Output is a valid
	// "no value" success, distinct from an unregistered address only in
	// that the call is still recorded.
	Output any

	// Err, when set, makes the invocation fail with exactly this error.
	Err error

	// Delay is an artificial wait applied before the outcome.
	Delay time.Duration
}

// Output builds a Response that succeeds with the given value.
func Output(v any) Response {
	return Response{Output: v}
}

// Failure builds a Response that fails with the given error.
func Failure(err error) Response {
	return Response{Err: err}
}

// Delayed builds a Response that succeeds with the given value after the
// given wait.
func Delayed(v any, d time.Duration) Response {
	return Response{Output: v, Delay: d}
}

// ResponseBuilder allows fluent configuration of the behavior registered
// for one address. Obtain one through Client.On.
type ResponseBuilder struct {
	client  *Client
	address Address
}

// Return sets the output returned for the configured address.
func (b *ResponseBuilder) Return(output any) *ResponseBuilder {
	r := b.current()
	r.Output = output
	b.client.SetResponse(b.address, r)
	return b
}

// ReturnError sets an error for the configured address. The error is
// returned verbatim and takes precedence over any configured output.
func (b *ResponseBuilder) ReturnError(err error) *Client {
	r := b.current()
	r.Err = err
	b.client.SetResponse(b.address, r)
	return b.client
}

// After sets an artificial delay applied before the configured outcome.
func (b *ResponseBuilder) After(d time.Duration) *ResponseBuilder {
	r := b.current()
	r.Delay = d
	b.client.SetResponse(b.address, r)
	return b
}

// Handle registers a handler function for the configured address. The
// handler shadows any canned response for the same address until Reset.
func (b *ResponseBuilder) Handle(fn Handler) *Client {
	b.client.SetHandler(b.address, fn)
	return b.client
}

// current returns the response already registered for the address, or a
// zero Response when none exists, so chained builder calls accumulate.
func (b *ResponseBuilder) current() Response {
	b.client.mu.Lock()
	defer b.client.mu.Unlock()
	return b.client.responses[b.address.Key()]
}
