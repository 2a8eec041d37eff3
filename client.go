package procmock

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Handler stands in for a real procedure at one address. It receives the
// invocation input and produces the outcome; a returned error propagates to
// the caller verbatim.
type Handler func(input any) (any, error)

// Ref is a structured procedure reference accepted by CallRef. A non-nil
// Input takes precedence over the input argument passed to CallRef.
type Ref struct {
	Proc  Address
	Input any
}

// Recognized field names for map-shaped procedure references.
const (
	refFieldPrimary  = "$proc"
	refFieldFallback = "proc"
	refFieldInput    = "input"
)

// Config controls construction of a Client.
type Config struct {
	// DefaultResponse is used for any address with no registered
	// response or handler. When nil, unregistered addresses succeed
	// with no value.
	DefaultResponse *Response

	// DisableRecording turns off the domain Call Log. Spy histories on
	// the entry points are kept regardless.
	DisableRecording bool

	// Sleep overrides the wait primitive used for response delays.
	// Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Now overrides the timestamp source for Call records. Defaults to
	// time.Now.
	Now func() time.Time

	// Logger enables debug tracing of invocations. Defaults to a no-op
	// logger.
	Logger *zerolog.Logger
}

// Client is the dispatch engine of the test double. It owns the
// address-keyed registries, the Call Log, and the invocation entry points.
// A zero Config yields a client that records calls and answers every
// address with an empty success.
type Client struct {
	mu        sync.Mutex
	responses map[string]Response
	handlers  map[string]Handler
	calls     []Call

	defaultResponse *Response
	record          bool
	sleep           func(time.Duration)
	now             func() time.Time
	log             zerolog.Logger

	// CallSpy records the raw arguments of every Call invocation.
	CallSpy *Spy

	// RefSpy records the raw arguments of every CallRef invocation,
	// including malformed ones.
	RefSpy *Spy
}

// New creates a new mock procedure client.
func New(config Config) *Client {
	sleep := config.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	log := zerolog.Nop()
	if config.Logger != nil {
		log = *config.Logger
	}

	// Snapshot the default response so later mutation by the caller
	// cannot change construction-time behavior.
	var def *Response
	if config.DefaultResponse != nil {
		r := *config.DefaultResponse
		def = &r
	}

	return &Client{
		responses:       make(map[string]Response),
		handlers:        make(map[string]Handler),
		defaultResponse: def,
		record:          !config.DisableRecording,
		sleep:           sleep,
		now:             now,
		log:             log,
		CallSpy:         &Spy{},
		RefSpy:          &Spy{},
	}
}

// SetResponse registers or overwrites the canned response for an address.
// Registered handlers for the same address shadow it until Reset.
func (c *Client) SetResponse(address Address, response Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[address.Key()] = response
}

// SetHandler registers or overwrites the handler for an address. Any canned
// response for the same address is shadowed, not removed.
func (c *Client) SetHandler(address Address, fn Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[address.Key()] = fn
}

// On starts fluent configuration of the behavior for an address.
func (c *Client) On(address Address) *ResponseBuilder {
	return &ResponseBuilder{client: c, address: address.clone()}
}

// Call invokes the procedure at an address. The call is recorded before any
// behavior runs, so the Call Log reflects issuance order even when responses
// carry delays. Behavior precedence for the address: handler, then
// registered response, then the client's default response, then an empty
// success.
func (c *Client) Call(address Address, input any) (any, error) {
	c.CallSpy.Record(address, input)
	c.recordCall(address, input)

	handler, response := c.resolve(address)
	if handler != nil {
		c.log.Debug().Stringer("address", address).Msg("dispatching to handler")
		return handler(input)
	}

	if response.Delay > 0 {
		c.sleep(response.Delay)
	}

	if response.Err != nil {
		c.log.Debug().Stringer("address", address).Err(response.Err).Msg("returning scripted error")
		return nil, response.Err
	}

	c.log.Debug().Stringer("address", address).Msg("returning scripted output")
	return response.Output, nil
}

// CallRef invokes a procedure through a reference value. Accepted shapes are
// an Address (or string-segment slice), a Ref, or a map carrying the address
// under "$proc" (or "proc") and optionally an input under "input". Embedded
// input takes precedence over the input argument. Anything else fails with
// ErrMalformedReference and is never added to the Call Log.
func (c *Client) CallRef(ref any, input any) (any, error) {
	c.RefSpy.Record(ref, input)

	address, resolvedInput, err := resolveRef(ref, input)
	if err != nil {
		c.log.Debug().Err(err).Msg("rejecting procedure reference")
		return nil, err
	}
	return c.Call(address, resolvedInput)
}

// Calls returns the Call Log in invocation order. The returned slice is a
// snapshot; mutating it, including a record's address segments, does not
// affect the live log.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	for i, call := range c.calls {
		call.Address = call.Address.clone()
		out[i] = call
	}
	return out
}

// CallsFor returns the subsequence of the Call Log whose address equals the
// given address by full ordered-segment equality, preserving relative order.
func (c *Client) CallsFor(address Address) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Call
	for _, call := range c.calls {
		if call.Address.Equal(address) {
			call.Address = call.Address.clone()
			out = append(out, call)
		}
	}
	return out
}

// ClearCalls empties the Call Log. Registered responses and handlers, and
// the spy histories, are untouched.
func (c *Client) ClearCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

// Reset returns the client to its post-construction state: the Call Log,
// both registries, and both spy histories are cleared. Construction-time
// settings, including the default response, survive.
func (c *Client) Reset() {
	c.mu.Lock()
	c.calls = nil
	c.responses = make(map[string]Response)
	c.handlers = make(map[string]Handler)
	c.mu.Unlock()

	c.CallSpy.Reset()
	c.RefSpy.Reset()
}

// recordCall appends a Call record under the client mutex. Recording never
// suspends, which keeps the log in issuance order across bursts of calls.
func (c *Client) recordCall(address Address, input any) {
	if !c.record {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Call{
		Address: address.clone(),
		Input:   input,
		Time:    c.now(),
	})
}

// resolve returns the behavior for an address. Precedence: handler, then
// registered response, then default response, then an empty outcome.
func (c *Client) resolve(address Address) (Handler, Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := address.Key()
	if fn, ok := c.handlers[key]; ok {
		return fn, Response{}
	}
	if r, ok := c.responses[key]; ok {
		return nil, r
	}
	if c.defaultResponse != nil {
		return nil, *c.defaultResponse
	}
	return nil, Response{}
}

// refShape classifies CallRef arguments ahead of extraction so each
// accepted shape is handled exactly once.
type refShape int

const (
	shapeAddress refShape = iota
	shapeObject
	shapeInvalid
)

// classifyRef determines which reference shape a CallRef argument has.
func classifyRef(ref any) refShape {
	switch v := ref.(type) {
	case Address, []string:
		return shapeAddress
	case []any:
		if _, ok := toAddress(v); ok {
			return shapeAddress
		}
		return shapeInvalid
	case Ref:
		return shapeObject
	case *Ref:
		if v == nil {
			return shapeInvalid
		}
		return shapeObject
	case map[string]any:
		return shapeObject
	default:
		return shapeInvalid
	}
}

// resolveRef extracts the address and effective input from a CallRef
// argument, falling back to the separately supplied input when the
// reference carries none of its own.
func resolveRef(ref any, fallbackInput any) (Address, any, error) {
	switch classifyRef(ref) {
	case shapeAddress:
		address, _ := toAddress(ref)
		return address, fallbackInput, nil
	case shapeObject:
		return resolveRefObject(ref, fallbackInput)
	default:
		return nil, nil, fmt.Errorf("%w: %T is not an address or reference object", ErrMalformedReference, ref)
	}
}

// resolveRefObject extracts address and input from the object-shaped
// reference variants.
func resolveRefObject(ref any, fallbackInput any) (Address, any, error) {
	switch v := ref.(type) {
	case Ref:
		return refStructFields(v, fallbackInput)
	case *Ref:
		return refStructFields(*v, fallbackInput)
	case map[string]any:
		field, ok := v[refFieldPrimary]
		if !ok {
			field, ok = v[refFieldFallback]
		}
		if !ok {
			return nil, nil, fmt.Errorf(
				"%w: reference object carries neither %q nor %q",
				ErrMalformedReference,
				refFieldPrimary,
				refFieldFallback,
			)
		}

		address, ok := toAddress(field)
		if !ok || len(address) == 0 {
			return nil, nil, fmt.Errorf("%w: address field is not a segment sequence", ErrMalformedReference)
		}

		if embedded, ok := v[refFieldInput]; ok {
			return address, embedded, nil
		}
		return address, fallbackInput, nil
	}
	return nil, nil, ErrMalformedReference
}

// refStructFields extracts address and input from a Ref value.
func refStructFields(r Ref, fallbackInput any) (Address, any, error) {
	if len(r.Proc) == 0 {
		return nil, nil, fmt.Errorf("%w: reference carries an empty procedure address", ErrMalformedReference)
	}
	if r.Input != nil {
		return r.Proc, r.Input, nil
	}
	return r.Proc, fallbackInput, nil
}

// toAddress converts the accepted address representations into an Address.
func toAddress(v any) (Address, bool) {
	switch s := v.(type) {
	case Address:
		return s, true
	case []string:
		return Address(s), true
	case []any:
		address := make(Address, 0, len(s))
		for _, seg := range s {
			str, ok := seg.(string)
			if !ok {
				return nil, false
			}
			address = append(address, str)
		}
		return address, true
	}
	return nil, false
}
