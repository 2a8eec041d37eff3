/*
Package procmock provides an in-process test double for clients that invoke
procedures by address.

A procedure address is an ordered sequence of segments such as
["fs", "read"]. Tests register canned responses or handler functions against
addresses, hand the mock client to the code under test, and afterwards assert
on what was called, with what input, and in what order. No network or file
I/O ever happens; everything lives in the memory of one Client instance.

# Basic Usage

Create a client, script a response, and invoke:

	client := procmock.New(procmock.Config{})
	client.On(procmock.Address{"fs", "read"}).Return("file contents")

	out, err := client.Call(procmock.Address{"fs", "read"}, map[string]any{"path": "/test.txt"})
	// out == "file contents", err == nil

	calls := client.CallsFor(procmock.Address{"fs", "read"})
	// len(calls) == 1, calls[0].Input is the map passed above

# Scripting Failures and Delays

Responses may carry an error, an artificial delay, or both. An error always
wins over an output on the same response:

	client.On(procmock.Address{"fs", "read"}).ReturnError(errors.New("ENOENT"))
	client.On(procmock.Address{"db", "query"}).Return(rows).After(50 * time.Millisecond)

# Handlers

A handler function registered for an address shadows any canned response for
that address until Reset:

	client.On(procmock.Address{"math", "add"}).Handle(func(input any) (any, error) {
		nums := input.([]int)
		return nums[0] + nums[1], nil
	})

# Call Histories

Two histories exist side by side. The domain Call Log (Calls, CallsFor)
records one entry per procedure invocation, appended before any delay or
handler runs, so a burst of calls is logged in issuance order. The spy
histories (CallSpy, RefSpy) record the raw arguments of each entry point for
integration with assertion helpers. ClearCalls empties only the Call Log;
Reset returns the whole client to its post-construction state while keeping
construction-time settings such as the default response.

Subpackages: callctx builds execution contexts for handlers under test,
wapchost adapts a Client to the waPC host-call signature, and script applies
TOML-scripted response sets.
*/
package procmock
