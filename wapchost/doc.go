/*
Package wapchost adapts a procmock.Client to the waPC host-call signature
used by Tarmac SDK capability clients.

Capability clients accept an override of the form

	func(namespace, capability, function string, payload []byte) ([]byte, error)

for testing. Host exposes exactly that signature backed by a mock procedure
client, mapping the namespace, capability, and function triple onto the
three-segment address {namespace, capability, function} and the payload onto
the invocation input. Scripted outputs must be []byte, string, or nil.

	host, _ := wapchost.New(wapchost.Config{})
	host.Client().On(procmock.Address{"tarmac", "httpclient", "call"}).Return(respBytes)

	client, _ := sdkhttp.New(sdkhttp.Config{HostCall: host.HostCall})
	// exercise client, then assert on host.Client().Calls()
*/
package wapchost
