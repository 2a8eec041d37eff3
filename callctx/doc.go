/*
Package callctx builds execution contexts for procedure handlers under test.

A Context bundles the address a handler runs as, free-form metadata, and a
bound procmock.Client the handler calls back into. Construction is pure:
nothing is recorded and no registry is touched until the handler itself
invokes a procedure.

	ctx := callctx.New(callctx.Config{
		Path:     procmock.Address{"fs", "read"},
		Metadata: map[string]any{"request_id": "abc123"},
	})

	out, err := handlerUnderTest(ctx, input)
	// assert on out/err, then on ctx.Client.Calls()

Zero-value Config fields fall back to DefaultPath, an empty metadata map, a
freshly constructed client, and context.Background as the cancellation
signal. The signal is carried for handlers that want to honor it; the client
itself never checks it.
*/
package callctx
