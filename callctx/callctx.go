package callctx

import (
	"context"

	procmock "github.com/tarmac-project/procmock"
)

// DefaultPath is the sentinel address used when Config.Path is empty.
var DefaultPath = procmock.Address{"test", "procedure"}

// Config controls construction of a Context. All fields are optional.
type Config struct {
	// Path is the address the handler under test runs as.
	Path procmock.Address

	// Metadata is free-form data exposed to the handler.
	Metadata map[string]any

	// Client is the mock procedure client bound to the context.
	Client *procmock.Client

	// Signal is a cancellation signal passed through to the handler.
	// The mock client does not act on it.
	Signal context.Context
}

// Context is the execution environment a procedure handler under test
// receives as its single collaborator.
type Context struct {
	// Path is the address this context represents.
	Path procmock.Address

	// Metadata holds free-form data for the handler.
	Metadata map[string]any

	// Client is the bound mock procedure client.
	Client *procmock.Client

	// Signal is an inert cancellation signal; handlers may honor it,
	// the client never checks it.
	Signal context.Context
}

// New builds a Context, filling unset Config fields with defaults: the
// DefaultPath sentinel, an empty metadata map, a fresh client with default
// configuration, and context.Background.
func New(config Config) *Context {
	path := config.Path
	if len(path) == 0 {
		path = append(procmock.Address(nil), DefaultPath...)
	}

	metadata := config.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}

	client := config.Client
	if client == nil {
		client = procmock.New(procmock.Config{})
	}

	signal := config.Signal
	if signal == nil {
		signal = context.Background()
	}

	return &Context{
		Path:     path,
		Metadata: metadata,
		Client:   client,
		Signal:   signal,
	}
}
