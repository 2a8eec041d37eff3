package wapchost

import (
	"errors"
	"fmt"

	procmock "github.com/tarmac-project/procmock"
)

var (
	// ErrOutputNotBytes is returned when a scripted output for a host
	// call address is neither []byte, string, nor nil.
	ErrOutputNotBytes = errors.New("scripted output is not a byte payload")
)

// Config controls construction of a Host.
type Config struct {
	// Client is the mock procedure client backing host calls. When nil,
	// a fresh client with default configuration is used.
	Client *procmock.Client
}

// Host exposes a procmock.Client through the waPC host-call signature.
type Host struct {
	client *procmock.Client
}

// New creates a Host backed by the configured or a freshly constructed
// mock procedure client.
func New(config Config) (*Host, error) {
	client := config.Client
	if client == nil {
		client = procmock.New(procmock.Config{})
	}
	return &Host{client: client}, nil
}

// Client returns the backing mock procedure client for registration and
// call-log assertions.
func (h *Host) Client() *procmock.Client {
	return h.client
}

// HostCall invokes the procedure at {namespace, capability, function} with
// the payload as input. Scripted and handler errors propagate verbatim;
// scripted outputs are converted to byte payloads.
func (h *Host) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	address := procmock.Address{namespace, capability, function}

	out, err := h.client.Call(address, payload)
	if err != nil {
		return nil, err
	}

	switch v := out.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %s returned %T", ErrOutputNotBytes, address, out)
	}
}
