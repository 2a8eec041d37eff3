package script

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	procmock "github.com/tarmac-project/procmock"
)

var (
	// ErrMissingPath is returned when a scripted procedure has no
	// address segments.
	ErrMissingPath = errors.New("scripted procedure has no path")

	// ErrNegativeDelay is returned when a scripted delay is negative.
	ErrNegativeDelay = errors.New("scripted delay is negative")
)

// Procedure is one scripted address with its canned outcome.
type Procedure struct {
	// Path holds the address segments.
	Path []string `toml:"path"`

	// Output is the value returned on success.
	Output any `toml:"output"`

	// Error, when non-empty, makes the invocation fail with an error
	// carrying exactly this message. It wins over Output.
	Error string `toml:"error"`

	// DelayMS is an artificial wait in milliseconds applied before the
	// outcome.
	DelayMS int64 `toml:"delay_ms"`
}

// Outcome is the scripted default response applied to unregistered
// addresses.
type Outcome struct {
	Output  any    `toml:"output"`
	Error   string `toml:"error"`
	DelayMS int64  `toml:"delay_ms"`
}

// Script is a parsed response script.
type Script struct {
	// Default, when present, becomes the client's default response.
	Default *Outcome `toml:"default"`

	// Procedures lists the scripted addresses.
	Procedures []Procedure `toml:"procedure"`
}

// Parse decodes and validates a TOML response script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	for i, p := range s.Procedures {
		if len(p.Path) == 0 {
			return nil, fmt.Errorf("%w: procedure %d", ErrMissingPath, i)
		}
		if p.DelayMS < 0 {
			return nil, fmt.Errorf("%w: procedure %d", ErrNegativeDelay, i)
		}
	}
	if s.Default != nil && s.Default.DelayMS < 0 {
		return nil, fmt.Errorf("%w: default response", ErrNegativeDelay)
	}

	return &s, nil
}

// Config returns a client configuration carrying the script's default
// response, if any. The default response is a construction-time setting, so
// it cannot be applied to an existing client.
func (s *Script) Config() procmock.Config {
	if s.Default == nil {
		return procmock.Config{}
	}
	r := toResponse(s.Default.Output, s.Default.Error, s.Default.DelayMS)
	return procmock.Config{DefaultResponse: &r}
}

// Apply registers every scripted procedure on the client. The script's
// default response, being construction-time configuration, is not applied;
// use Config or NewClient for that.
func (s *Script) Apply(client *procmock.Client) {
	for _, p := range s.Procedures {
		client.SetResponse(procmock.Address(p.Path), toResponse(p.Output, p.Error, p.DelayMS))
	}
}

// NewClient parses a script and builds a client with the scripted default
// response and all scripted procedures registered.
func NewClient(data []byte) (*procmock.Client, error) {
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}

	client := procmock.New(s.Config())
	s.Apply(client)
	return client, nil
}

// toResponse converts scripted fields into a response descriptor.
func toResponse(output any, errMsg string, delayMS int64) procmock.Response {
	r := procmock.Response{
		Output: output,
		Delay:  time.Duration(delayMS) * time.Millisecond,
	}
	if errMsg != "" {
		r.Err = errors.New(errMsg)
	}
	return r
}
