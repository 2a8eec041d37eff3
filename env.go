package procmock

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// envPrefix scopes the environment variables read by FromEnv, e.g.
// PROCMOCK_TRACE and PROCMOCK_DISABLE_RECORDING.
const envPrefix = "procmock"

// envSettings maps environment variables onto Config knobs that are useful
// to flip suite-wide in CI without touching test code.
type envSettings struct {
	// Trace enables debug tracing of every invocation to stderr.
	Trace bool `envconfig:"TRACE"`

	// DisableRecording turns off the domain Call Log.
	DisableRecording bool `envconfig:"DISABLE_RECORDING"`
}

// FromEnv builds a Config from PROCMOCK_* environment variables. Unset
// variables leave the corresponding Config fields at their defaults, so
// FromEnv with a clean environment is equivalent to a zero Config.
func FromEnv() (Config, error) {
	var settings envSettings
	if err := envconfig.Process(envPrefix, &settings); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg := Config{DisableRecording: settings.DisableRecording}
	if settings.Trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		cfg.Logger = &logger
	}
	return cfg, nil
}
