package parser

import (
	"maps"

	"github.com/randalmurphal/formatparse/types"
)

// Config holds the settings of a compiled pattern.
type Config struct {
	// CaseSensitive makes literals and letter classes match case exactly.
	CaseSensitive bool `json:"case_sensitive" yaml:"case_sensitive" toml:"case_sensitive"`
}

// DefaultConfig returns the default settings: case-insensitive matching.
func DefaultConfig() Config {
	return Config{CaseSensitive: false}
}

// Option configures Compile.
type Option func(*settings)

type settings struct {
	config Config
	extra  types.Extra
}

func newSettings(opts []Option) settings {
	s := settings{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithExtraTypes registers custom types for this compilation only.
// Repeated calls merge their types.
func WithExtraTypes(extra types.Extra) Option {
	return func(s *settings) {
		if s.extra == nil {
			s.extra = make(types.Extra, len(extra))
		}
		maps.Copy(s.extra, extra)
	}
}

// WithCaseSensitive sets whether matching is case-sensitive.
func WithCaseSensitive(on bool) Option {
	return func(s *settings) {
		s.config.CaseSensitive = on
	}
}

// WithConfig replaces all settings held in Config.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}
