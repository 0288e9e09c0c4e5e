package config

import "go.uber.org/zap"

// Mode selects how configuration misuse is handled.
type Mode int

const (
	// Lenient treats configuration misuse (for example Decorate with no
	// resolvable target) as a logged no-op. This is the production
	// posture: a bad decoration attempt never takes the process down.
	Lenient Mode = iota

	// Strict records configuration misuse on the chain and surfaces it
	// as an error from Build. Use during development so caller bugs are
	// not masked.
	Strict
)

// String returns the mode name for logs.
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// DefaultMode is the mode used when none is configured.
const DefaultMode = Lenient

// Config carries the ambient knobs for chain construction and synthesis.
// It is passed by value and treated as immutable by consumers.
type Config struct {
	// Mode is the strictness policy for configuration misuse.
	Mode Mode

	// Logger receives diagnostic events: skipped non-configurable names,
	// lenient no-ops, validation failures. Never nil after construction.
	Logger *zap.Logger
}

// New constructs a Config from the given options.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Default is the configuration used when none is provided.
func Default() Config {
	return Config{
		Mode:   DefaultMode,
		Logger: zap.NewNop(),
	}
}

// Option is a functional option that mutates a Config during construction.
type Option func(*Config)

// WithMode sets the strictness mode.
func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithStrict is shorthand for WithMode(Strict).
func WithStrict() Option {
	return WithMode(Strict)
}

// WithLogger sets the diagnostic logger. A nil logger resets to a nop.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
