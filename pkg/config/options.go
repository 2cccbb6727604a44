package config

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process environment.
// Useful for tests and for configuration assembled from other sources.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.environment = vars
		}
	}
}
