package query

type readConfig struct {
	enabled    bool
	awaitFresh bool
}

type Option func(*readConfig)

// Enabled gates a read. A disabled read stays idle and never fetches.
func Enabled(enabled bool) Option {
	return func(c *readConfig) {
		c.enabled = enabled
	}
}

// AwaitFresh makes a read of stale data wait for the refetch instead of
// returning the stale value.
func AwaitFresh() Option {
	return func(c *readConfig) {
		c.awaitFresh = true
	}
}

func newReadConfig(opts []Option) readConfig {
	cfg := readConfig{enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
