package dispatcher

// Config controls dispatcher behavior.
type Config struct {
	// NoticeUnmatched surfaces a non-blocking notice when a key
	// sequence dead-ends.
	NoticeUnmatched bool

	// EnableMetrics turns on dispatch outcome counters.
	EnableMetrics bool
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		NoticeUnmatched: true,
		EnableMetrics:   false,
	}
}
