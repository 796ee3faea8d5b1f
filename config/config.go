package config

import "time"

type NET struct {
	// ReadBufferSize bounds the single read performed per connection.
	// Requests longer than this are truncated, not reassembled across
	// multiple reads. Defaults to an ethernet link MTU
	ReadBufferSize int
	// ReadTimeout limits how long a connection may stay silent before it
	// is closed without a response
	ReadTimeout time.Duration
}

// Config holds the settings of the server. Modify defaults returned via
// Default() instead of constructing the struct manually
type Config struct {
	NET NET
}

func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 1500,
			ReadTimeout:    90 * time.Second,
		},
	}
}

// Fill replaces zero fields with their default values
func Fill(original *Config) *Config {
	defaults := Default()

	original.NET.ReadBufferSize = customOrDefault(
		original.NET.ReadBufferSize, defaults.NET.ReadBufferSize,
	)
	original.NET.ReadTimeout = customOrDefault(
		original.NET.ReadTimeout, defaults.NET.ReadTimeout,
	)

	return original
}

func customOrDefault[T comparable](custom, default_ T) T {
	var zero T
	if custom == zero {
		return default_
	}

	return custom
}
