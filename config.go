package rolodex

// Config controls engine behavior.
type Config struct {
	// MaxSearchResults bounds the number of contacts returned by a
	// single list or search call. Zero means unbounded.
	MaxSearchResults int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxSearchResults: 500,
	}
}
