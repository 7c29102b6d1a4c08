package model

// Config holds construction options for a Node
type Config struct {
	// Logger for peer and pool mutations. Nil selects the package default logger.
	Logger Logger

	// Initial capacity of a newly created peer group
	PeerGroupCapacity int

	// Initial capacity of the pool
	PoolCapacity int
}

// DefaultConfig returns the configuration used by NewNode
func DefaultConfig() Config {
	return Config{
		Logger:            GetDefaultLogger(),
		PeerGroupCapacity: 1,
		PoolCapacity:      0,
	}
}

// withDefaults fills unset or invalid fields from DefaultConfig
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = GetDefaultLogger()
	}
	if c.PeerGroupCapacity <= 0 {
		c.PeerGroupCapacity = DefaultConfig().PeerGroupCapacity
	}
	if c.PoolCapacity < 0 {
		c.PoolCapacity = DefaultConfig().PoolCapacity
	}
	return c
}
