package internal

import "github.com/tendermint/tendermint/libs/log"

// Config controls how a tree allocates nodes and where it logs.
type Config struct {
	// MaxNodes caps the number of live nodes; 0 means unbounded.
	MaxNodes int64
	Logger   log.Logger
}

func DefaultConfig() Config {
	return Config{
		MaxNodes: 0,
		Logger:   log.NewNopLogger(),
	}
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
	if c.MaxNodes < 0 {
		c.MaxNodes = 0
	}
	return c
}
