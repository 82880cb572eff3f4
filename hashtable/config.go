package hashtable

import (
	"fmt"

	"go.uber.org/multierr"
)

type Config struct {
	Buckets int
	Hasher  string
}

func DefaultConfig() Config {
	return Config{
		Buckets: DefaultSize,
		Hasher:  DefaultHasher,
	}
}

// Validate reports every problem with the config at once
func (c Config) Validate() error {
	var result error

	if c.Buckets <= 0 {
		result = multierr.Append(result, fmt.Errorf("bucket count must be positive, got %d: %w", c.Buckets, ErrInvalidArgument))
	}

	if _, err := HasherByName(c.Hasher); err != nil {
		result = multierr.Append(result, err)
	}

	return result
}
