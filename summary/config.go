package summary

import (
	"errors"
	"fmt"

	"github.com/nimezhu/hicstat/hic/normtype"
)

const (
	// DefaultResolution is the bin size totals are computed at.
	DefaultResolution = 500000
	// DefaultNormalization requests raw counts.
	DefaultNormalization = "NONE"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("summary: invalid configuration")

// Config holds the parameters of a run.
type Config struct {
	Resolution    int
	Normalization string
	// Workers is the number of pairs queried concurrently. 1 runs the
	// pairs sequentially.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Resolution:    DefaultResolution,
		Normalization: DefaultNormalization,
		Workers:       1,
	}
}

// Validate checks the configuration. Only raw counts can be summed.
func (c Config) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %d", ErrInvalidConfig, c.Resolution)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if t, ok := normtype.Parse(c.Normalization); !ok || t != normtype.NONE {
		return fmt.Errorf("%w: normalization %q", ErrInvalidConfig, c.Normalization)
	}
	return nil
}
