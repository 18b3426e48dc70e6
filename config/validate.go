package config

import (
	"math"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Options.Trunc < 1 {
		return errors.Newf("options.trunc must be >= 1, got %d", c.Options.Trunc)
	}
	if math.IsNaN(c.Options.Prior) || math.IsInf(c.Options.Prior, 0) || c.Options.Prior <= 0 {
		return errors.Newf("options.prior must be a finite value > 0, got %v", c.Options.Prior)
	}
	if c.Options.Threads < 0 {
		return errors.Newf("options.threads must be >= 0, got %d", c.Options.Threads)
	}

	if c.Engine.Name == "" {
		return errors.WithHint(
			errors.New("engine.name cannot be empty"),
			"set engine.name to libcluster or echo")
	}

	if _, err := host.NormalizeFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
