package config

import (
	"github.com/spf13/viper"
)

// Default values.
const (
	DefaultTrunc   = 100
	DefaultPrior   = 1.0
	DefaultThreads = 0
	DefaultEngine  = "libcluster"
	DefaultFormat  = "json"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("options.trunc", DefaultTrunc)
	v.SetDefault("options.prior", DefaultPrior)
	v.SetDefault("options.verbose", false)
	v.SetDefault("options.sparse", false)
	v.SetDefault("options.threads", DefaultThreads)

	v.SetDefault("engine.name", DefaultEngine)

	v.SetDefault("output.format", DefaultFormat)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
