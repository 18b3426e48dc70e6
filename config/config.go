// Package config loads CLI configuration for scm with viper.
//
// Sources merge in precedence order (lowest first): built-in defaults,
// /etc/scm/config.toml, ~/.scm/config.toml, the nearest scm.toml found by
// walking up from the working directory, then SCM_* environment variables.
//
// The values here only seed the CLI. The library's options parser keeps its
// own fixed defaults.
package config

// Config is the scm CLI configuration.
type Config struct {
	Options OptionsConfig `mapstructure:"options"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// OptionsConfig mirrors the cluster options struct.
type OptionsConfig struct {
	Trunc   int     `mapstructure:"trunc"`   // upper bound on mixture components (default: 100)
	Prior   float64 `mapstructure:"prior"`   // prior strength (default: 1.0)
	Verbose bool    `mapstructure:"verbose"` // engine progress output
	Sparse  bool    `mapstructure:"sparse"`  // approximate updates
	Threads int     `mapstructure:"threads"` // 0 = engine default
}

// EngineConfig selects the clustering engine.
type EngineConfig struct {
	Name string `mapstructure:"name"` // libcluster or echo
}

// OutputConfig configures result documents.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json, yaml or toml
}

// LogConfig configures the zap logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"` // same scale as -v
}

// Config file names and locations.
const (
	ProjectFileName = "scm.toml"
	UserDirName     = ".scm"
	UserFileName    = "config.toml"
	SystemFilePath  = "/etc/scm/config.toml"
	EnvPrefix       = "SCM"
)
