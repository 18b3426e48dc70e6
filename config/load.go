package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/scm/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the scm configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path. Environment
// variables are not consulted.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	Sources = make(map[string]SourceInfo)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	Sources = make(map[string]SourceInfo)
	viperInstance = newViper(configFiles(), Sources)
	return viperInstance
}

// newViper builds a Viper with defaults, files and environment binding:
// defaults < files (in order) < SCM_* variables.
func newViper(files []configFile, sources map[string]SourceInfo) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v, files, sources)
	return v
}

type configFile struct {
	path   string
	source Source
}

// configFiles lists candidate files, lowest precedence first.
func configFiles() []configFile {
	files := []configFile{{path: SystemFilePath, source: SourceSystem}}

	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, configFile{
			path:   filepath.Join(home, UserDirName, UserFileName),
			source: SourceUser,
		})
	}

	if project := findProjectConfig(); project != "" {
		files = append(files, configFile{path: project, source: SourceProject})
	}
	return files
}

// findProjectConfig walks up from the working directory looking for
// scm.toml. It returns "" if there is none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges each existing file into v in order, recording
// where every key came from. Unreadable files are skipped.
func mergeConfigFiles(v *viper.Viper, files []configFile, sources map[string]SourceInfo) {
	for _, f := range files {
		if _, err := os.Stat(f.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(f.path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}

		settings := tempViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			continue
		}
		markSettingsFromSource(settings, "", f.source, f.path, sources)
	}
}
