package config

import (
	"os"
	"sort"
	"strings"
)

// Source identifies where a configuration value came from.
type Source string

const (
	SourceDefault     Source = "default"
	SourceSystem      Source = "system"      // /etc/scm/config.toml
	SourceUser        Source = "user"        // ~/.scm/config.toml
	SourceProject     Source = "project"     // nearest scm.toml
	SourceEnvironment Source = "environment" // SCM_* env vars
)

// SourceInfo tracks where a configuration value originated.
type SourceInfo struct {
	Source Source
	Path   string // file path or environment variable name
}

// Sources records the file that last set each dotted key during loading.
var Sources = make(map[string]SourceInfo)

// SettingInfo is one effective setting and its origin.
type SettingInfo struct {
	Key        string      `json:"key" yaml:"key"`
	Value      interface{} `json:"value" yaml:"value"`
	Source     Source      `json:"source" yaml:"source"`
	SourcePath string      `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// Introspect lists every effective setting with the source it came from,
// sorted by key.
func Introspect() []SettingInfo {
	v := GetViper()
	var settings []SettingInfo
	flattenSettingsWithSources(v.AllSettings(), "", &settings, Sources)
	return settings
}

// markSettingsFromSource records source for every leaf key in settings.
func markSettingsFromSource(settings map[string]interface{}, prefix string, source Source, path string, sources map[string]SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, fullKey, source, path, sources)
			continue
		}
		sources[fullKey] = SourceInfo{Source: source, Path: path}
	}
}

func flattenSettingsWithSources(settings map[string]interface{}, prefix string, out *[]SettingInfo, sources map[string]SourceInfo) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nested, fullKey, out, sources)
			continue
		}

		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sources[fullKey]; ok {
			info = si
		}

		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(fullKey, ".", "_"))
		if _, ok := os.LookupEnv(envKey); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		*out = append(*out, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
}
