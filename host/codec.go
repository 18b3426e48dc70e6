package host

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	pelletier "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/scm/errors"
)

// Document formats understood by Decode and Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Newf("cannot infer document format from %q", path),
			"use a .json, .yaml, .yml or .toml extension")
	}
}

// NormalizeFormat maps aliases (yml) to canonical format names.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf("unknown format %q (expected json, yaml or toml)", format)
	}
}

// Decode parses a document into a plain tree.
func Decode(data []byte, format string) (interface{}, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode JSON document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML document")
		}
	case FormatTOML:
		var table map[string]interface{}
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML document")
		}
		doc = table
	}
	return doc, nil
}

// DecodeFile reads and parses a document, inferring the format from the
// file extension.
func DecodeFile(path string) (interface{}, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return doc, nil
}

// Encode writes a plain tree in the given format. TOML requires doc to be a
// table (map).
func Encode(w io.Writer, doc interface{}, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.WithHint(errors.Wrap(err, "failed to encode JSON"),
				"JSON cannot carry NaN or Inf values; try --format yaml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to flush YAML")
		}
	case FormatTOML:
		if _, ok := doc.(map[string]interface{}); !ok {
			return errors.Newf("TOML output needs a table at the top level, got %T", doc)
		}
		data, err := pelletier.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "failed to encode TOML")
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(err, "failed to write TOML")
		}
	}
	return nil
}
