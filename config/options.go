package config

// Document renders the whole configuration as a plain tree for encoding.
func (c *Config) Document() map[string]interface{} {
	return map[string]interface{}{
		"options": map[string]interface{}{
			"trunc":   c.Options.Trunc,
			"prior":   c.Options.Prior,
			"verbose": c.Options.Verbose,
			"sparse":  c.Options.Sparse,
			"threads": c.Options.Threads,
		},
		"engine": map[string]interface{}{
			"name": c.Engine.Name,
		},
		"output": map[string]interface{}{
			"format": c.Output.Format,
		},
		"log": map[string]interface{}{
			"json":      c.Log.JSON,
			"verbosity": c.Log.Verbosity,
		},
	}
}
