package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

type YamlConfigLoader struct {
	paths []string
}

// Load reads the first path that exists. Missing files are skipped, a file
// that exists but does not parse is an error.
func (l *YamlConfigLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var values map[string]any
		if err = yaml.UnmarshalWithOptions(data, &values, yaml.UseJSONUnmarshaler()); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}

		return values, nil
	}

	return nil, ErrNoConfigSource
}
