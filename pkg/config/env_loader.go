package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfigLoader struct {
	prefix string
}

// Load collects environment variables with the configured prefix. Double
// underscores become nesting: APP_LOGGER__LEVEL -> logger.level.
func (l *EnvConfigLoader) Load() (map[string]any, error) {
	values := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")

		setNested(values, configKey, coerce(value))
	}

	return values, nil
}

func coerce(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			continue
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}
