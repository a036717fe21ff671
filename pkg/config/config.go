package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shuldan/eventbus/pkg/contracts"
)

type MapConfig struct {
	values map[string]any
}

var _ contracts.Config = (*MapConfig)(nil)

func (c *MapConfig) Has(key string) bool {
	_, ok := c.find(key)
	return ok
}

func (c *MapConfig) Get(key string) any {
	value, _ := c.find(key)
	return value
}

func (c *MapConfig) GetString(key string, defaultVal ...string) string {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (c *MapConfig) GetInt(key string, defaultVal ...int) int {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return getFirst(defaultVal)
}

func (c *MapConfig) GetBool(key string, defaultVal ...bool) bool {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return getFirst(defaultVal)
}

func (c *MapConfig) GetSub(key string) (contracts.Config, bool) {
	v, ok := c.find(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return &MapConfig{values: sub}, true
}

func (c *MapConfig) All() map[string]any {
	result := make(map[string]any, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

func (c *MapConfig) find(key string) (any, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	var current any = c.values
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func getFirst[T any](vals []T) T {
	if len(vals) > 0 {
		return vals[0]
	}
	var zero T
	return zero
}
