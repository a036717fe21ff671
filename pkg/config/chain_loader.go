package config

type ChainLoader struct {
	loaders []Loader
}

// Load merges every loader's values in order, later loaders winning on
// conflicting keys. Loaders that fail are skipped; the chain errors only when
// no loader produced anything.
func (c *ChainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	loaded := false
	var lastErr error

	for _, loader := range c.loaders {
		values, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		mergeMaps(final, values)
		loaded = true
	}

	if !loaded {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}
