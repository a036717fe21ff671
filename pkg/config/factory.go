package config

import "github.com/shuldan/eventbus/pkg/contracts"

var _ Loader = (*EnvConfigLoader)(nil)
var _ Loader = (*YamlConfigLoader)(nil)
var _ Loader = (*ChainLoader)(nil)

func NewEnvConfigLoader(prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) *YamlConfigLoader {
	return &YamlConfigLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) *ChainLoader {
	return &ChainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	return &MapConfig{values: values}
}
