package config

import (
	"reflect"

	"github.com/shuldan/eventbus/pkg/contracts"
)

var configType = reflect.TypeOf((*contracts.Config)(nil)).Elem()

type module struct {
	loader Loader
}

func NewModule(envPrefix string, configPaths ...string) contracts.AppModule {
	return &module{loader: NewChainLoader(
		NewYamlConfigLoader(configPaths...),
		NewEnvConfigLoader(envPrefix),
	)}
}

func (m *module) Name() string {
	return contracts.ConfigModuleName
}

func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(configType, func(c contracts.DIContainer) (any, error) {
		values, err := m.loader.Load()
		if err != nil {
			return nil, err
		}
		return NewMapConfig(values), nil
	})
}

func (m *module) Start(contracts.AppContext) error {
	return nil
}

func (m *module) Stop(contracts.AppContext) error {
	return nil
}
