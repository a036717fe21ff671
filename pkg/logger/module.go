package logger

import (
	"reflect"

	"github.com/shuldan/eventbus/pkg/contracts"
)

var loggerType = reflect.TypeOf((*contracts.Logger)(nil)).Elem()
var configType = reflect.TypeOf((*contracts.Config)(nil)).Elem()

type module struct {
	opts []Option
}

func NewModule(opts ...Option) contracts.AppModule {
	return &module{opts: opts}
}

func (m *module) Name() string {
	return contracts.LoggerModuleName
}

func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(
		loggerType,
		func(c contracts.DIContainer) (any, error) {
			opts := m.opts
			if c.Has(configType) {
				if v, err := c.Resolve(configType); err == nil {
					if cfg, ok := v.(contracts.Config); ok {
						opts = append(optionsFromConfig(cfg), opts...)
					}
				}
			}
			return NewLogger(opts...)
		},
	)
}

func (m *module) Start(contracts.AppContext) error {
	return nil
}

func (m *module) Stop(contracts.AppContext) error {
	return nil
}

func optionsFromConfig(cfg contracts.Config) []Option {
	var opts []Option
	if cfg.Has("logger.level") {
		opts = append(opts, WithLevel(ParseLevel(cfg.GetString("logger.level"))))
	}
	if cfg.GetBool("logger.json") {
		opts = append(opts, WithJSON())
	}
	if cfg.GetBool("logger.color") {
		opts = append(opts, WithColor())
	}
	return opts
}
