package events

import (
	"reflect"

	"github.com/shuldan/eventbus/pkg/contracts"
)

var busType = reflect.TypeOf((*contracts.EventBus)(nil)).Elem()
var loggerType = reflect.TypeOf((*contracts.Logger)(nil)).Elem()
var configType = reflect.TypeOf((*contracts.Config)(nil)).Elem()

type module struct{}

func (m *module) Name() string {
	return contracts.EventBusModuleName
}

func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(
		busType,
		func(c contracts.DIContainer) (any, error) {
			var opts []Option

			if c.Has(loggerType) {
				if v, err := c.Resolve(loggerType); err == nil {
					if logger, ok := v.(contracts.Logger); ok {
						opts = append(opts, WithLogger(logger))
					}
				}
			}
			if c.Has(configType) {
				if v, err := c.Resolve(configType); err == nil {
					if cfg, ok := v.(contracts.Config); ok {
						if n := cfg.GetInt("events.queue_capacity"); n > 0 {
							opts = append(opts, WithQueueCapacity(n))
						}
					}
				}
			}

			return New(opts...), nil
		},
	)
}

func (m *module) Start(contracts.AppContext) error {
	return nil
}

// Stop discards whatever is still buffered so undelivered events do not
// outlive the application silently.
func (m *module) Stop(ctx contracts.AppContext) error {
	if !ctx.Container().Has(busType) {
		return nil
	}

	v, err := ctx.Container().Resolve(busType)
	if err != nil {
		return ErrBusNotFound.WithCause(err)
	}

	bus, ok := v.(*Bus)
	if !ok {
		return ErrInvalidBusInstance
	}

	bus.ClearEventQueues()
	return nil
}
