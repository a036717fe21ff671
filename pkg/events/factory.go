package events

import "github.com/shuldan/eventbus/pkg/contracts"

func NewDefaultPanicHandler(logger contracts.Logger) PanicHandler {
	return &defaultPanicHandler{logger: logger}
}

func New(opts ...Option) *Bus {
	cfg := &config{}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.panicHandler == nil {
		cfg.panicHandler = NewDefaultPanicHandler(cfg.logger)
	}

	return &Bus{
		queueCap: cfg.queueCap,
		handler:  cfg.panicHandler,
	}
}

func NewModule() contracts.AppModule {
	return &module{}
}
