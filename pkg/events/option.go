package events

import "github.com/shuldan/eventbus/pkg/contracts"

type Option func(*config)

type config struct {
	panicHandler PanicHandler
	logger       contracts.Logger
	queueCap     int
}

func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}

// WithLogger routes callable panics to the logger instead of crashing.
func WithLogger(l contracts.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithQueueCapacity preallocates each pool's pending buffer.
func WithQueueCapacity(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.queueCap = n
	}
}
