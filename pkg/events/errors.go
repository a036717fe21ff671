package events

import "github.com/shuldan/eventbus/pkg/errors"

var newEventCode = errors.WithPrefix("EVENTS")

var (
	ErrBusNotFound        = newEventCode().New("event bus not found in container")
	ErrInvalidBusInstance = newEventCode().New("event bus instance must be a *events.Bus")
)
