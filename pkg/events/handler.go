package events

import (
	"fmt"

	"github.com/shuldan/eventbus/pkg/contracts"
)

// PanicHandler receives panics raised by subscribed callables during a
// trigger or dispatch. The connection id identifies which binding panicked.
type PanicHandler interface {
	Handle(event any, connectionID string, panicValue any, stack []byte)
}

// defaultPanicHandler logs the panic when a logger is available and
// re-panics otherwise, so a bare bus keeps the failure fatal.
type defaultPanicHandler struct {
	logger contracts.Logger
}

func (d *defaultPanicHandler) Handle(event any, connectionID string, panicValue any, stack []byte) {
	if d.logger == nil {
		panic(fmt.Sprintf("event bus panic: event=%v, connection=%s, panic=%v, stack=%s",
			event, connectionID, panicValue, string(stack)))
	}
	d.logger.Critical("event callable panicked",
		"event", event,
		"connection", connectionID,
		"panic_value", panicValue,
		"stack", string(stack))
}
