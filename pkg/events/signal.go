package events

import (
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/shuldan/eventbus/pkg/contracts"
)

// signal is the dispatch point for one event type: an ordered multicast of
// bound callables. Binding returns a revocable Connection; invoking calls
// every bound callable with the event, in subscription order.
type signal[E any] struct {
	slots []slot[E]
}

type slot[E any] struct {
	id uuid.UUID
	fn func(E)
}

func (s *signal[E]) bind(fn func(E)) contracts.Connection {
	id := uuid.New()
	s.slots = append(s.slots, slot[E]{id: id, fn: fn})
	return &connection{id: id, release: s.unbind}
}

func (s *signal[E]) unbind(id uuid.UUID) {
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

// invoke runs over the slot list as it was when the call started, so a
// callable that subscribes or disconnects mid-invocation does not disturb
// the pass in progress.
func (s *signal[E]) invoke(event E, handler PanicHandler) {
	slots := s.slots
	for _, sl := range slots {
		invokeSlot(sl, event, handler)
	}
}

func invokeSlot[E any](sl slot[E], event E, handler PanicHandler) {
	defer func() {
		if r := recover(); r != nil {
			handler.Handle(event, sl.id.String(), r, debug.Stack())
		}
	}()
	sl.fn(event)
}

type connection struct {
	id        uuid.UUID
	release   func(uuid.UUID)
	destroyed bool
}

var _ contracts.Connection = (*connection)(nil)

func (c *connection) ID() string {
	return c.id.String()
}

func (c *connection) Connected() bool {
	return !c.destroyed
}

// Disconnect revokes the binding. Calling it again is a no-op.
func (c *connection) Disconnect() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.release(c.id)
}
