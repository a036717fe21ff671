// Package events implements a type-indexed in-process event bus. Producers
// trigger events immediately or enqueue them for batched delivery; consumers
// subscribe per event type and receive a revocable Connection. The bus is
// single-threaded by design: callers that share a bus across goroutines must
// synchronize externally.
package events

import (
	"github.com/shuldan/eventbus/pkg/contracts"
)

// Bus routes events to per-type pools. Pools are created lazily on the first
// trigger, enqueue, or subscribe for a type and live for the bus's lifetime.
// The pool collection is a dense slice indexed by the process-wide type id.
type Bus struct {
	pools    []queuedPool
	queueCap int
	handler  PanicHandler
}

var _ contracts.EventBus = (*Bus)(nil)

// TriggerEvent delivers the event synchronously to every callable currently
// subscribed to E, in subscription order, before returning. Nothing is
// buffered; with no subscribers it is a no-op.
func TriggerEvent[E any](b *Bus, event E) {
	poolFor[E](b).trigger(event)
}

// EnqueueEvent appends the event to E's pending buffer without invoking
// anyone. The event stays pending until DispatchQueuedEvents or a clear.
func EnqueueEvent[E any](b *Bus, event E) {
	poolFor[E](b).enqueue(event)
}

// SubscribeToEvent binds fn into E's dispatch point and returns its
// Connection. Method values work as fn, so an object+method pair needs no
// separate form. Subscribing never applies retroactively: events already
// dispatched or already buffered at bind time are not replayed to fn —
// buffered events still reach fn if it is bound when the flush happens.
func SubscribeToEvent[E any](b *Bus, fn func(E)) contracts.Connection {
	return poolFor[E](b).signal.bind(fn)
}

// DispatchQueuedEventsFor flushes only E's buffer, oldest first. A type that
// was never used on this bus has no pool and the call is a no-op; it does not
// create one.
func DispatchQueuedEventsFor[E any](b *Bus) {
	if p, ok := existingPool[E](b); ok {
		p.dispatchQueued()
	}
}

// ClearEventQueueFor discards E's buffered events without dispatching them.
// Like the selective dispatch, it never creates an absent pool.
func ClearEventQueueFor[E any](b *Bus) {
	if p, ok := existingPool[E](b); ok {
		p.clearQueue()
	}
}

// DispatchQueuedEvents flushes every existing pool's buffer in ascending
// type-id order. Types never seen by this bus are skipped, not instantiated.
func (b *Bus) DispatchQueuedEvents() {
	for _, p := range b.pools {
		if p != nil {
			p.dispatchQueued()
		}
	}
}

// ClearEventQueues discards the buffered events of every existing pool.
func (b *Bus) ClearEventQueues() {
	for _, p := range b.pools {
		if p != nil {
			p.clearQueue()
		}
	}
}

// UnsubscribeFromEvent revokes the connection. Revoking an already-revoked
// or nil connection is a no-op.
func (b *Bus) UnsubscribeFromEvent(c contracts.Connection) {
	if c != nil {
		c.Disconnect()
	}
}

// PendingEvents reports how many events are buffered across all pools.
func (b *Bus) PendingEvents() int {
	total := 0
	for _, p := range b.pools {
		if p != nil {
			total += p.pendingCount()
		}
	}
	return total
}

func poolFor[E any](b *Bus) *pool[E] {
	id := TypeID[E]()
	if id >= len(b.pools) {
		grown := make([]queuedPool, id+1)
		copy(grown, b.pools)
		b.pools = grown
	}
	if b.pools[id] == nil {
		b.pools[id] = &pool[E]{queueCap: b.queueCap, handler: b.handler}
	}
	return b.pools[id].(*pool[E])
}

func existingPool[E any](b *Bus) (*pool[E], bool) {
	id := TypeID[E]()
	if id >= len(b.pools) || b.pools[id] == nil {
		return nil, false
	}
	return b.pools[id].(*pool[E]), true
}
