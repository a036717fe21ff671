package contracts

// Connection ties one callable to one event type's dispatch point.
// Disconnect is idempotent: revoking an already-revoked connection is a no-op.
type Connection interface {
	ID() string
	Connected() bool
	Disconnect()
}

// EventBus is the type-erased surface of the bus. Operations that need an
// event type parameter (TriggerEvent, EnqueueEvent, SubscribeToEvent and the
// per-type dispatch/clear variants) are generic functions in pkg/events,
// since Go methods cannot carry their own type parameters.
type EventBus interface {
	DispatchQueuedEvents()
	ClearEventQueues()
	UnsubscribeFromEvent(c Connection)
}
