package events

// queuedPool is the type-erased face of a pool: the operations the bus can
// apply without knowing the event type, so pools for unrelated types share
// one collection.
type queuedPool interface {
	dispatchQueued()
	clearQueue()
	pendingCount() int
}

// pool owns the dispatch point and the pending buffer for exactly one event
// type. It lives for the life of the bus once created.
type pool[E any] struct {
	signal   signal[E]
	queue    []E
	queueCap int
	handler  PanicHandler
}

var _ queuedPool = (*pool[string])(nil)

// trigger delivers the event to every bound callable immediately. The pending
// buffer is not touched. Re-entrant triggers from inside a callable simply
// nest on the call stack.
func (p *pool[E]) trigger(event E) {
	p.signal.invoke(event, p.handler)
}

func (p *pool[E]) enqueue(event E) {
	if p.queue == nil && p.queueCap > 0 {
		p.queue = make([]E, 0, p.queueCap)
	}
	p.queue = append(p.queue, event)
}

// dispatchQueued flushes the buffer in enqueue order. The buffer is detached
// before the first callable runs: events enqueued by a callable during the
// flush land in a fresh buffer and are delivered on the next dispatch, never
// in the pass that is already running. This bounds a single dispatch pass.
func (p *pool[E]) dispatchQueued() {
	pending := p.queue
	p.queue = nil

	for i := range pending {
		p.signal.invoke(pending[i], p.handler)
	}
}

// clearQueue discards buffered events without invoking anything. Bound
// callables are unaffected.
func (p *pool[E]) clearQueue() {
	p.queue = nil
}

func (p *pool[E]) pendingCount() int {
	return len(p.queue)
}
