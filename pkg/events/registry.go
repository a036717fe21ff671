package events

import (
	"reflect"
	"sync"
)

// Event type ids are process-wide: every bus indexes its pools by the same
// dense id, assigned once on first use of a type anywhere in the process.
// Ids start at 0 and never repeat, so they double as slice indices.
var typeRegistry = struct {
	mu   sync.Mutex
	ids  map[reflect.Type]int
	next int
}{ids: make(map[reflect.Type]int)}

// TypeID returns the id for event type E, allocating the next sequential id
// on first request.
func TypeID[E any]() int {
	return typeIDOf(reflect.TypeOf((*E)(nil)).Elem())
}

func typeIDOf(t reflect.Type) int {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if id, ok := typeRegistry.ids[t]; ok {
		return id
	}
	id := typeRegistry.next
	typeRegistry.next++
	typeRegistry.ids[t] = id
	return id
}
