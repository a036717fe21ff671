package events

import (
	"fmt"
	"testing"
)

type Damage struct {
	Amount int
}

type PlayerSpawned struct {
	Name string
}

type DoorOpened struct {
	RoomID int
}

func TestTriggerEvent_DeliversToAllSubscribersInOrder(t *testing.T) {
	bus := New()
	var calls []string

	SubscribeToEvent(bus, func(e Damage) {
		calls = append(calls, fmt.Sprintf("first:%d", e.Amount))
	})
	SubscribeToEvent(bus, func(e Damage) {
		calls = append(calls, fmt.Sprintf("second:%d", e.Amount))
	})

	TriggerEvent(bus, Damage{Amount: 10})

	want := []string{"first:10", "second:10"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestTriggerEvent_DoesNotTouchPendingBuffer(t *testing.T) {
	bus := New()
	SubscribeToEvent(bus, func(Damage) {})

	EnqueueEvent(bus, Damage{Amount: 1})
	TriggerEvent(bus, Damage{Amount: 2})

	if got := bus.PendingEvents(); got != 1 {
		t.Errorf("pending = %d, want 1 (trigger must not flush the buffer)", got)
	}
}

func TestTriggerEvent_NoSubscribersIsNoOp(t *testing.T) {
	bus := New()
	TriggerEvent(bus, Damage{Amount: 3})
}

func TestEnqueueEvent_DispatchInEnqueueOrder(t *testing.T) {
	bus := New()
	var received []int

	SubscribeToEvent(bus, func(e Damage) {
		received = append(received, e.Amount)
	})

	EnqueueEvent(bus, Damage{Amount: 5})
	EnqueueEvent(bus, Damage{Amount: 7})

	if len(received) != 0 {
		t.Fatal("enqueue must not invoke callables")
	}

	bus.DispatchQueuedEvents()

	if len(received) != 2 || received[0] != 5 || received[1] != 7 {
		t.Errorf("received = %v, want [5 7]", received)
	}
	if bus.PendingEvents() != 0 {
		t.Error("buffer should be empty after dispatch")
	}

	bus.DispatchQueuedEvents()
	if len(received) != 2 {
		t.Error("second dispatch must deliver nothing new")
	}
}

func TestClearEventQueues_DiscardsWithoutInvoking(t *testing.T) {
	bus := New()
	invocations := 0

	SubscribeToEvent(bus, func(Damage) { invocations++ })

	EnqueueEvent(bus, Damage{Amount: 1})
	EnqueueEvent(bus, Damage{Amount: 2})
	EnqueueEvent(bus, Damage{Amount: 3})

	bus.ClearEventQueues()
	bus.DispatchQueuedEvents()

	if invocations != 0 {
		t.Errorf("invocations = %d, want 0", invocations)
	}
	if bus.PendingEvents() != 0 {
		t.Error("buffer should be empty after clear")
	}
}

func TestEvents_TypeIsolation(t *testing.T) {
	bus := New()
	var damage, spawns int

	SubscribeToEvent(bus, func(Damage) { damage++ })
	SubscribeToEvent(bus, func(PlayerSpawned) { spawns++ })

	TriggerEvent(bus, Damage{Amount: 1})
	EnqueueEvent(bus, Damage{Amount: 2})
	bus.DispatchQueuedEvents()

	if damage != 2 {
		t.Errorf("damage callable ran %d times, want 2", damage)
	}
	if spawns != 0 {
		t.Errorf("spawn callable ran %d times, want 0", spawns)
	}
}

func TestDispatchQueuedEvents_MidFlushEnqueueDeliversNextPass(t *testing.T) {
	bus := New()
	var received []int

	SubscribeToEvent(bus, func(e Damage) {
		received = append(received, e.Amount)
		if e.Amount == 1 {
			EnqueueEvent(bus, Damage{Amount: 99})
		}
	})

	EnqueueEvent(bus, Damage{Amount: 1})
	EnqueueEvent(bus, Damage{Amount: 2})
	bus.DispatchQueuedEvents()

	if len(received) != 2 || received[0] != 1 || received[1] != 2 {
		t.Fatalf("first pass = %v, want [1 2]", received)
	}
	if bus.PendingEvents() != 1 {
		t.Fatalf("mid-flush enqueue should stay pending, pending = %d", bus.PendingEvents())
	}

	bus.DispatchQueuedEvents()

	if len(received) != 3 || received[2] != 99 {
		t.Errorf("second pass = %v, want [1 2 99]", received)
	}
}

func TestTriggerEvent_ReentrantTriggerNests(t *testing.T) {
	bus := New()
	var calls []string

	SubscribeToEvent(bus, func(e DoorOpened) {
		calls = append(calls, fmt.Sprintf("door-a:%d", e.RoomID))
		if e.RoomID == 1 {
			TriggerEvent(bus, DoorOpened{RoomID: 2})
		}
	})
	SubscribeToEvent(bus, func(e DoorOpened) {
		calls = append(calls, fmt.Sprintf("door-b:%d", e.RoomID))
	})

	TriggerEvent(bus, DoorOpened{RoomID: 1})

	// The inner trigger runs to completion before the outer invocation's
	// remaining callables.
	want := []string{"door-a:1", "door-a:2", "door-b:2", "door-b:1"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestUnsubscribeFromEvent(t *testing.T) {
	bus := New()
	var first, second int

	conn := SubscribeToEvent(bus, func(Damage) { first++ })
	SubscribeToEvent(bus, func(Damage) { second++ })

	TriggerEvent(bus, Damage{Amount: 1})
	bus.UnsubscribeFromEvent(conn)
	TriggerEvent(bus, Damage{Amount: 2})

	EnqueueEvent(bus, Damage{Amount: 3})
	bus.DispatchQueuedEvents()

	if first != 1 {
		t.Errorf("unsubscribed callable ran %d times, want 1", first)
	}
	if second != 3 {
		t.Errorf("remaining callable ran %d times, want 3", second)
	}

	// Second revocation is a no-op.
	bus.UnsubscribeFromEvent(conn)
	bus.UnsubscribeFromEvent(nil)
	TriggerEvent(bus, Damage{Amount: 4})
	if second != 4 {
		t.Errorf("remaining callable ran %d times, want 4", second)
	}
}

func TestDispatchQueuedEventsFor_FlushesOnlyNamedType(t *testing.T) {
	bus := New()
	var damage, spawns int

	SubscribeToEvent(bus, func(Damage) { damage++ })
	SubscribeToEvent(bus, func(PlayerSpawned) { spawns++ })

	EnqueueEvent(bus, Damage{Amount: 1})
	EnqueueEvent(bus, PlayerSpawned{Name: "alice"})

	DispatchQueuedEventsFor[Damage](bus)

	if damage != 1 {
		t.Errorf("damage callable ran %d times, want 1", damage)
	}
	if spawns != 0 {
		t.Error("other type's buffer must be untouched")
	}
	if bus.PendingEvents() != 1 {
		t.Errorf("pending = %d, want 1", bus.PendingEvents())
	}
}

func TestClearEventQueueFor_ClearsOnlyNamedType(t *testing.T) {
	bus := New()
	var damage, spawns int

	SubscribeToEvent(bus, func(Damage) { damage++ })
	SubscribeToEvent(bus, func(PlayerSpawned) { spawns++ })

	EnqueueEvent(bus, Damage{Amount: 1})
	EnqueueEvent(bus, PlayerSpawned{Name: "bob"})

	ClearEventQueueFor[Damage](bus)
	bus.DispatchQueuedEvents()

	if damage != 0 {
		t.Errorf("cleared type delivered %d events, want 0", damage)
	}
	if spawns != 1 {
		t.Errorf("other type delivered %d events, want 1", spawns)
	}
}

type neverUsed struct{}

func TestSelectiveOpsOnUnusedTypeDoNotCreatePool(t *testing.T) {
	bus := New()

	DispatchQueuedEventsFor[neverUsed](bus)
	ClearEventQueueFor[neverUsed](bus)

	id := TypeID[neverUsed]()
	if id < len(bus.pools) && bus.pools[id] != nil {
		t.Error("selective operations must not instantiate an unused pool")
	}
}

func TestSubscribe_NotRetroactiveForTriggeredEvents(t *testing.T) {
	bus := New()
	var received []int

	TriggerEvent(bus, Damage{Amount: 1})

	SubscribeToEvent(bus, func(e Damage) { received = append(received, e.Amount) })
	TriggerEvent(bus, Damage{Amount: 2})

	if len(received) != 1 || received[0] != 2 {
		t.Errorf("received = %v, want [2]", received)
	}
}

func TestSubscribe_BufferedEventsReachLateSubscriber(t *testing.T) {
	bus := New()
	var received []int

	EnqueueEvent(bus, Damage{Amount: 8})
	SubscribeToEvent(bus, func(e Damage) { received = append(received, e.Amount) })
	bus.DispatchQueuedEvents()

	if len(received) != 1 || received[0] != 8 {
		t.Errorf("received = %v, want [8] (flush delivers to whoever is bound at flush time)", received)
	}
}

type handleRecorder struct {
	count int
	last  Damage
}

func (h *handleRecorder) handle(e Damage) {
	h.count++
	h.last = e
}

func TestSubscribeToEvent_MethodValue(t *testing.T) {
	bus := New()
	rec := &handleRecorder{}

	SubscribeToEvent(bus, rec.handle)
	TriggerEvent(bus, Damage{Amount: 21})

	if rec.count != 1 || rec.last.Amount != 21 {
		t.Errorf("recorder = %+v, want one call with amount 21", rec)
	}
}

func TestDamageScenario(t *testing.T) {
	bus := New()
	var received []int

	SubscribeToEvent(bus, func(e Damage) { received = append(received, e.Amount) })

	TriggerEvent(bus, Damage{Amount: 10})
	if len(received) != 1 || received[0] != 10 {
		t.Fatalf("after trigger: received = %v, want [10]", received)
	}

	EnqueueEvent(bus, Damage{Amount: 5})
	EnqueueEvent(bus, Damage{Amount: 7})
	bus.DispatchQueuedEvents()

	if len(received) != 3 || received[1] != 5 || received[2] != 7 {
		t.Errorf("after dispatch: received = %v, want [10 5 7]", received)
	}
	if bus.PendingEvents() != 0 {
		t.Error("buffer should be empty")
	}
}

func TestBuses_AreIndependent(t *testing.T) {
	busA := New()
	busB := New()
	var a, b int

	SubscribeToEvent(busA, func(Damage) { a++ })
	SubscribeToEvent(busB, func(Damage) { b++ })

	TriggerEvent(busA, Damage{Amount: 1})

	if a != 1 || b != 0 {
		t.Errorf("a = %d, b = %d; buses must not share subscribers", a, b)
	}
}

type recordingPanicHandler struct {
	events []any
	values []any
}

func (h *recordingPanicHandler) Handle(event any, _ string, panicValue any, _ []byte) {
	h.events = append(h.events, event)
	h.values = append(h.values, panicValue)
}

func TestPanicHandler_ReceivesPanicAndDispatchContinues(t *testing.T) {
	handler := &recordingPanicHandler{}
	bus := New(WithPanicHandler(handler))
	var survived int

	SubscribeToEvent(bus, func(Damage) { panic("callable exploded") })
	SubscribeToEvent(bus, func(Damage) { survived++ })

	TriggerEvent(bus, Damage{Amount: 1})

	if len(handler.values) != 1 || handler.values[0] != "callable exploded" {
		t.Errorf("handler values = %v", handler.values)
	}
	if survived != 1 {
		t.Error("callables after the panicking one must still run")
	}
}

func TestDefaultPanicHandler_RepanicsWithoutLogger(t *testing.T) {
	bus := New()
	SubscribeToEvent(bus, func(Damage) { panic("fatal") })

	defer func() {
		if r := recover(); r == nil {
			t.Error("panic should propagate when no logger is configured")
		}
	}()
	TriggerEvent(bus, Damage{Amount: 1})
}

func TestWithQueueCapacity_Preallocates(t *testing.T) {
	bus := New(WithQueueCapacity(16))

	EnqueueEvent(bus, Damage{Amount: 1})

	p, ok := existingPool[Damage](bus)
	if !ok {
		t.Fatal("pool should exist after enqueue")
	}
	if cap(p.queue) < 16 {
		t.Errorf("queue cap = %d, want >= 16", cap(p.queue))
	}
}
