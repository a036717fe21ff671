package main

import (
	"fmt"

	"github.com/shuldan/eventbus/pkg/events"
	"github.com/shuldan/eventbus/pkg/logger"
)

type Damage struct {
	Target string
	Amount int
}

type ItemPickedUp struct {
	Item string
}

type healthTracker struct {
	total int
}

func (h *healthTracker) onDamage(e Damage) {
	h.total += e.Amount
	fmt.Printf("%s took %d damage (total %d)\n", e.Target, e.Amount, h.total)
}

func main() {
	log, err := logger.NewLogger(logger.WithColor())
	if err != nil {
		panic(err)
	}

	bus := events.New(events.WithLogger(log))

	tracker := &healthTracker{}
	conn := events.SubscribeToEvent(bus, tracker.onDamage)
	events.SubscribeToEvent(bus, func(e ItemPickedUp) {
		fmt.Printf("picked up %s\n", e.Item)
	})

	// Immediate delivery.
	events.TriggerEvent(bus, Damage{Target: "goblin", Amount: 10})

	// Deferred delivery: nothing reaches subscribers until the flush.
	events.EnqueueEvent(bus, Damage{Target: "goblin", Amount: 5})
	events.EnqueueEvent(bus, Damage{Target: "goblin", Amount: 7})
	events.EnqueueEvent(bus, ItemPickedUp{Item: "health potion"})

	log.Info("flushing queued events", "pending", bus.PendingEvents())
	bus.DispatchQueuedEvents()

	bus.UnsubscribeFromEvent(conn)
	events.TriggerEvent(bus, Damage{Target: "goblin", Amount: 3}) // no longer observed

	log.Info("done")
}
