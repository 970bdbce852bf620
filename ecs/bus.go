package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/popshot/game"
)

// GameEventType is the Donburi event type carrying game events. Subscribe to
// it directly for handlers that need the world.
var GameEventType = events.NewEventType[game.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a game.EventSink that publishes every event to
// GameEventType on world. Events are delivered on the next ProcessEvents.
func NewDonburiSink(world donburi.World) game.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event game.Event) {
	GameEventType.Publish(s.world, event)
}

// Bus is a game.EventSink with deferred, ordered delivery to subscribers.
type Bus struct {
	world donburi.World
	sink  game.EventSink
}

func NewBus(world donburi.World) *Bus {
	return &Bus{world: world, sink: NewDonburiSink(world)}
}

// World returns the Donburi world backing the bus.
func (b *Bus) World() donburi.World { return b.world }

func (b *Bus) Emit(event game.Event) { b.sink.Emit(event) }

// Subscribe delivers every flushed event to sink, in publish order.
func (b *Bus) Subscribe(sink game.EventSink) {
	GameEventType.Subscribe(b.world, func(_ donburi.World, e game.Event) {
		sink.Emit(e)
	})
}

// Flush delivers queued events to subscribers.
func (b *Bus) Flush() {
	GameEventType.ProcessEvents(b.world)
}
