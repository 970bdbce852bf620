// Package ecs routes game events through a [Donburi] world.
//
// The session emits events synchronously in the middle of an update. A [Bus]
// queues them as Donburi events and delivers them to subscribers (audio, pop
// effects, records) when Flush is called, once per frame after the update:
//
//	bus := ecs.NewBus(donburi.NewWorld())
//	bus.Subscribe(player)        // any game.EventSink
//	session := game.NewSession(rnd, bus)
//	...
//	loop.Tick()
//	bus.Flush()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
