// Package ecs provides ECS adapters for celebrate's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges celebrate events
// (celebrate, detonate, loop start/idle, aurora) into a [Donburi] world as
// typed events. Subscribe to [CelebrationEventType] in your ECS systems to
// receive them, or call [TrackStats] to keep running totals on an entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
