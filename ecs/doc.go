// Package ecs provides ECS adapters for multitouch's routed touch events.
//
// The primary adapter is [NewDonburiStore], which bridges router events
// (start, move, end, cancel) into a [Donburi] world as typed events.
// Subscribe to [TouchEventType] in your ECS systems to receive them and use
// [EntityID] to map an event back to the entity behind its node.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
