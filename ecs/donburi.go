package ecs

import (
	"github.com/phanxgames/multitouch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TouchEventType is the Donburi event type for routed touch events.
// Subscribe to this in your ECS systems to receive start, move, end and
// cancel events for registered elements.
var TouchEventType = events.NewEventType[multitouch.TouchEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Touch events are published to TouchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) multitouch.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event multitouch.TouchEvent) {
	TouchEventType.Publish(s.world, event)
}

// EntityID returns the entity id carried by the event's element when it is
// a *multitouch.Node, or 0.
func EntityID(event multitouch.TouchEvent) uint32 {
	if n, ok := event.Element.(*multitouch.Node); ok && n != nil {
		return n.EntityID
	}
	return 0
}
