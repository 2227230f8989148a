package ecs

import (
	"github.com/phanxgames/willowtree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType carries one event per dispatched action, no-ops
// included. Handlers run from ProcessEvents, so by then the controller may
// already be several generations ahead of TransitionEvent.Generation.
var TransitionEventType = events.NewEventType[willowtree.TransitionEvent]()

// DonburiSink is a willowtree.EventSink that publishes into a donburi world.
type DonburiSink struct {
	world donburi.World

	// SkipIgnored drops actions that left the state unchanged, which are
	// mostly stale completion signals.
	SkipIgnored bool
}

// NewDonburiSink returns a sink publishing to TransitionEventType on world.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world}
}

func (s *DonburiSink) EmitTransition(event willowtree.TransitionEvent) {
	if s.SkipIgnored && !event.Applied {
		return
	}
	TransitionEventType.Publish(s.world, event)
}
