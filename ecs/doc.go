// Package ecs provides ECS adapters for willowtree controllers.
//
// [NewDonburiSink] forwards every dispatched action of a controller into a
// [Donburi] world as a typed event. Subscribe to [TransitionEventType] in
// your ECS systems to receive them:
//
//	sink := ecs.NewDonburiSink(world)
//	sink.SkipIgnored = true // only transitions that changed the state
//	ctrl, err := willowtree.New(root, cfg.Layout(), willowtree.WithEventSink(sink))
//
// [Mirror] keeps one entity per laid-out tree node, so systems can query
// node state with ordinary donburi queries:
//
//	m := ecs.NewMirror(world)
//	unsubscribe := m.Follow(ctrl)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
