// Package ecs runs drift's motion rules inside a [Donburi] world.
//
// [Spawn] creates one entity per particle carrying a [Motion] and a
// [Transform] component. [MotionSystem] applies the same per-frame rules as
// drift.Swarm.Update over every matching entity, and publishes a
// [RetargetEventType] event whenever the repeat timer fires.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.Spawn(world, cfg, nil)
//	sys := ecs.NewMotionSystem(cfg, nil)
//	// each frame:
//	sys.Update(world, dt, drift.BoundsFromSize(w, h))
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
