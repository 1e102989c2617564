// Package drift is a small 2D particle demo for [Ebitengine].
//
// A fixed population of particles drifts with random velocities, bounces off
// the window edges, and every few seconds draws new random velocities. The
// change can be applied instantly or blended from the previous velocity over
// a short duration, with the blend shaped by a [gween] easing curve.
//
// # Quick start
//
// The simplest way to get started is [Run], which spawns the particles,
// creates a window and runs the loop for you:
//
//	drift.Run(drift.DefaultConfig(), drift.DefaultRunConfig())
//
// # Motion core
//
// The simulation itself does not depend on a window. [Spawn] creates a
// [Swarm] and [Swarm.Update] advances it by one frame given the elapsed time,
// the window half-extents and a [RepeatTimer] owned by the caller:
//
//	swarm := drift.Spawn(drift.DefaultConfig(), nil)
//	timer := drift.NewRepeatTimer(2)
//	for {
//		swarm.Update(1.0/60, drift.BoundsFromSize(800, 600), timer)
//	}
//
// Reflection is checked before particles move, so a particle that crosses
// an edge turns around on the following frame.
//
// Other hosts live in subpackages: drift/term renders into a terminal with
// tcell and drift/ecs runs the same rules as a [Donburi] system.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package drift
