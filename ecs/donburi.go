package ecs

import (
	"github.com/phanxgames/drift"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransformData is the externally owned position and visual scale of a
// particle entity.
type TransformData struct {
	Position drift.Vec3
	Scale    float64
}

// Motion holds a particle's velocity and blend state.
var Motion = donburi.NewComponentType[drift.Particle]()

// Transform holds a particle's position and scale.
var Transform = donburi.NewComponentType[TransformData]()

// RetargetEvent is published once per frame in which the repeat timer fired.
type RetargetEvent struct {
	// Count is the number of entities that drew a new velocity.
	Count int
}

// RetargetEventType is the Donburi event type for RetargetEvent.
// Subscribe to it to react to velocity randomization (sound, flashes).
var RetargetEventType = events.NewEventType[RetargetEvent]()

// Spawn creates cfg.Count particle entities with random initial velocities,
// each paired 1:1 with a Transform at the origin. A nil rng uses the
// package-level math/rand/v2 source.
func Spawn(world donburi.World, cfg drift.Config, rng drift.RandomSource) []donburi.Entity {
	// The swarm arena produces the initial draws; entities take copies.
	swarm := drift.Spawn(cfg, rng)
	entities := make([]donburi.Entity, swarm.Len())
	for i := range entities {
		e := world.Create(Motion, Transform)
		entry := world.Entry(e)
		Motion.SetValue(entry, *swarm.Particle(i))
		Transform.SetValue(entry, TransformData{Position: swarm.Position(i), Scale: swarm.Scale(i)})
		entities[i] = e
	}
	return entities
}

// MotionSystem applies drift's motion rules to every entity with both a
// Motion and a Transform component.
type MotionSystem struct {
	// Config supplies the margin and smoothing settings.
	Config drift.Config
	// Timer gates velocity randomization.
	Timer *drift.RepeatTimer
	// Rand is the source for new velocities. Nil uses the package-level source.
	Rand drift.RandomSource

	query *donburi.Query
}

// NewMotionSystem creates a system with a timer firing every
// cfg.RepeatInterval seconds.
func NewMotionSystem(cfg drift.Config, rng drift.RandomSource) *MotionSystem {
	return &MotionSystem{
		Config: cfg,
		Timer:  drift.NewRepeatTimer(cfg.RepeatInterval),
		Rand:   rng,
		query:  donburi.NewQuery(filter.Contains(Motion, Transform)),
	}
}

// Update advances every particle entity by dt seconds inside bounds. See
// drift.Swarm.Update for the frame rules.
func (s *MotionSystem) Update(world donburi.World, dt float64, bounds drift.Bounds) drift.FrameStats {
	if dt < 0 {
		dt = 0
	}
	var stats drift.FrameStats

	if s.Timer.Tick(dt) {
		n := 0
		s.query.Each(world, func(entry *donburi.Entry) {
			Motion.Get(entry).Retarget(s.Rand)
			n++
		})
		stats.Retargeted = true
		RetargetEventType.Publish(world, RetargetEvent{Count: n})
		return stats
	}

	s.query.Each(world, func(entry *donburi.Entry) {
		p := Motion.Get(entry)
		t := Transform.Get(entry)
		fx, fy := p.Advance(&t.Position, &t.Scale, dt, bounds, &s.Config)
		if fx {
			stats.FlipsX++
		}
		if fy {
			stats.FlipsY++
		}
	})
	return stats
}
