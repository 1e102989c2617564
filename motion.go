package drift

// FrameStats summarizes one Swarm.Update call.
type FrameStats struct {
	// Retargeted is true when the repeat timer fired and every particle drew
	// a new velocity instead of moving.
	Retargeted bool
	// FlipsX and FlipsY count boundary reflections on each axis.
	FlipsX, FlipsY int
}

// Update advances the swarm by dt seconds inside bounds. The timer ticks
// first; if it fires, every particle is retargeted and nothing moves this
// frame. Otherwise every particle reflects off the bounds and advances.
func (s *Swarm) Update(dt float64, bounds Bounds, timer *RepeatTimer) FrameStats {
	if dt < 0 {
		dt = 0
	}
	var stats FrameStats
	s.frame++

	if timer.Tick(dt) {
		for i := range s.particles {
			s.particles[i].Retarget(s.rng)
		}
		stats.Retargeted = true
		s.debugLog(stats)
		return stats
	}

	for i := range s.particles {
		fx, fy := s.particles[i].Advance(&s.positions[i], &s.scales[i], dt, bounds, &s.config)
		if fx {
			stats.FlipsX++
		}
		if fy {
			stats.FlipsY++
		}
		if s.debug {
			debugCheckBlend(&s.particles[i])
		}
	}
	s.debugLog(stats)
	return stats
}

// Advance applies one non-retarget frame to a particle and its externally
// owned position and scale: reflect off the bounds, then move by the
// (optionally interpolated) velocity. Reflection is checked before the
// move, so a particle that leaves the bounds this frame turns around on the
// next one. A zero dt leaves everything untouched.
func (p *Particle) Advance(pos *Vec3, scale *float64, dt float64, bounds Bounds, cfg *Config) (flipX, flipY bool) {
	if dt <= 0 {
		return false, false
	}

	m := cfg.Margin()
	if pos.X < -bounds.HalfWidth+m || pos.X > bounds.HalfWidth-m {
		p.Velocity.X = -p.Velocity.X
		flipX = true
	}
	if pos.Y < -bounds.HalfHeight+m || pos.Y > bounds.HalfHeight-m {
		p.Velocity.Y = -p.Velocity.Y
		flipY = true
	}

	v := p.Velocity
	if cfg.Smoothing {
		v = p.LastVelocity.Lerp(p.Velocity, blendWeight(p.BlendFactor, cfg.Easing))
		if p.Speed != 0 {
			*scale = v.Length() / p.Speed
		} else {
			*scale = 0
		}
		p.advanceBlend(dt, cfg.SmoothingDuration)
	}

	*pos = pos.Add(v.Scale(dt))
	return flipX, flipY
}
