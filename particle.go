package drift

// Particle holds the motion state of one simulated point.
type Particle struct {
	// ID is assigned sequentially at spawn time. Used for identification only.
	ID int
	// Velocity is the current velocity in distance units per second.
	Velocity Vec3
	// LastVelocity is the velocity in effect before the most recent
	// randomization. It is the interpolation source when smoothing.
	LastVelocity Vec3
	// BlendFactor is the blend progress: 0 is fully LastVelocity, 1 is fully
	// Velocity. It grows by dt/SmoothingDuration each frame and is shaped by
	// Config.Easing before interpolating. Always within [0, 1].
	BlendFactor float64
	// Speed scales new random velocity components and divides the
	// interpolated speed when computing the visual scale.
	Speed float64
}

// Retarget replaces the velocity with a fresh random draw, remembering the
// old one in LastVelocity and restarting the blend.
func (p *Particle) Retarget(rng RandomSource) {
	p.LastVelocity = p.Velocity
	p.Velocity = randomVelocity(orGlobal(rng), p.Speed)
	p.BlendFactor = 0
}

// randomVelocity draws X and Y independently and uniformly from
// [-speed, speed]. Z is always 0.
func randomVelocity(rng RandomSource, speed float64) Vec3 {
	return Vec3{
		X: (rng.Float64() - 0.5) * 2 * speed,
		Y: (rng.Float64() - 0.5) * 2 * speed,
	}
}

// Swarm is the particle arena. Particles, positions and scales are stored in
// parallel slices indexed by particle ID. The population is fixed at spawn.
type Swarm struct {
	config    Config
	rng       RandomSource
	particles []Particle
	positions []Vec3
	scales    []float64
	debug     bool
	frame     int
}

// Spawn creates cfg.Count particles with random initial velocities. All
// particles start at the origin with scale 1. A nil rng uses the
// package-level math/rand/v2 source.
func Spawn(cfg Config, rng RandomSource) *Swarm {
	n := cfg.Count
	if n < 0 {
		n = 0
	}
	rng = orGlobal(rng)
	s := &Swarm{
		config:    cfg,
		rng:       rng,
		particles: make([]Particle, n),
		positions: make([]Vec3, n),
		scales:    make([]float64, n),
	}
	for i := range s.particles {
		v := randomVelocity(rng, cfg.Speed)
		s.particles[i] = Particle{
			ID:           i,
			Velocity:     v,
			LastVelocity: v,
			Speed:        cfg.Speed,
		}
		s.scales[i] = 1
	}
	return s
}

// Config returns the configuration the swarm was spawned with.
func (s *Swarm) Config() Config {
	return s.config
}

// Len returns the population size.
func (s *Swarm) Len() int {
	return len(s.particles)
}

// Particle returns the particle at index i for inspection or tuning.
func (s *Swarm) Particle(i int) *Particle {
	return &s.particles[i]
}

// Position returns the position of particle i.
func (s *Swarm) Position(i int) Vec3 {
	return s.positions[i]
}

// SetPosition moves particle i to pos.
func (s *Swarm) SetPosition(i int, pos Vec3) {
	s.positions[i] = pos
}

// Scale returns the visual scale factor of particle i.
func (s *Swarm) Scale(i int) float64 {
	return s.scales[i]
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (s *Swarm) SetDebugMode(enabled bool) {
	s.debug = enabled
}
