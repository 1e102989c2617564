package drift

import (
	"math/rand/v2"
	"testing"
)

func TestSpawnPopulation(t *testing.T) {
	cfg := DefaultConfig()
	s := Spawn(cfg, rand.New(rand.NewPCG(1, 2)))
	if s.Len() != 100 {
		t.Fatalf("Len = %d, want 100", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		if p.ID != i {
			t.Errorf("particle %d has ID %d", i, p.ID)
		}
		if p.Velocity.X < -32 || p.Velocity.X > 32 || p.Velocity.Y < -32 || p.Velocity.Y > 32 {
			t.Errorf("particle %d velocity %+v outside [-32, 32]", i, p.Velocity)
		}
		if p.Velocity.Z != 0 {
			t.Errorf("particle %d has non-zero Z velocity", i)
		}
		if p.LastVelocity != p.Velocity {
			t.Errorf("particle %d LastVelocity %+v != Velocity %+v", i, p.LastVelocity, p.Velocity)
		}
		if p.BlendFactor != 0 {
			t.Errorf("particle %d BlendFactor = %v, want 0", i, p.BlendFactor)
		}
		assertNear(t, "Speed", p.Speed, 32)
		assertVec(t, "Position", s.Position(i), Vec3{})
		assertNear(t, "Scale", s.Scale(i), 1)
	}
}

func TestSpawnVelocityFormula(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 2
	r := &scriptedRand{values: []float64{0.75, 0.25, 0, 0.5}}
	s := Spawn(cfg, r)
	assertVec(t, "p0", s.Particle(0).Velocity, Vec3{16, -16, 0})
	assertVec(t, "p1", s.Particle(1).Velocity, Vec3{-32, 0, 0})
}

func TestSpawnEdgeCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 0
	if n := Spawn(cfg, nil).Len(); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}
	cfg.Count = -5
	if n := Spawn(cfg, nil).Len(); n != 0 {
		t.Errorf("negative count: Len = %d, want 0", n)
	}
}

func TestSpawnNilRand(t *testing.T) {
	s := Spawn(DefaultConfig(), nil)
	for i := 0; i < s.Len(); i++ {
		v := s.Particle(i).Velocity
		if v.X < -32 || v.X > 32 || v.Y < -32 || v.Y > 32 {
			t.Fatalf("particle %d velocity %+v outside [-32, 32]", i, v)
		}
	}
}

func TestRetarget(t *testing.T) {
	p := Particle{
		Velocity:     Vec3{3, 4, 0},
		LastVelocity: Vec3{1, 1, 0},
		BlendFactor:  0.6,
		Speed:        10,
	}
	p.Retarget(&scriptedRand{values: []float64{1, 0}})
	assertVec(t, "LastVelocity", p.LastVelocity, Vec3{3, 4, 0})
	assertVec(t, "Velocity", p.Velocity, Vec3{10, -10, 0})
	if p.BlendFactor != 0 {
		t.Errorf("BlendFactor = %v, want 0", p.BlendFactor)
	}
}

func TestSwarmSetPosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 3
	s := Spawn(cfg, nil)
	s.SetPosition(1, Vec3{5, -7, 0})
	assertVec(t, "Position(1)", s.Position(1), Vec3{5, -7, 0})
	assertVec(t, "Position(0)", s.Position(0), Vec3{})
	if s.Config().Count != 3 {
		t.Errorf("Config().Count = %d, want 3", s.Config().Count)
	}
}
