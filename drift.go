package drift

import (
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec3 is a 3D vector used for particle positions and velocities. The demo is
// planar: Z is carried through every operation but always stays 0.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp linearly interpolates from v toward o by t. t=0 yields v, t=1 yields o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t), lerp(v.Z, o.Z, t)}
}

// Bounds holds the usable half-extents of the window. The world origin sits
// at the window center, so a position is inside when |x| <= HalfWidth and
// |y| <= HalfHeight.
type Bounds struct {
	HalfWidth, HalfHeight float64
}

// BoundsFromSize derives half-extents from a window width and height.
func BoundsFromSize(width, height int) Bounds {
	return Bounds{HalfWidth: float64(width) / 2, HalfHeight: float64(height) / 2}
}

// RandomSource supplies uniform floats in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalRand adapts the package-level math/rand/v2 source to RandomSource.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// orGlobal returns rng, or the package-level source when rng is nil.
func orGlobal(rng RandomSource) RandomSource {
	if rng == nil {
		return globalRand{}
	}
	return rng
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
