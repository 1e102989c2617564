package drift

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// easingFuncs maps Config.Easing names to gween easing curves. Curves that
// overshoot (out-back) are clamped to [0, 1] when applied.
var easingFuncs = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-out-sine": ease.InOutSine,
	"out-cubic":   ease.OutCubic,
	"out-back":    ease.OutBack,
}

// EasingNames returns the accepted Config.Easing values in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easingFuncs))
	for name := range easingFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// blendWeight maps a linear blend progress in [0, 1] through the named
// easing curve. Linear and unknown names return progress unchanged, so the
// default path stays in float64.
func blendWeight(progress float64, easing string) float64 {
	progress = clamp01(progress)
	if easing == "" || easing == "linear" {
		return progress
	}
	fn, ok := easingFuncs[easing]
	if !ok {
		return progress
	}
	return clamp01(float64(fn(float32(progress), 0, 1, 1)))
}

// advanceBlend moves BlendFactor forward by dt/duration, clamped to [0, 1].
// A non-positive duration completes the blend at once.
func (p *Particle) advanceBlend(dt, duration float64) {
	if duration <= 0 {
		p.BlendFactor = 1
		return
	}
	p.BlendFactor = clamp01(p.BlendFactor + dt/duration)
}
