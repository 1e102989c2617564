package drift

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug stats are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints per-frame motion stats to stderr. Only retarget frames
// and frames with reflections are logged to keep the output readable.
func (s *Swarm) debugLog(stats FrameStats) {
	if !s.debug {
		return
	}
	if stats.Retargeted {
		_, _ = fmt.Fprintf(debugOut, "[drift] frame %d: retargeted %d particles\n", s.frame, len(s.particles))
		return
	}
	if stats.FlipsX == 0 && stats.FlipsY == 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[drift] frame %d: flips x: %d | flips y: %d\n", s.frame, stats.FlipsX, stats.FlipsY)
}

// debugCheckBlend panics if a particle's blend factor left [0, 1]. Only
// called when the swarm is in debug mode.
func debugCheckBlend(p *Particle) {
	if p.BlendFactor < 0 || p.BlendFactor > 1 {
		panic(fmt.Sprintf("drift debug: particle %d blend factor %v outside [0, 1]", p.ID, p.BlendFactor))
	}
}
