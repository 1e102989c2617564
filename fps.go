package drift

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is rebuilt.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	sample func() (fps, tps float64)
	accum  float64
	text   string
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{
		sample: func() (float64, float64) { return ebiten.ActualFPS(), ebiten.ActualTPS() },
		accum:  fpsRefresh, // build the text on the first update
	}
}

// update rebuilds the overlay text roughly every fpsRefresh seconds.
func (o *fpsOverlay) update(dt float64) {
	o.accum += dt
	if o.accum < fpsRefresh {
		return
	}
	o.accum = 0
	fps, tps := o.sample()
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}
