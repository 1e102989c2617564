package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRect returns the top-left corner and side length of a particle's
// square sprite in screen pixels. The world origin maps to the screen center
// and world Y grows upward.
func SpriteRect(pos Vec3, scale, size float64, screenW, screenH int) (x, y, side float64) {
	side = size * scale
	x = float64(screenW)/2 + pos.X - side/2
	y = float64(screenH)/2 - pos.Y - side/2
	return x, y, side
}

// drawParticles submits one DrawImage per particle, stretching a 1x1 white
// pixel into a tinted square.
func (g *Game) drawParticles(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	c := g.run.ParticleColor
	a := float32(c.A)
	size := g.Swarm.Config().ParticleSize
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	var op ebiten.DrawImageOptions
	for i := 0; i < g.Swarm.Len(); i++ {
		x, y, side := SpriteRect(g.Swarm.Position(i), g.Swarm.Scale(i), size, w, h)
		if side <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(side, side)
		op.GeoM.Translate(x, y)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
		screen.DrawImage(g.pixel, &op)
	}
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
