package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default window settings used when RunConfig fields are zero.
const (
	defaultWidth  = 1280
	defaultHeight = 720
	defaultTPS    = 60
)

// RunConfig holds window and loop settings for Run and NewGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels. The window is
	// resizable; the reflection bounds follow its current size.
	Width, Height int
	// TPS is the fixed update rate. Each update advances the simulation by
	// 1/TPS seconds.
	TPS int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame motion stats to stderr.
	Debug bool
	// ClearColor fills the screen before particles are drawn.
	ClearColor Color
	// ParticleColor tints every particle sprite.
	ParticleColor Color
}

// DefaultRunConfig returns a 1280x720 window with the demo's blue backdrop
// and red particles.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "drift",
		Width:         defaultWidth,
		Height:        defaultHeight,
		TPS:           defaultTPS,
		ClearColor:    Color{R: 0.2, G: 0.2, B: 0.8, A: 1},
		ParticleColor: Color{R: 1, G: 0, B: 0, A: 1},
	}
}

// withDefaults fills zero-valued size and rate fields.
func (rc RunConfig) withDefaults() RunConfig {
	if rc.Width <= 0 {
		rc.Width = defaultWidth
	}
	if rc.Height <= 0 {
		rc.Height = defaultHeight
	}
	if rc.TPS <= 0 {
		rc.TPS = defaultTPS
	}
	return rc
}

// Game is an ebiten.Game that owns a swarm and its repeat timer and drives
// them from ebiten's fixed-rate update loop.
type Game struct {
	// Swarm is the simulated population.
	Swarm *Swarm
	// Timer gates velocity randomization.
	Timer *RepeatTimer
	// OnFrame, if set, is called after every simulation step.
	OnFrame func(FrameStats)

	run           RunConfig
	width, height int
	pixel         *ebiten.Image
	fps           *fpsOverlay
}

// NewGame spawns cfg.Count particles and creates a timer firing every
// cfg.RepeatInterval seconds. A nil rng uses the package-level source.
func NewGame(cfg Config, rc RunConfig, rng RandomSource) *Game {
	rc = rc.withDefaults()
	g := &Game{
		Swarm:  Spawn(cfg, rng),
		Timer:  NewRepeatTimer(cfg.RepeatInterval),
		run:    rc,
		width:  rc.Width,
		height: rc.Height,
	}
	g.Swarm.SetDebugMode(rc.Debug)
	if rc.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Bounds returns the reflection half-extents for the current window size.
func (g *Game) Bounds() Bounds {
	return BoundsFromSize(g.width, g.height)
}

// dt returns the fixed simulation step in seconds.
func (g *Game) dt() float64 {
	return 1.0 / float64(g.run.TPS)
}

// Update advances the simulation by one fixed step.
func (g *Game) Update() error {
	dt := g.dt()
	stats := g.Swarm.Update(dt, g.Bounds(), g.Timer)
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.OnFrame != nil {
		g.OnFrame(stats)
	}
	return nil
}

// Draw clears the screen and renders every particle.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.run.ClearColor.toRGBA())
	g.drawParticles(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout tracks the outside size so the bounds follow window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run spawns a swarm from cfg, opens a window and blocks until it closes.
func Run(cfg Config, rc RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := NewGame(cfg, rc, nil)
	return RunGame(g)
}

// RunGame opens a window for an existing Game and blocks until it closes.
func RunGame(g *Game) error {
	rc := g.run
	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rc.TPS)
	return ebiten.RunGame(g)
}
