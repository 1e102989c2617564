// Package term renders a drift swarm into a terminal using tcell.
//
// Each character cell covers CellWidth x CellHeight world units, so the
// reflection bounds follow the terminal size. The world origin sits at the
// center cell and world Y grows upward.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/drift"
)

// Config controls how the swarm is mapped onto character cells.
type Config struct {
	// CellWidth and CellHeight are the world units covered by one cell.
	CellWidth, CellHeight float64
	// FPS is the frame rate. Each frame advances the simulation by 1/FPS.
	FPS int
	// Style is applied to every particle glyph.
	Style tcell.Style
}

// DefaultConfig returns 8x16 world units per cell at 30 frames per second,
// roughly matching the pixel size of a terminal cell.
func DefaultConfig() Config {
	return Config{
		CellWidth:  8,
		CellHeight: 16,
		FPS:        30,
		Style:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// BoundsFor returns the reflection half-extents of a cols x rows terminal.
func BoundsFor(cfg Config, cols, rows int) drift.Bounds {
	return drift.Bounds{
		HalfWidth:  float64(cols) * cfg.CellWidth / 2,
		HalfHeight: float64(rows) * cfg.CellHeight / 2,
	}
}

// Project maps a world position to a cell. ok is false when the position
// falls outside the terminal.
func Project(pos drift.Vec3, cfg Config, cols, rows int) (col, row int, ok bool) {
	col = int(math.Floor(float64(cols)/2 + pos.X/cfg.CellWidth))
	row = int(math.Floor(float64(rows)/2 - pos.Y/cfg.CellHeight))
	ok = col >= 0 && col < cols && row >= 0 && row < rows
	return col, row, ok
}

// glyph picks a dot size from a particle's visual scale.
func glyph(scale float64) rune {
	switch {
	case scale < 0.5:
		return '·'
	case scale < 1:
		return '•'
	default:
		return '●'
	}
}

// Screen owns a tcell screen and draws swarms into it.
type Screen struct {
	screen tcell.Screen
	cfg    Config
}

// NewScreen initializes the terminal. Call Close to restore it.
func NewScreen(cfg Config) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: failed to init screen: %w", err)
	}
	return newScreen(screen, cfg), nil
}

// newScreen wraps an already initialized tcell screen.
func newScreen(screen tcell.Screen, cfg Config) *Screen {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		d := DefaultConfig()
		cfg.CellWidth, cfg.CellHeight = d.CellWidth, d.CellHeight
	}
	return &Screen{screen: screen, cfg: cfg}
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Bounds returns the reflection half-extents for the current terminal size.
func (s *Screen) Bounds() drift.Bounds {
	cols, rows := s.screen.Size()
	return BoundsFor(s.cfg, cols, rows)
}

// Draw clears the screen and plots every particle that falls inside it.
func (s *Screen) Draw(swarm *drift.Swarm) {
	cols, rows := s.screen.Size()
	s.screen.Clear()
	for i := 0; i < swarm.Len(); i++ {
		col, row, ok := Project(swarm.Position(i), s.cfg, cols, rows)
		if !ok {
			continue
		}
		s.screen.SetContent(col, row, glyph(swarm.Scale(i)), nil, s.cfg.Style)
	}
	s.screen.Show()
}

// Run steps and draws the swarm at cfg.FPS until Escape, Ctrl-C or q is
// pressed (returns nil) or ctx is cancelled (returns ctx.Err()). onFrame,
// if non-nil, receives the stats of every step.
func (s *Screen) Run(ctx context.Context, swarm *drift.Swarm, timer *drift.RepeatTimer, onFrame func(drift.FrameStats)) error {
	dt := 1.0 / float64(s.cfg.FPS)
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			stats := swarm.Update(dt, s.Bounds(), timer)
			if onFrame != nil {
				onFrame(stats)
			}
			s.Draw(swarm)
		}
	}
}

// handleEvent reports false when the loop should stop.
func (s *Screen) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}
