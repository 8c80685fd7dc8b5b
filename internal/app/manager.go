// Package app runs the viewer: it owns the active pattern, switches patterns
// on key presses, and draws each frame centered in the viewport.
package app

import (
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/pattern"
	"chosenoffset.com/fractals/internal/render"
)

// Manager implements render.Game for the pattern viewer.
type Manager struct {
	config     *config.Config
	input      render.InputManager
	patterns   map[config.Kind]pattern.Pattern
	active     pattern.Pattern
	frame      []render.Primitive
	background color.Color
	dt         float64
	onSelect   func(kind config.Kind)

	// FrameCount counts completed updates.
	FrameCount int
}

// NewManager builds the configured pattern. input may be nil when nothing
// reads the keyboard, as in snapshots.
func NewManager(cfg *config.Config, input render.InputManager) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{
		config:     cfg,
		input:      input,
		patterns:   make(map[config.Kind]pattern.Pattern),
		background: cfg.BackgroundColor(),
		dt:         1.0 / float64(cfg.Window.TPS),
	}
	if err := m.Select(cfg.Pattern); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOnSelect sets a callback run after the active pattern changes.
func (m *Manager) SetOnSelect(fn func(kind config.Kind)) {
	m.onSelect = fn
}

// Active returns the pattern being shown.
func (m *Manager) Active() pattern.Pattern {
	return m.active
}

// Select switches to the pattern of the given kind. Patterns are built the
// first time they are selected and keep their state afterwards.
func (m *Manager) Select(kind config.Kind) error {
	p, ok := m.patterns[kind]
	if !ok {
		var err error
		p, err = pattern.New(m.config, kind)
		if err != nil {
			return err
		}
		m.patterns[kind] = p
		log.Printf("Built pattern %s", kind)
	}
	m.active = p
	if m.onSelect != nil {
		m.onSelect(kind)
	}
	return nil
}

// Update handles pattern selection keys and advances the active pattern.
func (m *Manager) Update() error {
	if m.input != nil {
		if m.input.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrTerminate
		}
		kinds := config.AllKinds()
		for i, key := range render.DigitKeys {
			if i < len(kinds) && m.input.IsKeyJustPressed(key) && kinds[i] != m.active.Kind() {
				if err := m.Select(kinds[i]); err != nil {
					return fmt.Errorf("failed to select pattern: %w", err)
				}
			}
		}
	}

	m.active.Update(m.dt)
	m.FrameCount++
	return nil
}

// Draw renders the active pattern centered on the screen.
func (m *Manager) Draw(screen render.Canvas) {
	w, h := screen.Size()
	screen.Clear(m.background)

	m.frame = m.active.Frame(m.frame[:0])
	render.Draw(screen, geom.Translate(float64(w)/2, float64(h)/2), m.frame)

	if m.config.Window.HUD {
		m.drawHUD(screen)
	}
}

// Layout uses the window size as the logical screen size so patterns stay centered.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
