package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/pattern"
	"chosenoffset.com/fractals/internal/render"
)

const (
	hudMargin     = 8
	hudPadding    = 4
	hudLineHeight = 16
	// hudGlyphWidth fits the widest backend font: 7x13 raster, 6x16 ebiten debug.
	hudGlyphWidth = 7
)

var hudPanel = color.RGBA{0x10, 0x10, 0x10, 0xc0}

// hudLines returns the overlay text for the active pattern.
func (m *Manager) hudLines() []string {
	kinds := config.AllKinds()
	keys := make([]string, 0, len(kinds))
	for i, k := range kinds {
		keys = append(keys, fmt.Sprintf("%d %s", i+1, k))
	}

	title := m.active.Kind().Title()
	if k, ok := m.active.(*pattern.Koch); ok && k.Reveal() != nil {
		title = fmt.Sprintf("%s  depth %d  %3.0f%%", title, k.Snowflake().Depth(), k.Reveal().Fraction()*100)
	}

	lines := []string{title}
	if m.input != nil {
		lines = append(lines, strings.Join(keys, "  "), "Esc quit")
	}
	return lines
}

// drawHUD prints the pattern name and key help in white on a dark panel when
// the canvas supports text.
func (m *Manager) drawHUD(screen render.Canvas) {
	td, ok := screen.(render.TextDrawer)
	if !ok {
		return
	}
	lines := m.hudLines()
	screen.DrawPolygon(hudPanel, hudPanelRect(lines), geom.Identity())
	for i, line := range lines {
		td.DrawText(line, hudMargin, hudMargin+i*hudLineHeight, color.White)
	}
}

// hudPanelRect returns the corners of the panel behind lines.
func hudPanelRect(lines []string) []geom.Point {
	longest := 0
	for _, line := range lines {
		longest = max(longest, utf8.RuneCountInString(line))
	}
	x0 := float64(hudMargin - hudPadding)
	y0 := float64(hudMargin - hudPadding)
	x1 := float64(hudMargin + longest*hudGlyphWidth + hudPadding)
	y1 := float64(hudMargin + len(lines)*hudLineHeight + hudPadding)
	return []geom.Point{geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1)}
}
