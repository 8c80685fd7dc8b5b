// Package render defines the backend-neutral drawing and game loop interfaces.
// Pattern code only talks to these interfaces; the ebiten package drives a
// window with them and the raster package draws offscreen.
package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/fractals/internal/geom"
)

// ErrTerminate is returned from Game.Update to end the game loop normally.
var ErrTerminate = errors.New("render: terminate")

// Canvas is a surface patterns draw onto. All coordinates are passed through
// the given transform before rasterization.
type Canvas interface {
	// Size returns the width and height of the surface in pixels.
	Size() (width, height int)

	// Clear fills the entire surface with the given color.
	Clear(clr color.Color)

	// DrawSegment strokes a line from one point to another.
	DrawSegment(clr color.Color, thickness float64, from, to geom.Point, xf geom.Affine)

	// DrawPolygon fills a closed polygon.
	DrawPolygon(clr color.Color, points []geom.Point, xf geom.Affine)
}

// TextDrawer is implemented by canvases that can print a line of text.
// x and y give the top-left corner of the text in pixels.
type TextDrawer interface {
	DrawText(text string, x, y int, clr color.Color)
}

// PrimitiveKind tells Draw how to render a Primitive.
type PrimitiveKind int

const (
	PrimitiveSegment PrimitiveKind = iota
	PrimitivePolygon
)

// Primitive is one drawable item produced by a pattern.
type Primitive struct {
	Kind      PrimitiveKind
	Segment   geom.Segment // PrimitiveSegment
	Points    []geom.Point // PrimitivePolygon
	Color     color.Color
	Thickness float64
	// Transform places the primitive in pattern coordinates.
	Transform geom.Affine
	// Index is the position of the primitive in its generation order.
	Index int
}

// Draw renders prims onto dst. view maps pattern coordinates to the canvas.
func Draw(dst Canvas, view geom.Affine, prims []Primitive) {
	for i := range prims {
		p := &prims[i]
		xf := view
		if !p.Transform.IsIdentity() {
			xf = view.Multiply(p.Transform)
		}
		switch p.Kind {
		case PrimitiveSegment:
			dst.DrawSegment(p.Color, p.Thickness, p.Segment.A, p.Segment.B, xf)
		case PrimitivePolygon:
			dst.DrawPolygon(p.Color, p.Points, xf)
		}
	}
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the game by one tick. Returning ErrTerminate ends the loop.
	Update() error

	// Draw draws the current frame.
	Draw(screen Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS caps how many times per second Update is called.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer listens to
const (
	KeyDigit1 Key = iota
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyEscape
)

// DigitKeys lists the pattern selection keys in order.
var DigitKeys = []Key{KeyDigit1, KeyDigit2, KeyDigit3, KeyDigit4, KeyDigit5, KeyDigit6}
