package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/render"
)

// whiteSubImage is the 1x1 source texture for filled triangles, created on first use.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenCanvas implements render.Canvas on an ebiten.Image.
type EbitenCanvas struct {
	img *ebiten.Image

	// Scratch buffers reused across DrawPolygon calls.
	vertices []ebiten.Vertex
	indices  []uint16
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Canvas.
func WrapEbitenImage(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// Size returns the width and height of the image.
func (c *EbitenCanvas) Size() (width, height int) {
	return c.img.Bounds().Dx(), c.img.Bounds().Dy()
}

// Clear fills the entire image with the given color.
func (c *EbitenCanvas) Clear(clr color.Color) {
	c.img.Fill(clr)
}

// DrawText prints text with ebiten's debug font, which is always white, so
// clr is ignored. Callers draw a dark backing behind it.
func (c *EbitenCanvas) DrawText(text string, x, y int, clr color.Color) {
	ebitenutil.DebugPrintAt(c.img, text, x, y)
}

// DrawSegment strokes an anti-aliased line.
func (c *EbitenCanvas) DrawSegment(clr color.Color, thickness float64, from, to geom.Point, xf geom.Affine) {
	a := xf.Apply(from)
	b := xf.Apply(to)
	width := float32(max(thickness*xf.ScaleFactor(), 1))
	vector.StrokeLine(c.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

// DrawPolygon fills a closed polygon.
func (c *EbitenCanvas) DrawPolygon(clr color.Color, points []geom.Point, xf geom.Affine) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	p := xf.Apply(points[0])
	path.MoveTo(float32(p.X), float32(p.Y))
	for _, pt := range points[1:] {
		p = xf.Apply(pt)
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	c.img.DrawTriangles(c.vertices, c.indices, whiteTexture(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyDigit1:
		return ebiten.KeyDigit1, true
	case render.KeyDigit2:
		return ebiten.KeyDigit2, true
	case render.KeyDigit3:
		return ebiten.KeyDigit3, true
	case render.KeyDigit4:
		return ebiten.KeyDigit4, true
	case render.KeyDigit5:
		return ebiten.KeyDigit5, true
	case render.KeyDigit6:
		return ebiten.KeyDigit6, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets how many ticks per second the game loop runs.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	canvas EbitenCanvas
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminate) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.canvas.img = screen
	a.game.Draw(&a.canvas)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
