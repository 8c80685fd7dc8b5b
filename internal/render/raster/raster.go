// Package raster implements render.Canvas on an in-memory RGBA image, for
// snapshots and tests that must not open a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/render"
)

// minStroke keeps thin lines at least one pixel wide after scaling.
const minStroke = 1.0

// Canvas rasterizes segments and polygons with an anti-aliasing scanline rasterizer.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

var (
	_ render.Canvas     = (*Canvas)(nil)
	_ render.TextDrawer = (*Canvas)(nil)
)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the canvas with the given color.
func (c *Canvas) Clear(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// DrawSegment strokes a line as a quad of the given thickness.
func (c *Canvas) DrawSegment(clr color.Color, thickness float64, from, to geom.Point, xf geom.Affine) {
	a := xf.Apply(from)
	b := xf.Apply(to)

	width := max(thickness*xf.ScaleFactor(), minStroke)
	dir := b.Sub(a)
	if dir.Length() == 0 {
		dir = geom.Pt(1, 0)
	}
	n := geom.Pt(-dir.Y, dir.X).Normalize().Mul(width / 2)

	c.fill(clr, []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// DrawPolygon fills a closed polygon.
func (c *Canvas) DrawPolygon(clr color.Color, points []geom.Point, xf geom.Affine) {
	if len(points) < 3 {
		return
	}
	pts := make([]geom.Point, len(points))
	for i, p := range points {
		pts[i] = xf.Apply(p)
	}
	c.fill(clr, pts)
}

// fill rasterizes only the pixels under the polygon's bounding box, so the
// cost of a primitive follows its size rather than the canvas size.
func (c *Canvas) fill(clr color.Color, pts []geom.Point) {
	box := boundingBox(pts).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	c.ras.Reset(box.Dx(), box.Dy())
	c.ras.DrawOp = draw.Over

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.ras.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, box, image.NewUniform(clr), box.Min)
}

// boundingBox returns the smallest pixel rectangle covering pts.
func boundingBox(pts []geom.Point) image.Rectangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// DrawText prints text with the built-in 7x13 bitmap font.
func (c *Canvas) DrawText(text string, x, y int, clr color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
