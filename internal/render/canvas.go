// Package render rasterizes app icons onto offscreen RGBA canvases and
// serializes them as PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/cursorconnector/iconsmith/internal/icon"
)

// Canvas is a square offscreen raster. It is created, drawn on, encoded and
// discarded; nothing about it is safe for concurrent use.
type Canvas struct {
	size int
	img  *image.RGBA
}

// NewCanvas allocates a size x size canvas filled with the background color.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", size)
	}
	c := &Canvas{size: size, img: image.NewRGBA(image.Rect(0, 0, size, size))}
	c.FillBackground()
	return c, nil
}

func (c *Canvas) Size() int          { return c.size }
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillBackground clears the whole canvas to the background color.
func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

// FillPolygon rasterizes the closed polygon described by pts in the given
// color. Fewer than three vertices is a no-op.
func (c *Canvas) FillPolygon(pts []icon.Point, fill color.Color) {
	if len(pts) < 3 {
		return
	}
	rast := vector.NewRasterizer(c.size, c.size)
	rast.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		rast.LineTo(float32(p.X), float32(p.Y))
	}
	rast.ClosePath()
	rast.Draw(c.img, c.img.Bounds(), image.NewUniform(fill), image.Point{})
}

// DrawCursor fills the cursor-arrow outline for this canvas size in the
// foreground color.
func (c *Canvas) DrawCursor() {
	c.FillPolygon(icon.CursorPolygon(c.size), Foreground)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// WriteFile encodes the canvas as PNG into path, replacing any existing file.
func (c *Canvas) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
