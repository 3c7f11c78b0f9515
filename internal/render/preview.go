package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"

	"github.com/cursorconnector/iconsmith/internal/render/layout"
)

// PreviewFramebuffer blits img centered into the Linux framebuffer so the
// master icon can be eyeballed on a device without pulling files off it.
// The image is nearest-neighbor sampled down if it does not fit the display.
func PreviewFramebuffer(img image.Image) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	side := img.Bounds().Dx()
	if fit := layout.FitSquare(bounds); fit.Dx() < side {
		side = fit.Dx()
	}
	dst := layout.Center(bounds, side, side)

	srcBounds := img.Bounds()
	for y := 0; y < dst.Dy(); y++ {
		sy := srcBounds.Min.Y + (y*srcBounds.Dy())/dst.Dy()
		for x := 0; x < dst.Dx(); x++ {
			sx := srcBounds.Min.X + (x*srcBounds.Dx())/dst.Dx()
			r, g, b, _ := img.At(sx, sy).RGBA()
			dev.Set(dst.Min.X+x, dst.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
	return nil
}
