package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	"github.com/cursorconnector/iconsmith/internal/render/layout"
)

const defaultLinkQRSizePx = 1024

// NewLinkQR renders a QR code carrying url onto a canvas in the icon palette,
// inset by the standard margin. If sizePx <= 0 a default size is used.
func NewLinkQR(url string, sizePx int) (*Canvas, error) {
	if url == "" {
		return nil, fmt.Errorf("empty QR payload")
	}
	if sizePx <= 0 {
		sizePx = defaultLinkQRSizePx
	}

	c, err := NewCanvas(sizePx)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	code.ForegroundColor = Foreground
	code.BackgroundColor = Background

	// Same 12% margin the cursor icons keep.
	target := layout.Inset(c.img.Bounds(), sizePx*12/100)
	qrImg := code.Image(target.Dx())
	xdraw.NearestNeighbor.Scale(c.img, target, qrImg, qrImg.Bounds(), xdraw.Src, nil)
	return c, nil
}
