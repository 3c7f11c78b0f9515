package render

import (
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

func labelFace(sizePt float64) (font.Face, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	if labelFontErr != nil {
		return nil, labelFontErr
	}
	face := truetype.NewFace(labelFont, &truetype.Options{Size: sizePt, DPI: 96, Hinting: font.HintingFull})
	return face, nil
}

// DrawLabel stamps text in the bottom-right corner, for proofing builds where
// the icons need to be told apart at a glance. The face size tracks the canvas
// so the label stays legible at every manifest size.
func (c *Canvas) DrawLabel(text string) error {
	face, err := labelFace(float64(c.size) * 0.08)
	if err != nil {
		return err
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	margin := c.size / 16
	if margin < 2 {
		margin = 2
	}
	drawer.Dot = fixed.P(c.size-margin-textWidth, c.size-margin)
	drawer.DrawString(text)
	return nil
}
