package render

import (
	"bytes"
	"image/png"
	"testing"
)

func TestNewCanvasRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, -1, -120} {
		if _, err := NewCanvas(size); err == nil {
			t.Errorf("NewCanvas(%d) = nil error, expected failure", size)
		}
	}
}

func TestNewCanvasFillsBackground(t *testing.T) {
	c, err := NewCanvas(64)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	corners := [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}}
	for _, p := range corners {
		if got := c.Image().RGBAAt(p[0], p[1]); got != Background {
			t.Errorf("corner (%d,%d) = %v, expected background %v", p[0], p[1], got, Background)
		}
	}
}

func TestDrawCursorPixels(t *testing.T) {
	c, err := NewCanvas(120)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.DrawCursor()

	// The outline keeps a 12% margin, so the corner stays background.
	if got := c.Image().RGBAAt(0, 0); got != Background {
		t.Errorf("corner pixel = %v, expected background %v", got, Background)
	}
	// (30,30) is well inside the arrow head for a 120px canvas; full coverage
	// means pure foreground even with anti-aliased edges.
	if got := c.Image().RGBAAt(30, 30); got != Foreground {
		t.Errorf("interior pixel = %v, expected foreground %v", got, Foreground)
	}
}

func TestEncodePNGDimensions(t *testing.T) {
	sizes := []int{120, 152, 180, 1024}
	for _, size := range sizes {
		c, err := NewCanvas(size)
		if err != nil {
			t.Fatalf("NewCanvas(%d): %v", size, err)
		}
		c.DrawCursor()
		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG(%d): %v", size, err)
		}
		cfg, err := png.DecodeConfig(&buf)
		if err != nil {
			t.Fatalf("DecodeConfig(%d): %v", size, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("size %d: encoded as %dx%d", size, cfg.Width, cfg.Height)
		}
	}
}

func TestDrawCursorDeterministic(t *testing.T) {
	encode := func() []byte {
		c, err := NewCanvas(152)
		if err != nil {
			t.Fatalf("NewCanvas: %v", err)
		}
		c.DrawCursor()
		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG: %v", err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(encode(), encode()) {
		t.Error("two renders of the same size differ")
	}
}

func TestDrawLabelChangesPixels(t *testing.T) {
	plain, err := NewCanvas(120)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	plain.DrawCursor()

	labeled, err := NewCanvas(120)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	labeled.DrawCursor()
	if err := labeled.DrawLabel("120"); err != nil {
		t.Fatalf("DrawLabel: %v", err)
	}
	if bytes.Equal(plain.Image().Pix, labeled.Image().Pix) {
		t.Error("label left the canvas unchanged")
	}
	// The label sits in the bottom-right corner, clear of the arrow.
	if got := labeled.Image().RGBAAt(30, 30); got != Foreground {
		t.Errorf("arrow interior = %v after labeling, expected foreground", got)
	}
}
