package render

import "testing"

func TestNewLinkQR(t *testing.T) {
	c, err := NewLinkQR("https://example.com/cursorconnector", 256)
	if err != nil {
		t.Fatalf("NewLinkQR: %v", err)
	}
	if c.Size() != 256 {
		t.Errorf("canvas size = %d, expected 256", c.Size())
	}
	// The code is inset by the standard margin, so the corner stays background.
	if got := c.Image().RGBAAt(0, 0); got != Background {
		t.Errorf("corner pixel = %v, expected background %v", got, Background)
	}
	white := 0
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if c.Image().RGBAAt(x, y) == Foreground {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("QR canvas contains no foreground pixels")
	}
}

func TestNewLinkQREmptyPayload(t *testing.T) {
	if _, err := NewLinkQR("", 256); err == nil {
		t.Error("empty payload accepted")
	}
}

func TestNewLinkQRDefaultSize(t *testing.T) {
	c, err := NewLinkQR("https://example.com", 0)
	if err != nil {
		t.Fatalf("NewLinkQR: %v", err)
	}
	if c.Size() != defaultLinkQRSizePx {
		t.Errorf("canvas size = %d, expected default %d", c.Size(), defaultLinkQRSizePx)
	}
}
