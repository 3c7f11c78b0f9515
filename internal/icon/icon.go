// Package icon computes the cursor-arrow outline used for all app icons.
package icon

// Point is a canvas coordinate in pixels, measured from the top-left.
type Point struct {
	X float64
	Y float64
}

// The arrow spans ~35% of the canvas and keeps a 12% margin on every side.
const (
	scaleFrac = 0.35
	padFrac   = 0.12
)

// CursorPolygon returns the five vertices of the arrow for a square canvas of
// the given side length: tip at the upper left, two head corners, stem end,
// stem notch. Vertices stay within [padFrac*size, (padFrac+scaleFrac*0.85)*size]
// on both axes, so the outline fits any canvas of side >= 1.
func CursorPolygon(size int) []Point {
	s := float64(size)
	scale := scaleFrac * s
	pad := padFrac * s
	return []Point{
		{X: pad, Y: pad + 0.45*scale},
		{X: pad + 0.45*scale, Y: pad},
		{X: pad + 0.5*scale, Y: pad},
		{X: pad + 0.5*scale, Y: pad + 0.85*scale},
		{X: pad + 0.38*scale, Y: pad + 0.7*scale},
	}
}
