package rgb

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HexName formats a color the way the controls list shows it (#rrggbb)
func HexName(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Blend interpolates between start and end in Lab space. t is clamped to
// [0,1]; Lab keeps the midpoints from washing out the way plain RGB
// interpolation does.
func Blend(start, end color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return end
	}
	a := colorful.Color{R: float64(start.R) / 255.0, G: float64(start.G) / 255.0, B: float64(start.B) / 255.0}
	b := colorful.Color{R: float64(end.R) / 255.0, G: float64(end.G) / 255.0, B: float64(end.B) / 255.0}
	m := a.BlendLab(b, t).Clamped()
	return color.RGBA{
		R: uint8(m.R*255.0 + 0.5),
		G: uint8(m.G*255.0 + 0.5),
		B: uint8(m.B*255.0 + 0.5),
		A: 255,
	}
}

// GradientFrame renders a horizontal start-to-end gradient across a matrix
// of the given size. Used by the console preview when a matrix has color
// controls but no animation running.
func GradientFrame(start, end color.RGBA, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for x := 0; x < cols; x++ {
		t := 0.0
		if cols > 1 {
			t = float64(x) / float64(cols-1)
		}
		c := Blend(start, end, t)
		for y := 0; y < rows; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
