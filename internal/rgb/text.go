package rgb

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

// RenderText rasterizes a text overlay into an RGBA frame sized to fit the
// string. fontBytes is a TTF font, normally the toolkit's default text font.
func RenderText(text string, fg color.RGBA, fontBytes []byte) (*image.RGBA, error) {
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	fontSize := float64(12)
	dpi := float64(72)

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetDPI(dpi)

	opts := truetype.Options{Size: fontSize, DPI: dpi}
	face := truetype.NewFace(f, &opts)
	defer face.Close()

	textWidth := 0
	for _, r := range text {
		if adv, ok := face.GlyphAdvance(r); ok {
			textWidth += adv.Round()
		}
	}

	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	padding := 1
	img := image.NewRGBA(image.Rect(0, 0, textWidth+padding*2, textHeight+padding*2))

	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(fg))

	pt := freetype.Pt(padding, padding+ascent)
	if _, err := c.DrawString(text, pt); err != nil {
		return nil, fmt.Errorf("failed to draw string: %w", err)
	}
	return img, nil
}
