// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade returns c with its alpha scaled by k (0..1). Premultiplied channels are scaled too.
func Fade(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// Lerp mixes a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
