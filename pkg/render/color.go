// pkg/render/color.go
package render

import "image/color"

// ChromeColors цвета окна вокруг холста.
type ChromeColors struct {
	Background  color.RGBA
	Panel       color.RGBA
	PanelBorder color.RGBA
	TextLight   color.RGBA
	StrokeWidth float32
}

// DarkenColor уменьшает яркость цвета вдвое.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает каналы RGB на k с насыщением, альфа не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
