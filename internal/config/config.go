// internal/config/config.go
package config

import "image/color"

const (
	CanvasMargin   = 20  // отступ холста колеса от края окна
	PanelWidth     = 420 // ширина панели кода справа от холста
	PanelPadding   = 12
	ButtonWidth    = 120
	ButtonHeight   = 32
	ButtonSpacing  = 10
	UIFontSize     = 14
	CodeFontSize   = 13
	MinWindowH     = 360
	ClickCooldown  = 150 // мс между срабатываниями одной кнопки
	MaxDeltaTime   = 0.06
	DefaultRadius  = 200.0
	DefaultBorderW = 4.0
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	PanelColor        = color.RGBA{25, 35, 45, 230}
	PanelBorderColor  = color.RGBA{70, 130, 180, 255}
	ButtonColor       = color.RGBA{70, 100, 120, 255}
	ButtonHoverColor  = color.RGBA{90, 130, 160, 255}
	ButtonActiveColor = color.RGBA{33, 150, 243, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	// DefaultBorderColor цвет рамки, когда в конфиге border = "true"
	DefaultBorderColor = color.RGBA{51, 51, 51, 255}
)

// WindowSize размер окна для колеса радиуса radius
func WindowSize(radius float64) (int, int) {
	side := int(radius * 2)
	w := side + CanvasMargin*2 + PanelWidth
	h := side + CanvasMargin*2
	if h < MinWindowH {
		h = MinWindowH
	}
	return w, h
}
