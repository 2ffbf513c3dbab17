// internal/ui/button.go
package ui

import (
	"image"
	"time"

	"quadrant-wheel/internal/config"
	"quadrant-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button кликабельная кнопка. Если задан AltText, при On кнопка
// показывает его вместо Text (Save Arc / Delete Arc).
type Button struct {
	Rect    image.Rectangle
	Text    string
	AltText string
	On      bool

	lastClick time.Time
}

// NewButton создаёт кнопку в rect.
func NewButton(rect image.Rectangle, text, alt string) *Button {
	return &Button{Rect: rect, Text: text, AltText: alt}
}

// Label текущая надпись.
func (b *Button) Label() string {
	if b.On && b.AltText != "" {
		return b.AltText
	}
	return b.Text
}

// Contains попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click засчитывает нажатие в (x, y), если оно внутри кнопки и прошло
// не меньше config.ClickCooldown с прошлого срабатывания.
func (b *Button) Click(x, y int, now time.Time) bool {
	if !b.Contains(x, y) {
		return false
	}
	if !b.lastClick.IsZero() && now.Sub(b.lastClick) < config.ClickCooldown*time.Millisecond {
		return false
	}
	b.lastClick = now
	return true
}

// Draw рисует кнопку; hovered подсвечивает фон.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := config.ButtonColor
	switch {
	case b.On:
		bg = config.ButtonActiveColor
	case hovered:
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, render.DarkenColor(bg), true)

	label := b.Label()
	bounds := text.BoundString(face, label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, label, face, tx, ty, config.TextLightColor)
}
