// internal/ui/code_panel.go
package ui

import (
	"image"
	"strings"

	"quadrant-wheel/internal/config"
	"quadrant-wheel/internal/event"
	"quadrant-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const lineSpacing = 4

// CodePanel показывает текст кода текущей кривой. Обновляется по FrameDrawn.
type CodePanel struct {
	Rect     image.Rectangle
	Colors   render.ChromeColors
	lines    []string
	editing  bool
	fontFace font.Face
	title    font.Face
}

// NewCodePanel создаёт панель и подписывает её на dispatcher.
func NewCodePanel(rect image.Rectangle, face, title font.Face, dispatcher *event.Dispatcher) *CodePanel {
	p := &CodePanel{
		Rect: rect,
		Colors: render.ChromeColors{
			Background:  config.BackgroundColor,
			Panel:       config.PanelColor,
			PanelBorder: config.PanelBorderColor,
			TextLight:   config.TextLightColor,
			StrokeWidth: 2,
		},
		fontFace: face,
		title:    title,
	}
	dispatcher.Subscribe(event.FrameDrawn, p)
	return p
}

// OnEvent обрабатывает FrameDrawn.
func (p *CodePanel) OnEvent(e event.Event) {
	payload, ok := e.Data.(event.FramePayload)
	if !ok {
		return
	}
	p.editing = payload.Editing
	p.lines = p.lines[:0]
	for _, l := range strings.Split(strings.TrimRight(payload.CodeText, "\n"), "\n") {
		if l != "" {
			p.lines = append(p.lines, l)
		}
	}
}

// Lines строки, которые сейчас показывает панель.
func (p *CodePanel) Lines() []string { return p.lines }

// Draw рисует панель.
func (p *CodePanel) Draw(screen *ebiten.Image) {
	x, y := float32(p.Rect.Min.X), float32(p.Rect.Min.Y)
	w, h := float32(p.Rect.Dx()), float32(p.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, p.Colors.Panel, true)
	vector.StrokeRect(screen, x, y, w, h, p.Colors.StrokeWidth, p.Colors.PanelBorder, true)

	tx := p.Rect.Min.X + config.PanelPadding
	ty := p.Rect.Min.Y + config.PanelPadding + p.title.Metrics().Ascent.Ceil()
	heading := "Code"
	if !p.editing {
		heading = "View mode (E to edit)"
	}
	text.Draw(screen, heading, p.title, tx, ty, p.Colors.TextLight)

	lh := p.fontFace.Metrics().Height.Ceil() + lineSpacing
	ty += lh + config.PanelPadding
	for _, l := range p.lines {
		if ty > p.Rect.Max.Y-config.PanelPadding {
			break
		}
		text.Draw(screen, l, p.fontFace, tx, ty, p.Colors.TextLight)
		ty += lh
	}
}
