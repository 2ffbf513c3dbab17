// internal/state/chrome.go
package state

import (
	"image"

	"quadrant-wheel/internal/app"
	"quadrant-wheel/internal/config"
	"quadrant-wheel/internal/event"
	"quadrant-wheel/internal/ui"
	"quadrant-wheel/pkg/curve"
	"quadrant-wheel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Chrome окно вокруг холста, общее для обоих состояний.
type Chrome struct {
	Session  *app.Session
	Frame    *render.FrameRenderer
	Panel    *ui.CodePanel
	EditBtn  *ui.Button
	ModeBtn  *ui.Button
	StyleBtn *ui.Button

	face   font.Face
	width  int
	height int
}

// NewChrome раскладывает холст, панель кода и кнопки. frame источник
// растрового изображения поверхности сессии.
func NewChrome(sess *app.Session, frame func() image.Image) (*Chrome, error) {
	face, err := ui.LoadFace(config.UIFontSize)
	if err != nil {
		return nil, err
	}
	mono, err := ui.LoadMonoFace(config.CodeFontSize)
	if err != nil {
		return nil, err
	}

	side := int(sess.Surface.Width())
	w, h := config.WindowSize(sess.Surface.Width() / 2)
	px := side + config.CanvasMargin*2
	by := h - config.CanvasMargin - config.ButtonHeight

	c := &Chrome{
		Session: sess,
		Frame:   render.NewFrameRenderer(frame, config.CanvasMargin, config.CanvasMargin),
		face:    face,
		width:   w,
		height:  h,
	}
	panel := image.Rect(px, config.CanvasMargin, w-config.CanvasMargin, by-config.ButtonSpacing)
	c.Panel = ui.NewCodePanel(panel, mono, face, sess.EventDispatcher)

	button := func(i int) image.Rectangle {
		x := px + i*(config.ButtonWidth+config.ButtonSpacing)
		return image.Rect(x, by, x+config.ButtonWidth, by+config.ButtonHeight)
	}
	c.EditBtn = ui.NewButton(button(0), "Edit", "View")
	c.ModeBtn = ui.NewButton(button(1), "Quadratic", "Cubic")
	c.StyleBtn = ui.NewButton(button(2), "Save Arc", "Delete Arc")

	sess.EventDispatcher.Subscribe(event.FrameDrawn, event.ListenerFunc(func(event.Event) {
		c.Frame.Invalidate()
		c.syncButtons()
	}))
	c.syncButtons()
	return c, nil
}

// Size размер окна.
func (c *Chrome) Size() (int, int) { return c.width, c.height }

func (c *Chrome) syncButtons() {
	c.EditBtn.On = c.Session.Editing()
	c.ModeBtn.On = c.Session.Editor.Mode() == curve.Quadratic
	c.StyleBtn.On = c.Session.HasStyle()
}

// Draw рисует холст, панель и кнопки. Кнопки режима и стиля только при
// редактировании.
func (c *Chrome) Draw(screen *ebiten.Image) {
	screen.Fill(c.Panel.Colors.Background)
	c.Frame.Draw(screen)
	c.Panel.Draw(screen)

	mx, my := ebiten.CursorPosition()
	c.EditBtn.Draw(screen, c.face, c.EditBtn.Contains(mx, my))
	if c.Session.Editing() {
		c.ModeBtn.Draw(screen, c.face, c.ModeBtn.Contains(mx, my))
		c.StyleBtn.Draw(screen, c.face, c.StyleBtn.Contains(mx, my))
	}
}
