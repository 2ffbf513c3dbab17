// internal/state/edit_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что EditState соответствует интерфейсу State
var _ State = (*EditState)(nil)

// EditState режим редактирования: указатель двигает контрольные точки,
// кнопки переключают режим кривой и сохраняют стиль.
type EditState struct {
	sm     *StateMachine
	chrome *Chrome

	lastX, lastY int
	inside       bool
}

func NewEditState(sm *StateMachine, chrome *Chrome) *EditState {
	return &EditState{sm: sm, chrome: chrome}
}

func (s *EditState) Enter() {
	if !s.chrome.Session.Editing() {
		s.chrome.Session.ToggleEdit()
	}
	s.lastX, s.lastY = ebiten.CursorPosition()
	s.inside = s.chrome.Frame.Contains(s.lastX, s.lastY)
}

func (s *EditState) Exit() {}

func (s *EditState) Update(deltaTime float64) {
	sess := s.chrome.Session
	mx, my := ebiten.CursorPosition()

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.sm.SetState(NewViewState(s.sm, s.chrome))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		sess.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		sess.SaveOrDelete()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		now := time.Now()
		switch {
		case s.chrome.EditBtn.Click(mx, my, now):
			s.sm.SetState(NewViewState(s.sm, s.chrome))
			return
		case s.chrome.ModeBtn.Click(mx, my, now):
			sess.ToggleMode()
		case s.chrome.StyleBtn.Click(mx, my, now):
			sess.SaveOrDelete()
		case s.chrome.Frame.Contains(mx, my):
			sess.PointerDown(s.chrome.Frame.Local(mx, my))
		}
	}

	inside := s.chrome.Frame.Contains(mx, my)
	switch {
	case s.inside && !inside:
		sess.PointerLeave()
	case inside && (mx != s.lastX || my != s.lastY):
		sess.PointerMove(s.chrome.Frame.Local(mx, my))
	}
	s.inside = inside
	s.lastX, s.lastY = mx, my

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && inside {
		sess.PointerUp()
	}
}

func (s *EditState) Draw(screen *ebiten.Image) {
	s.chrome.Draw(screen)
}
