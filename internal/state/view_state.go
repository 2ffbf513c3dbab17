// internal/state/view_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*ViewState)(nil)

// ViewState режим просмотра: только колесо с сохранённым стилем.
type ViewState struct {
	sm     *StateMachine
	chrome *Chrome
}

func NewViewState(sm *StateMachine, chrome *Chrome) *ViewState {
	return &ViewState{sm: sm, chrome: chrome}
}

func (s *ViewState) Enter() {
	if s.chrome.Session.Editing() {
		s.chrome.Session.ToggleEdit()
	}
}

func (s *ViewState) Exit() {}

func (s *ViewState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	toEdit := inpututil.IsKeyJustPressed(ebiten.KeyE)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.chrome.EditBtn.Click(mx, my, time.Now()) {
		toEdit = true
	}
	if toEdit {
		s.sm.SetState(NewEditState(s.sm, s.chrome))
	}
}

func (s *ViewState) Draw(screen *ebiten.Image) {
	s.chrome.Draw(screen)
}
