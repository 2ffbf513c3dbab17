// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"

	"quadrant-wheel/internal/config"
	"quadrant-wheel/internal/event"
	"quadrant-wheel/pkg/curve"
	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
	"quadrant-wheel/pkg/wheel"
)

// Session связывает колесо, редактор кривой и диспетчер событий.
// В режиме просмотра рисуется только колесо с сохранённым стилем,
// указатель игнорируется.
type Session struct {
	Surface         surface.Surface
	Wheel           *wheel.Renderer
	Editor          *curve.Editor
	EventDispatcher *event.Dispatcher

	editing bool
	frame   int
	seen    int // Editor.Frames() на момент последнего FrameDrawn
	logger  *slog.Logger
}

// SessionOption настраивает Session.
type SessionOption func(*Session)

// WithLogger задаёт логгер сессии, колеса и редактора.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithDispatcher использует внешний диспетчер вместо собственного.
func WithDispatcher(d *event.Dispatcher) SessionOption {
	return func(s *Session) { s.EventDispatcher = d }
}

// NewSession собирает сессию по файлу конфигурации и рисует первый кадр.
// Размер поверхности должен быть 2R x 2R.
func NewSession(f config.File, s surface.Surface, opts ...SessionOption) (*Session, error) {
	sess := &Session{
		Surface: s,
		editing: f.Edit,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(sess)
	}
	if sess.EventDispatcher == nil {
		sess.EventDispatcher = event.NewDispatcher()
	}

	cfg, err := f.WheelConfig()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	w, err := wheel.New(s, cfg, wheel.WithLogger(sess.logger))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	sess.Wheel = w

	mode := curve.Cubic
	if f.Quadratic {
		mode = curve.Quadratic
	}
	sess.Editor = curve.NewEditor(s, w, mode,
		curve.WithLogger(sess.logger),
		curve.WithNotify(sess.onChange),
	)

	sess.logger.Info("session created",
		"radius", cfg.Radius, "border_width", cfg.BorderWidth,
		"quadrants", len(cfg.Active), "mode", mode, "edit", sess.editing)
	sess.Render()
	return sess, nil
}

// Editing включён ли режим редактирования.
func (s *Session) Editing() bool { return s.editing }

// Frame номер последнего нарисованного кадра.
func (s *Session) Frame() int { return s.frame }

// HasStyle есть ли сохранённый стиль.
func (s *Session) HasStyle() bool {
	_, ok := s.Editor.ClipRegion()
	return ok
}

// ToggleEdit включает или выключает редактирование. Активное
// перетаскивание завершается без отката.
func (s *Session) ToggleEdit() {
	if s.editing && s.Editor.Drag().Dragging {
		s.Editor.PointerLeave()
	}
	s.editing = !s.editing
	s.logger.Debug("edit toggled", "edit", s.editing)
	s.EventDispatcher.Dispatch(event.Event{Type: event.EditToggled, Data: s.editing})
	s.Render()
}

// ToggleMode переключает режим кривой. Только в режиме редактирования.
func (s *Session) ToggleMode() {
	if !s.editing {
		return
	}
	s.Editor.ToggleMode()
	s.sync()
}

// SaveOrDelete сохраняет стиль, если его нет, иначе удаляет.
func (s *Session) SaveOrDelete() {
	if !s.editing {
		return
	}
	if s.HasStyle() {
		s.Editor.DeleteStyle()
	} else {
		s.Editor.SaveStyle()
	}
	s.sync()
}

// PointerDown x, y в координатах поверхности.
func (s *Session) PointerDown(x, y float64) bool {
	if !s.editing {
		return false
	}
	hit := s.Editor.PointerDown(geom.Pt(x, y))
	s.sync()
	return hit
}

func (s *Session) PointerMove(x, y float64) {
	if !s.editing {
		return
	}
	s.Editor.PointerMove(geom.Pt(x, y))
	s.sync()
}

func (s *Session) PointerUp() {
	if !s.editing {
		return
	}
	s.Editor.PointerUp()
	s.sync()
}

func (s *Session) PointerLeave() {
	if !s.editing {
		return
	}
	s.Editor.PointerLeave()
	s.sync()
}

// Render перерисовывает кадр в соответствии с режимом.
func (s *Session) Render() {
	if s.editing {
		s.Editor.Render()
		s.sync()
		return
	}
	s.Surface.Clear()
	if clip, ok := s.Editor.ClipRegion(); ok {
		s.Wheel.Render(&clip)
	} else {
		s.Wheel.Render(nil)
	}
	s.frameDrawn()
}

// onChange переводит изменения редактора в события. FrameDrawn
// отправляет sync после возврата из редактора.
func (s *Session) onChange(c curve.Change) {
	var t event.EventType
	switch c {
	case curve.DragStarted:
		t = event.DragStarted
	case curve.DragMoved:
		t = event.DragMoved
	case curve.DragEnded:
		t = event.DragEnded
	case curve.ModeToggled:
		t = event.ModeToggled
	case curve.StyleSaved:
		t = event.StyleSaved
	case curve.StyleDeleted:
		t = event.StyleDeleted
	default:
		return
	}
	s.EventDispatcher.Dispatch(event.Event{Type: t, Data: s.Editor.Points()})
}

// sync отправляет FrameDrawn, если редактор перерисовал поверхность.
func (s *Session) sync() {
	if n := s.Editor.Frames(); n != s.seen {
		s.seen = n
		s.frameDrawn()
	}
}

func (s *Session) frameDrawn() {
	s.frame++
	code := ""
	if s.editing {
		code = s.Editor.CodeText()
	}
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.FrameDrawn,
		Data: event.FramePayload{Frame: s.frame, CodeText: code, Editing: s.editing},
	})
}
