// Package curve реализует редактор кривой Безье поверх колеса квадрантов.
//
// Editor владеет точками кривой и состоянием перетаскивания. Каждое
// изменение состояния заканчивается полной синхронной перерисовкой:
// колесо, направляющие, кривая, контрольные точки, текст кода.
package curve

import (
	"log/slog"
	"math"

	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
	"quadrant-wheel/pkg/wheel"
)

// Change вид изменения, о котором сообщает редактор.
type Change int

const (
	DragStarted Change = iota
	DragMoved
	DragEnded
	ModeToggled
	StyleSaved
	StyleDeleted
)

func (c Change) String() string {
	switch c {
	case DragStarted:
		return "drag-started"
	case DragMoved:
		return "drag-moved"
	case DragEnded:
		return "drag-ended"
	case ModeToggled:
		return "mode-toggled"
	case StyleSaved:
		return "style-saved"
	case StyleDeleted:
		return "style-deleted"
	}
	return "unknown"
}

// DragState переходное состояние перетаскивания.
type DragState struct {
	Active   geom.Role
	Dragging bool
	Last     geom.Coordinate
}

// Editor редактор кривой. Не потокобезопасен: события указателя должны
// приходить последовательно из одного потока.
type Editor struct {
	s      surface.Surface
	wheel  *wheel.Renderer
	style  Style
	points geom.Curve
	clip   *geom.Curve
	drag   DragState
	code   string
	frames int

	notify func(Change)
	logger *slog.Logger
}

// EditorOption настраивает Editor.
type EditorOption func(*Editor)

// WithStyle задаёт оформление оверлея.
func WithStyle(st Style) EditorOption {
	return func(e *Editor) { e.style = st }
}

// WithLogger задаёт логгер; по умолчанию slog.Default().
func WithLogger(l *slog.Logger) EditorOption {
	return func(e *Editor) { e.logger = l }
}

// WithNotify подписывает fn на изменения состояния. fn вызывается после перерисовки.
func WithNotify(fn func(Change)) EditorOption {
	return func(e *Editor) { e.notify = fn }
}

// NewEditor создаёт редактор с канонической кривой режима mode.
// Первую отрисовку вызывающий делает сам через Render.
func NewEditor(s surface.Surface, w *wheel.Renderer, mode Mode, opts ...EditorOption) *Editor {
	e := &Editor{
		s:      s,
		wheel:  w,
		style:  DefaultStyle(),
		points: DefaultCurve(mode),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.code = e.buildCode()
	return e
}

// Mode текущий режим кривой.
func (e *Editor) Mode() Mode { return ModeOf(e.points) }

// Points копия текущих точек.
func (e *Editor) Points() geom.Curve { return e.points }

// Drag текущее состояние перетаскивания.
func (e *Editor) Drag() DragState { return e.drag }

// ClipRegion сохранённый стиль; ok == false, если его нет.
func (e *Editor) ClipRegion() (geom.Curve, bool) {
	if e.clip == nil {
		return geom.Curve{}, false
	}
	return *e.clip, true
}

// CodeText текст кода для текущей кривой.
func (e *Editor) CodeText() string { return e.code }

// Frames число выполненных полных перерисовок.
func (e *Editor) Frames() int { return e.frames }

// Style оформление оверлея.
func (e *Editor) Style() Style { return e.style }

// HitTest возвращает первую по порядку p1, p2, cp1, cp2 точку, в радиус
// которой строго попадает pos.
func (e *Editor) HitTest(pos geom.Coordinate) (geom.Role, bool) {
	r := e.style.Point.Radius
	for _, role := range geom.Roles {
		p, ok := e.points.Get(role)
		if !ok {
			continue
		}
		if p.DistanceSquared(pos) < r*r {
			return role, true
		}
	}
	return 0, false
}

// PointerDown начинает перетаскивание, если pos попал в контрольную точку.
func (e *Editor) PointerDown(pos geom.Coordinate) bool {
	role, ok := e.HitTest(pos)
	if !ok {
		return false
	}
	e.drag = DragState{Active: role, Dragging: true, Last: pos}
	e.logger.Debug("drag started", "role", role, "x", pos.X, "y", pos.Y)
	e.Render()
	e.emit(DragStarted)
	return true
}

// PointerMove сдвигает активную точку на смещение указателя. Вне
// перетаскивания ничего не делает.
func (e *Editor) PointerMove(pos geom.Coordinate) {
	if !e.drag.Dragging {
		return
	}
	delta := pos.Sub(e.drag.Last)
	e.points.Translate(e.drag.Active, delta)
	e.drag.Last = pos
	e.Render()
	e.emit(DragMoved)
}

// PointerUp завершает перетаскивание.
func (e *Editor) PointerUp() { e.endDrag("up") }

// PointerLeave завершает перетаскивание без отката геометрии.
func (e *Editor) PointerLeave() { e.endDrag("leave") }

func (e *Editor) endDrag(reason string) {
	was := e.drag.Dragging
	e.drag = DragState{}
	if was {
		e.logger.Debug("drag ended", "reason", reason)
	}
	e.Render()
	if was {
		e.emit(DragEnded)
	}
}

// ToggleMode переключает кубическую и квадратичную кривую: точки
// сбрасываются в каноническую раскладку, сохранённый стиль удаляется,
// перетаскивание прекращается.
func (e *Editor) ToggleMode() {
	next := e.Mode().Toggle()
	e.points = DefaultCurve(next)
	e.clip = nil
	e.drag = DragState{}
	e.logger.Debug("curve mode toggled", "mode", next)
	e.Render()
	e.emit(ModeToggled)
}

// SaveStyle сохраняет снимок текущей кривой как область отсечения.
func (e *Editor) SaveStyle() {
	snap := e.points
	e.clip = &snap
	b := snap.Bounds()
	if b.Width() == 0 || b.Height() == 0 {
		e.logger.Warn("saved style path is degenerate", "mode", ModeOf(snap))
	}
	e.Render()
	e.emit(StyleSaved)
}

// DeleteStyle удаляет сохранённый стиль.
func (e *Editor) DeleteStyle() {
	e.clip = nil
	e.Render()
	e.emit(StyleDeleted)
}

// Render полностью перерисовывает поверхность из текущего состояния.
func (e *Editor) Render() {
	e.s.Clear()
	e.wheel.Render(e.clip)
	e.drawGuides()
	e.drawCurve()
	e.drawPoints()
	e.code = e.buildCode()
	e.frames++
}

func (e *Editor) drawGuides() {
	s, st := e.s, e.style.Guide
	p1, p2, cp1 := e.points.At(geom.P1), e.points.At(geom.P2), e.points.At(geom.CP1)
	s.Save()
	s.SetLineWidth(st.Width)
	s.SetStrokeColor(st.Color)
	s.BeginPath()
	s.MoveTo(p1.X, p1.Y)
	s.LineTo(cp1.X, cp1.Y)
	if cp2, ok := e.points.Get(geom.CP2); ok {
		s.MoveTo(p2.X, p2.Y)
		s.LineTo(cp2.X, cp2.Y)
	} else {
		s.LineTo(p2.X, p2.Y)
	}
	s.Stroke()
	s.Restore()
}

func (e *Editor) drawCurve() {
	s, st := e.s, e.style.Curve
	s.Save()
	s.SetLineCap(surface.CapRound)
	s.SetLineJoin(surface.JoinRound)
	s.SetLineWidth(st.Width)
	s.SetStrokeColor(st.Color)
	s.BeginPath()
	e.points.Trace(s)
	s.Stroke()
	s.Restore()
}

func (e *Editor) drawPoints() {
	s, st := e.s, e.style.Point
	s.Save()
	s.SetLineWidth(st.Width)
	s.SetStrokeColor(st.Color)
	s.SetFillColor(st.Fill)
	for _, role := range e.points.Present() {
		p := e.points.At(role)
		s.BeginPath()
		s.Arc(p.X, p.Y, st.Radius, 0, 2*math.Pi)
		s.Fill()
		s.Stroke()
	}
	s.Restore()
}

func (e *Editor) buildCode() string {
	return Code(e.points, e.style.Curve, e.s.Width(), e.s.Height())
}

func (e *Editor) emit(c Change) {
	if e.notify != nil {
		e.notify(c)
	}
}
