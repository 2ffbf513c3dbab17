// Package wheel рисует колесо квадрантов: основу, пунктирную рамку,
// четыре сектора, разделители, буквы в центрах квадрантов и радиальные
// подписи. Рендерер не хранит изменяемого состояния, кроме геометрических
// констант, вычисленных при создании.
package wheel

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"quadrant-wheel/internal/utils"
	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
)

// Orientation направление внутреннего разделителя.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Geometry производные размеры колеса.
type Geometry struct {
	Center       geom.Coordinate
	Width        float64
	Height       float64
	BorderWidth  float64
	MapRadius    float64
	BorderRadius float64
}

// Overlay рисуется поверх колеса последним шагом Render.
type Overlay interface {
	DrawOverlay(s surface.Surface, g Geometry)
}

// OverlayFunc адаптер функции к Overlay.
type OverlayFunc func(s surface.Surface, g Geometry)

func (f OverlayFunc) DrawOverlay(s surface.Surface, g Geometry) { f(s, g) }

// Renderer рисует колесо на поверхности.
type Renderer struct {
	s        surface.Surface
	cfg      Config
	geo      Geometry
	overlays []Overlay
	logger   *slog.Logger
}

// Option настраивает Renderer.
type Option func(*Renderer)

// WithLogger задаёт логгер; по умолчанию slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithOverlay добавляет оверлей, рисуемый после радиальных подписей.
func WithOverlay(o Overlay) Option {
	return func(r *Renderer) { r.overlays = append(r.overlays, o) }
}

// New создаёт рендерер. Ошибка конфигурации возвращается сразу.
func New(s surface.Surface, cfg Config, opts ...Option) (*Renderer, error) {
	if s == nil {
		return nil, fmt.Errorf("wheel: nil surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	size := cfg.Radius * 2
	r := &Renderer{
		s:   s,
		cfg: cfg,
		geo: Geometry{
			Center:      geom.Pt(cfg.Radius, cfg.Radius),
			Width:       size,
			Height:      size,
			BorderWidth: cfg.BorderWidth,
			// отступ карты от края: одна ширина рамки на саму рамку и ещё четыре
			MapRadius: cfg.Radius - cfg.BorderWidth*5,
			// обводка наполовину снаружи линии, поэтому половина ширины
			BorderRadius: cfg.Radius - cfg.BorderWidth/2,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Geometry возвращает производные размеры.
func (r *Renderer) Geometry() Geometry { return r.geo }

// Config возвращает копию конфигурации.
func (r *Renderer) Config() Config { return r.cfg.withDefaults() }

// Surface поверхность рендерера.
func (r *Renderer) Surface() surface.Surface { return r.s }

// Render выполняет полную отрисовку колеса в обязательном порядке:
// основа, рамка, квадранты (с отсечением), разделители, буквы, подписи, оверлеи.
func (r *Renderer) Render(clip *geom.Curve) {
	r.RenderBase()
	r.RenderDashedBorder(r.cfg.Colors.Border)
	r.RenderQuadrants(r.cfg.Active, clip)
	r.RenderDivider(Horizontal)
	r.RenderDivider(Vertical)
	r.RenderCenterLabels()
	for _, l := range r.cfg.RadialLabels {
		r.RenderRadialLabel(l.Text, l.Angle, l.Align, l.Inside, l.Clockwise, l.Kerning)
	}
	for _, o := range r.overlays {
		r.s.Save()
		o.DrawOverlay(r.s, r.geo)
		r.s.Restore()
	}
}

// RenderBase заливает круг карты базовым цветом.
func (r *Renderer) RenderBase() {
	s, g := r.s, r.geo
	base := r.cfg.Colors.Base
	s.Save()
	s.SetLineWidth(g.BorderWidth)
	s.BeginPath()
	s.Arc(g.Center.X, g.Center.Y, g.MapRadius, 0, 2*math.Pi)
	s.SetFillColor(base)
	s.SetStrokeColor(base)
	s.ClosePath()
	s.Fill()
	s.Stroke()
	s.Restore()
}

// RenderDashedBorder обводит колесо пунктиром. Без цвета ничего не делает.
func (r *Renderer) RenderDashedBorder(c color.Color) {
	if c == nil {
		return
	}
	s, g := r.s, r.geo
	dash := g.BorderWidth * 2.25
	s.Save()
	s.SetLineWidth(g.BorderWidth)
	s.SetLineDash(dash, dash)
	s.BeginPath()
	s.Arc(g.Center.X, g.Center.Y, g.BorderRadius, 0, 2*math.Pi)
	s.SetStrokeColor(c)
	s.ClosePath()
	s.Stroke()
	s.Restore()
}

// RenderDivider рисует линию через центр. Концы линии отстоят от края на
// половину зазора между картой и рамкой.
func (r *Renderer) RenderDivider(o Orientation) {
	s, g := r.s, r.geo
	padding := (g.BorderRadius - g.MapRadius) / 2
	s.Save()
	s.SetLineWidth(g.BorderWidth * 1.5)
	s.SetStrokeColor(r.cfg.Colors.Divider)
	s.BeginPath()
	switch o {
	case Vertical:
		s.MoveTo(g.Width/2, padding)
		s.LineTo(g.Width/2, g.Height-padding)
	default:
		s.MoveTo(padding, g.Height/2)
		s.LineTo(g.Width-padding, g.Height/2)
	}
	s.Stroke()
	s.Restore()
}

// RenderCenterLabels ставит буквы D, i, S, C в центры квадрантов.
func (r *Renderer) RenderCenterLabels() {
	s, g := r.s, r.geo
	w, h := g.Width, g.Height
	s.Save()
	s.SetFontSize(w / r.cfg.CenterFontRatio)
	s.SetFillColor(r.cfg.Colors.Text)
	s.FillText(string(LabelD), w/3, h/3, surface.AlignCenter, surface.BaselineMiddle)
	s.FillText(string(LabelI), w*2/3, h/3, surface.AlignCenter, surface.BaselineMiddle)
	s.FillText(string(LabelS), w*2/3, h*17/24, surface.AlignCenter, surface.BaselineMiddle)
	s.FillText(string(LabelC), w/3, h*17/24, surface.AlignCenter, surface.BaselineMiddle)
	s.Restore()
}

// Emphasis прирост радиуса секторов при k активных квадрантах из четырёх.
func Emphasis(k int) float64 {
	n := len(QuadrantLabels)
	if k >= n {
		return 0
	}
	if k < 0 {
		k = 0
	}
	return float64((n - k) * 2)
}

// SlotAngles углы сектора слота i; нулевой слот начинается сверху слева.
func SlotAngles(i int) (start, end float64) {
	start = float64(i+2) * math.Pi / 2
	return start, start + math.Pi/2
}

// EmphasisOffset диагональный сдвиг центра сектора по корзине начального угла.
func EmphasisOffset(start, w float64) geom.Coordinate {
	const eps = 1e-9
	turns := utils.Turns(start)
	switch {
	case turns > 2+eps:
		return geom.Pt(-w, w)
	case turns > 1.5+eps:
		return geom.Pt(w, w)
	case turns > 1+eps:
		return geom.Pt(w, -w)
	default:
		return geom.Pt(-w, -w)
	}
}

// RenderQuadrants рисует сектора активных квадрантов. Если clip задан,
// сектора отсекаются контуром кривой и её зеркального отражения; отсечение
// действует только внутри этого вызова.
func (r *Renderer) RenderQuadrants(active []Label, clip *geom.Curve) {
	on := make(map[Label]bool, len(active))
	for _, l := range active {
		on[l] = true
	}
	k := 0
	for _, l := range QuadrantLabels {
		if on[l] {
			k++
		}
	}
	emphasis := Emphasis(k)

	draw := func() {
		for i, l := range QuadrantLabels {
			if !on[l] {
				continue
			}
			start, end := SlotAngles(i)
			c := r.cfg.Colors.Quadrants[l]
			r.RenderQuadrantSector(emphasis, start, end, c, c)
		}
	}

	s := r.s
	s.Save()
	if clip != nil {
		if b := clip.Bounds(); b.Width() == 0 || b.Height() == 0 {
			r.logger.Warn("degenerate clip region", "min", b.Min, "max", b.Max)
		}
		s.BeginPath()
		clip.TraceClip(s, r.geo.Height)
		s.Clip()
	}
	draw()
	s.Restore()
}

// RenderQuadrantSector рисует один залитый сектор от центра колеса.
// При ненулевом emphasis радиус увеличивается, а центр сдвигается наружу.
// Стиль линий восстанавливается после вызова.
func (r *Renderer) RenderQuadrantSector(emphasis, start, end float64, fill, stroke color.Color) {
	s, g := r.s, r.geo
	var off geom.Coordinate
	if emphasis != 0 {
		off = EmphasisOffset(start, g.BorderWidth)
	}
	c := g.Center.Add(off)
	s.Save()
	defer s.Restore()
	s.SetLineWidth(g.BorderWidth)
	s.BeginPath()
	s.MoveTo(c.X, c.Y)
	s.Arc(c.X, c.Y, g.MapRadius+emphasis, start, end)
	s.ClosePath()
	s.SetFillColor(fill)
	s.SetStrokeColor(stroke)
	s.Fill()
	s.Stroke()
}
