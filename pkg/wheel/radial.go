// pkg/wheel/radial.go
package wheel

import (
	"math"

	"quadrant-wheel/internal/utils"
	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
)

// GlyphPlacement положение одного символа радиальной подписи.
type GlyphPlacement struct {
	Text string
	At   geom.Coordinate
	// Rotation поворот символа в радианах; при 0 символ стоит вертикально.
	Rotation float64
}

// LabelFontSize кегль радиальных подписей.
func (r *Renderer) LabelFontSize() float64 {
	if r.cfg.LabelFontSize > 0 {
		return r.cfg.LabelFontSize
	}
	return math.Max(r.geo.BorderWidth*2.5, r.cfg.Radius/16)
}

// labelRadius радиус средней линии символов.
//
// Внутри колеса подписи идут двумя кольцами у края карты: по часовой
// стрелке внешнее кольцо (верх символов наружу), против часовой внутреннее
// (верх символов к центру), поэтому две подписи под одним углом не
// накладываются. Снаружи подпись ложится в зазор между картой и рамкой.
func (r *Renderer) labelRadius(inside, clockwise bool) float64 {
	g := r.geo
	fs := r.LabelFontSize()
	if !inside {
		return g.MapRadius + (g.BorderRadius-g.MapRadius)/2
	}
	if clockwise {
		return g.MapRadius - fs*0.9
	}
	return g.MapRadius - fs*2.1
}

// LayoutRadialLabel раскладывает символы подписи вдоль окружности.
// Угол в градусах по компасу (0 вверх, по часовой стрелке). Подпись
// читается слева направо: по часовой стрелке она идёт вдоль окружности
// в сторону роста угла, против часовой в обратную сторону, развёрнутая
// на π. kerning добавляется между соседними символами.
func (r *Renderer) LayoutRadialLabel(text string, angleDeg float64, align surface.TextAlign, inside, clockwise bool, kerning float64) []GlyphPlacement {
	runes := []rune(text)
	if len(runes) == 0 || math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		return nil
	}
	rc := r.labelRadius(inside, clockwise)
	if rc <= 0 {
		return nil
	}

	widths := make([]float64, len(runes))
	total := kerning * float64(len(runes)-1)
	r.s.Save()
	r.s.SetFontSize(r.LabelFontSize())
	for i, ch := range runes {
		widths[i] = r.s.MeasureText(string(ch))
		total += widths[i]
	}
	r.s.Restore()
	span := total / rc

	dir := 1.0
	if !clockwise {
		dir = -1
	}
	theta := utils.DegToRad(angleDeg)
	var start float64
	switch align {
	case surface.AlignCenter:
		start = theta - dir*span/2
	case surface.AlignRight:
		start = theta - dir*span
	default:
		start = theta
	}

	out := make([]GlyphPlacement, 0, len(runes))
	offset := 0.0
	for i, ch := range runes {
		mid := start + dir*(offset+widths[i]/2)/rc
		offset += widths[i] + kerning

		dx, dy := utils.PolarCompass(rc, mid)
		rot := mid
		if !clockwise {
			rot += math.Pi
		}
		out = append(out, GlyphPlacement{
			Text:     string(ch),
			At:       r.geo.Center.Add(geom.Pt(dx, dy)),
			Rotation: utils.NormalizeAngle(rot),
		})
	}
	return out
}

// RenderRadialLabel рисует подпись вдоль окружности колеса.
func (r *Renderer) RenderRadialLabel(text string, angleDeg float64, align surface.TextAlign, inside, clockwise bool, kerning float64) {
	if text == "" {
		return
	}
	s := r.s
	s.Save()
	s.SetFontSize(r.LabelFontSize())
	s.SetFillColor(r.cfg.Colors.Text)
	for _, gp := range r.LayoutRadialLabel(text, angleDeg, align, inside, clockwise, kerning) {
		s.Save()
		s.Translate(gp.At.X, gp.At.Y)
		s.Rotate(gp.Rotation)
		s.FillText(gp.Text, 0, 0, surface.AlignCenter, surface.BaselineMiddle)
		s.Restore()
	}
	s.Restore()
}
