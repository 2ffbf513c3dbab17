// Package geom содержит геометрию редактируемой кривой: точки, роли
// контрольных точек и построение контура отсечения.
package geom

import (
	"github.com/gogpu/gg"

	"quadrant-wheel/pkg/surface"
)

// Coordinate точка в координатах поверхности (ось y вниз).
type Coordinate struct {
	X, Y float64
}

// Pt сокращение для Coordinate{x, y}.
func Pt(x, y float64) Coordinate { return Coordinate{X: x, Y: y} }

func (c Coordinate) Add(d Coordinate) Coordinate { return Coordinate{c.X + d.X, c.Y + d.Y} }
func (c Coordinate) Sub(d Coordinate) Coordinate { return Coordinate{c.X - d.X, c.Y - d.Y} }

// DistanceSquared квадрат расстояния, без корня.
func (c Coordinate) DistanceSquared(d Coordinate) float64 {
	dx, dy := c.X-d.X, c.Y-d.Y
	return dx*dx + dy*dy
}

func (c Coordinate) point() gg.Point { return gg.Pt(c.X, c.Y) }

// Role роль контрольной точки.
type Role int

const (
	P1 Role = iota
	P2
	CP1
	CP2
)

// Roles фиксированный порядок обхода ролей (он же порядок проверки попадания).
var Roles = [...]Role{P1, P2, CP1, CP2}

func (r Role) String() string {
	switch r {
	case P1:
		return "p1"
	case P2:
		return "p2"
	case CP1:
		return "cp1"
	case CP2:
		return "cp2"
	}
	return "unknown"
}

// Curve набор контрольных точек. p1, p2 и cp1 есть всегда, cp2 только у
// кубической кривой; наличие cp2 и есть режим кривой.
// Curve передаётся по значению, копия полностью независима от оригинала.
type Curve struct {
	pts    [4]Coordinate
	hasCP2 bool
}

// Quadratic создаёт квадратичную кривую p1 -> p2 с контрольной точкой cp1.
func Quadratic(p1, cp1, p2 Coordinate) Curve {
	return Curve{pts: [4]Coordinate{P1: p1, P2: p2, CP1: cp1}}
}

// Cubic создаёт кубическую кривую p1 -> p2 с контрольными точками cp1, cp2.
func Cubic(p1, cp1, cp2, p2 Coordinate) Curve {
	return Curve{pts: [4]Coordinate{P1: p1, P2: p2, CP1: cp1, CP2: cp2}, hasCP2: true}
}

// IsCubic сообщает, есть ли у кривой cp2.
func (c Curve) IsCubic() bool { return c.hasCP2 }

// Has сообщает, присутствует ли точка с ролью r.
func (c Curve) Has(r Role) bool {
	switch r {
	case P1, P2, CP1:
		return true
	case CP2:
		return c.hasCP2
	}
	return false
}

// Get возвращает точку роли r; ok == false, если её нет.
func (c Curve) Get(r Role) (Coordinate, bool) {
	if !c.Has(r) {
		return Coordinate{}, false
	}
	return c.pts[r], true
}

// At как Get, но для отсутствующей роли возвращает нулевую точку.
func (c Curve) At(r Role) Coordinate {
	p, _ := c.Get(r)
	return p
}

// Set меняет точку роли r. Отсутствующую роль не создаёт.
func (c *Curve) Set(r Role, p Coordinate) bool {
	if !c.Has(r) {
		return false
	}
	c.pts[r] = p
	return true
}

// Translate сдвигает точку роли r на d.
func (c *Curve) Translate(r Role, d Coordinate) bool {
	if !c.Has(r) {
		return false
	}
	c.pts[r] = c.pts[r].Add(d)
	return true
}

// Present возвращает роли, которые есть у кривой, в порядке Roles.
func (c Curve) Present() []Role {
	out := make([]Role, 0, len(Roles))
	for _, r := range Roles {
		if c.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Mirror отражает кривую относительно горизонтали y = height/2.
func (c Curve) Mirror(height float64) Curve {
	m := c
	for i := range m.pts {
		m.pts[i].Y = height - m.pts[i].Y
	}
	return m
}

// Bounds габарит самой кривой (не контрольного многоугольника).
func (c Curve) Bounds() gg.Rect {
	if c.hasCP2 {
		return gg.NewCubicBez(c.pts[P1].point(), c.pts[CP1].point(), c.pts[CP2].point(), c.pts[P2].point()).BoundingBox()
	}
	return gg.NewQuadBez(c.pts[P1].point(), c.pts[CP1].point(), c.pts[P2].point()).BoundingBox()
}

// Trace добавляет в путь поверхности MoveTo(p1) и сегмент кривой до p2.
func (c Curve) Trace(s surface.Surface) {
	s.MoveTo(c.pts[P1].X, c.pts[P1].Y)
	c.curveTo(s)
}

func (c Curve) curveTo(s surface.Surface) {
	p2, cp1 := c.pts[P2], c.pts[CP1]
	if c.hasCP2 {
		cp2 := c.pts[CP2]
		s.BezierCurveTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y)
		return
	}
	s.QuadraticCurveTo(cp1.X, cp1.Y, p2.X, p2.Y)
}

// TraceClip строит замкнутый контур отсечения: кривая p1 -> p2, отрезок к
// отражению p2, отражённая кривая обратно к отражению p1, замыкание.
// height высота поверхности, отражение идёт относительно её середины.
func (c Curve) TraceClip(s surface.Surface, height float64) {
	c.Trace(s)
	m := c.Mirror(height)
	p1, p2, cp1 := m.pts[P1], m.pts[P2], m.pts[CP1]
	s.LineTo(p2.X, p2.Y)
	if m.hasCP2 {
		cp2 := m.pts[CP2]
		s.BezierCurveTo(cp2.X, cp2.Y, cp1.X, cp1.Y, p1.X, p1.Y)
	} else {
		s.QuadraticCurveTo(cp1.X, cp1.Y, p1.X, p1.Y)
	}
	s.ClosePath()
}
