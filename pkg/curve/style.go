// pkg/curve/style.go
package curve

import (
	"image/color"

	"quadrant-wheel/pkg/geom"
)

// Mode режим кривой.
type Mode int

const (
	Cubic Mode = iota
	Quadratic
)

func (m Mode) String() string {
	if m == Quadratic {
		return "quadratic"
	}
	return "cubic"
}

// Toggle возвращает противоположный режим.
func (m Mode) Toggle() Mode {
	if m == Quadratic {
		return Cubic
	}
	return Quadratic
}

// ModeOf режим определяется только наличием cp2.
func ModeOf(c geom.Curve) Mode {
	if c.IsCubic() {
		return Cubic
	}
	return Quadratic
}

// DefaultCurve каноническая раскладка точек для режима.
func DefaultCurve(m Mode) geom.Curve {
	p1, p2 := geom.Pt(100, 350), geom.Pt(300, 350)
	if m == Quadratic {
		return geom.Quadratic(p1, geom.Pt(200, 100), p2)
	}
	return geom.Cubic(p1, geom.Pt(100, 100), geom.Pt(300, 100), p2)
}

// LineStyle толщина и цвет линии.
type LineStyle struct {
	Width float64
	Color color.Color
}

// PointStyle оформление контрольной точки. Radius одновременно радиус
// попадания указателем.
type PointStyle struct {
	Radius float64
	Width  float64
	Color  color.Color
	Fill   color.Color
}

// Style оформление оверлея кривой.
type Style struct {
	Curve LineStyle
	Guide LineStyle
	Point PointStyle
}

// DefaultStyle стиль по умолчанию.
func DefaultStyle() Style {
	return Style{
		Curve: LineStyle{Width: 6, Color: color.RGBA{0, 0, 0, 255}},
		Guide: LineStyle{Width: 2.5, Color: color.RGBA{0xBA, 0xDA, 0x55, 255}},
		Point: PointStyle{
			Radius: 10,
			Width:  2,
			Color:  color.RGBA{0x99, 0, 0, 255},
			Fill:   color.NRGBA{200, 200, 200, 128},
		},
	}
}
