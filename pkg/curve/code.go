// pkg/curve/code.go
package curve

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"quadrant-wheel/pkg/geom"
)

// Code формирует текст инструкций, которыми можно нарисовать текущую кривую
// на растровой поверхности. Текст только для показа.
func Code(c geom.Curve, st LineStyle, width, height float64) string {
	p1, p2, cp1 := c.At(geom.P1), c.At(geom.P2), c.At(geom.CP1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "s, _ := surface.NewRaster(%s, %s)\n", num(width), num(height))
	fmt.Fprintf(&sb, "s.SetLineWidth(%s)\n", num(st.Width))
	fmt.Fprintf(&sb, "s.SetStrokeColor(%s)\n", rgbaLiteral(st.Color))
	sb.WriteString("s.BeginPath()\n")
	fmt.Fprintf(&sb, "s.MoveTo(%s, %s)\n", num(p1.X), num(p1.Y))
	if cp2, ok := c.Get(geom.CP2); ok {
		fmt.Fprintf(&sb, "s.BezierCurveTo(%s, %s, %s, %s, %s, %s)\n",
			num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(p2.X), num(p2.Y))
	} else {
		fmt.Fprintf(&sb, "s.QuadraticCurveTo(%s, %s, %s, %s)\n",
			num(cp1.X), num(cp1.Y), num(p2.X), num(p2.Y))
	}
	sb.WriteString("s.Stroke()\n")
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rgbaLiteral(c color.Color) string {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("color.NRGBA{R: %d, G: %d, B: %d, A: %d}", n.R, n.G, n.B, n.A)
}
