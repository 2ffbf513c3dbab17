// Package surface описывает поверхность рисования, на которую выводятся
// колесо квадрантов и оверлей кривой.
//
// Набор операций повторяет модель 2D-холста: путь строится вызовами
// MoveTo/LineTo/Arc/BezierCurveTo/QuadraticCurveTo, а затем заливается,
// обводится или становится областью отсечения. Fill и Stroke не сбрасывают
// текущий путь, его сбрасывает только BeginPath.
package surface

import "image/color"

// TextAlign задаёт горизонтальное выравнивание текста относительно точки привязки.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextBaseline задаёт вертикальную привязку текста.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineTop
)

func (b TextBaseline) String() string {
	switch b {
	case BaselineMiddle:
		return "middle"
	case BaselineTop:
		return "top"
	default:
		return "alphabetic"
	}
}

// LineCap форма концов линии.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// LineJoin форма стыков сегментов.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
)

// Surface поверхность рисования. Save/Restore сохраняют и восстанавливают
// стиль, трансформацию и область отсечения.
type Surface interface {
	Width() float64
	Height() float64

	Clear()
	Save()
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc добавляет дугу окружности; углы в радианах, по часовой стрелке (ось y вниз).
	// Если у пути есть текущая точка, к началу дуги проводится отрезок.
	Arc(cx, cy, r, start, end float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	ClosePath()

	Clip()
	Fill()
	Stroke()

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	// SetLineDash без аргументов возвращает сплошную линию.
	SetLineDash(segments ...float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)

	Translate(x, y float64)
	Rotate(angle float64)

	SetFontSize(size float64)
	FillText(s string, x, y float64, align TextAlign, baseline TextBaseline)
	// MeasureText возвращает ширину строки текущим шрифтом.
	MeasureText(s string) float64
}
