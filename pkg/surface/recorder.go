// pkg/surface/recorder.go
package surface

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Op тип записанной операции рисования.
type Op string

const (
	OpClear            Op = "Clear"
	OpSave             Op = "Save"
	OpRestore          Op = "Restore"
	OpBeginPath        Op = "BeginPath"
	OpMoveTo           Op = "MoveTo"
	OpLineTo           Op = "LineTo"
	OpArc              Op = "Arc"
	OpBezierCurveTo    Op = "BezierCurveTo"
	OpQuadraticCurveTo Op = "QuadraticCurveTo"
	OpClosePath        Op = "ClosePath"
	OpClip             Op = "Clip"
	OpFill             Op = "Fill"
	OpStroke           Op = "Stroke"
	OpFillColor        Op = "SetFillColor"
	OpStrokeColor      Op = "SetStrokeColor"
	OpLineWidth        Op = "SetLineWidth"
	OpLineDash         Op = "SetLineDash"
	OpLineCap          Op = "SetLineCap"
	OpLineJoin         Op = "SetLineJoin"
	OpTranslate        Op = "Translate"
	OpRotate           Op = "Rotate"
	OpFontSize         Op = "SetFontSize"
	OpFillText         Op = "FillText"
)

// Call одна записанная операция.
type Call struct {
	Op       Op
	Args     []float64
	Text     string
	Color    color.Color
	Align    TextAlign
	Baseline TextBaseline
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Op))
	sb.WriteByte('(')
	parts := make([]string, 0, len(c.Args)+1)
	if c.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Text))
	}
	for _, a := range c.Args {
		parts = append(parts, fmt.Sprintf("%g", a))
	}
	if c.Color != nil {
		r, g, b, a := c.Color.RGBA()
		parts = append(parts, fmt.Sprintf("rgba(%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteByte(')')
	return sb.String()
}

// Recorder поверхность, которая ничего не рисует, а записывает
// последовательность вызовов. Используется для проверки порядка отрисовки.
type Recorder struct {
	width, height float64
	fontSize      float64
	fonts         []float64
	calls         []Call
}

var _ Surface = (*Recorder)(nil)

// NewRecorder создаёт записывающую поверхность заданного размера.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height, fontSize: 10}
}

// Calls возвращает копию записанных вызовов.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Ops возвращает только типы операций в порядке вызова.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count считает вызовы операции op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts возвращает строки всех вызовов FillText по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.Op == OpFillText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Depth текущая глубина Save без парного Restore.
func (r *Recorder) Depth() int { return len(r.fonts) }

// Reset очищает журнал, размеры сохраняются.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.fonts = r.fonts[:0]
}

func (r *Recorder) record(op Op, args ...float64) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) Clear() { r.record(OpClear) }

func (r *Recorder) Save() {
	r.fonts = append(r.fonts, r.fontSize)
	r.record(OpSave)
}

func (r *Recorder) Restore() {
	if n := len(r.fonts); n > 0 {
		r.fontSize = r.fonts[n-1]
		r.fonts = r.fonts[:n-1]
	}
	r.record(OpRestore)
}

func (r *Recorder) BeginPath()          { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64) { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record(OpLineTo, x, y) }

func (r *Recorder) Arc(cx, cy, radius, start, end float64) {
	r.record(OpArc, cx, cy, radius, start, end)
}

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(OpBezierCurveTo, c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record(OpQuadraticCurveTo, cx, cy, x, y)
}

func (r *Recorder) ClosePath() { r.record(OpClosePath) }
func (r *Recorder) Clip()      { r.record(OpClip) }
func (r *Recorder) Fill()      { r.record(OpFill) }
func (r *Recorder) Stroke()    { r.record(OpStroke) }

func (r *Recorder) SetFillColor(c color.Color) {
	r.calls = append(r.calls, Call{Op: OpFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.calls = append(r.calls, Call{Op: OpStrokeColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64)          { r.record(OpLineWidth, w) }
func (r *Recorder) SetLineDash(segments ...float64) { r.record(OpLineDash, segments...) }
func (r *Recorder) SetLineCap(c LineCap)            { r.record(OpLineCap, float64(c)) }
func (r *Recorder) SetLineJoin(j LineJoin)          { r.record(OpLineJoin, float64(j)) }
func (r *Recorder) Translate(x, y float64)          { r.record(OpTranslate, x, y) }
func (r *Recorder) Rotate(angle float64)            { r.record(OpRotate, angle) }

func (r *Recorder) SetFontSize(size float64) {
	r.fontSize = size
	r.record(OpFontSize, size)
}

func (r *Recorder) FillText(s string, x, y float64, align TextAlign, baseline TextBaseline) {
	r.calls = append(r.calls, Call{
		Op:       OpFillText,
		Args:     []float64{x, y},
		Text:     s,
		Align:    align,
		Baseline: baseline,
	})
}

// MeasureText использует моноширинную оценку: 0.6 кегля на символ.
func (r *Recorder) MeasureText(s string) float64 {
	return 0.6 * r.fontSize * float64(utf8.RuneCountInString(s))
}
