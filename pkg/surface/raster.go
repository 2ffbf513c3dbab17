// pkg/surface/raster.go
package surface

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// rasterState часть стиля, которую gg не сохраняет в Push/Pop.
type rasterState struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	dash      []float64
	lineCap   LineCap
	lineJoin  LineJoin
	fontSize  float64
}

// Raster поверхность поверх программного растеризатора gg.
// Кадр доступен через Image или SavePNG.
type Raster struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
	cur    rasterState
	stack  []rasterState
	logger *slog.Logger
}

var _ Surface = (*Raster)(nil)

// NewRaster создаёт растровую поверхность width x height со шрифтом Go Regular.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid raster size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("surface: load font: %w", err)
	}
	r := &Raster{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float64]text.Face),
		cur: rasterState{
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
			fontSize:  10,
		},
		logger: slog.Default(),
	}
	r.applyStroke()
	return r, nil
}

// Close освобождает контекст и источник шрифта.
func (r *Raster) Close() error {
	if err := r.dc.Close(); err != nil {
		return err
	}
	return r.source.Close()
}

// Image возвращает текущий кадр.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG сохраняет кадр в файл.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

func (r *Raster) Width() float64  { return float64(r.dc.Width()) }
func (r *Raster) Height() float64 { return float64(r.dc.Height()) }

func (r *Raster) Clear() {
	r.dc.Clear()
	r.dc.ClearPath()
}

func (r *Raster) Save() {
	st := r.cur
	st.dash = append([]float64(nil), r.cur.dash...)
	r.stack = append(r.stack, st)
	r.dc.Push()
}

func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.dc.Pop()
	r.applyStroke()
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Arc(cx, cy, radius, start, end float64) {
	sx := cx + radius*math.Cos(start)
	sy := cy + radius*math.Sin(start)
	// gg продолжает кривую от текущей точки без отрезка, холст же его рисует
	if _, _, ok := r.dc.GetCurrentPoint(); ok {
		r.dc.LineTo(sx, sy)
	} else {
		r.dc.MoveTo(sx, sy)
	}
	r.dc.DrawArc(cx, cy, radius, start, end)
}

func (r *Raster) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (r *Raster) QuadraticCurveTo(cx, cy, x, y float64) {
	r.dc.QuadraticTo(cx, cy, x, y)
}

func (r *Raster) ClosePath() { r.dc.ClosePath() }

func (r *Raster) Clip() { r.dc.ClipPreserve() }

func (r *Raster) Fill() {
	r.dc.SetColor(r.cur.fill)
	if err := r.dc.FillPreserve(); err != nil {
		r.logger.Warn("raster fill failed", "err", err)
	}
}

func (r *Raster) Stroke() {
	r.dc.SetColor(r.cur.stroke)
	if err := r.dc.StrokePreserve(); err != nil {
		r.logger.Warn("raster stroke failed", "err", err)
	}
}

func (r *Raster) SetFillColor(c color.Color)   { r.cur.fill = c }
func (r *Raster) SetStrokeColor(c color.Color) { r.cur.stroke = c }

func (r *Raster) SetLineWidth(w float64) {
	r.cur.lineWidth = w
	r.dc.SetLineWidth(w)
}

func (r *Raster) SetLineDash(segments ...float64) {
	r.cur.dash = append(r.cur.dash[:0], segments...)
	r.dc.SetDash(segments...)
}

func (r *Raster) SetLineCap(c LineCap) {
	r.cur.lineCap = c
	r.dc.SetLineCap(ggCap(c))
}

func (r *Raster) SetLineJoin(j LineJoin) {
	r.cur.lineJoin = j
	r.dc.SetLineJoin(ggJoin(j))
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.dc.Rotate(angle) }

func (r *Raster) SetFontSize(size float64) {
	r.cur.fontSize = size
}

func (r *Raster) FillText(s string, x, y float64, align TextAlign, baseline TextBaseline) {
	r.dc.SetFont(r.face(r.cur.fontSize))
	r.dc.SetColor(r.cur.fill)

	var ax, ay float64
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch baseline {
	case BaselineMiddle:
		ay = 0.5
	case BaselineTop:
		ay = 1
	}

	// текст рисуется в текущей матрице, Rotate поворачивает и глифы
	r.dc.DrawStringAnchored(s, x, y, ax, ay)
}

func (r *Raster) MeasureText(s string) float64 {
	r.dc.SetFont(r.face(r.cur.fontSize))
	w, _ := r.dc.MeasureString(s)
	return w
}

func (r *Raster) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.source.Face(size)
	r.faces[size] = f
	return f
}

// applyStroke переносит восстановленный стиль линий обратно в контекст gg.
func (r *Raster) applyStroke() {
	r.dc.SetLineWidth(r.cur.lineWidth)
	r.dc.SetDash(r.cur.dash...)
	r.dc.SetLineCap(ggCap(r.cur.lineCap))
	r.dc.SetLineJoin(ggJoin(r.cur.lineJoin))
}

func ggCap(c LineCap) gg.LineCap {
	if c == CapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}

func ggJoin(j LineJoin) gg.LineJoin {
	if j == JoinRound {
		return gg.LineJoinRound
	}
	return gg.LineJoinMiter
}
