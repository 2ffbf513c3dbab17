package wheel

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
)

func newTestRenderer(t *testing.T, mutate func(*Config), opts ...Option) (*Renderer, *surface.Recorder) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := surface.NewRecorder(cfg.Radius*2, cfg.Radius*2)
	r, err := New(rec, cfg, opts...)
	require.NoError(t, err)
	return r, rec
}

func indexOf(calls []surface.Call, from int, match func(surface.Call) bool) int {
	for i := from; i < len(calls); i++ {
		if match(calls[i]) {
			return i
		}
	}
	return -1
}

func isOp(op surface.Op) func(surface.Call) bool {
	return func(c surface.Call) bool { return c.Op == op }
}

func TestGeometry(t *testing.T) {
	r, _ := newTestRenderer(t, nil)
	g := r.Geometry()
	assert.Equal(t, geom.Pt(200, 200), g.Center)
	assert.Equal(t, 400.0, g.Width)
	assert.Equal(t, 400.0, g.Height)
	assert.Equal(t, 180.0, g.MapRadius)
	assert.Equal(t, 198.0, g.BorderRadius)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	rec := surface.NewRecorder(400, 400)
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero radius", func(c *Config) { c.Radius = 0 }, ErrInvalidGeometry},
		{"negative border", func(c *Config) { c.BorderWidth = -1 }, ErrInvalidGeometry},
		{"border eats map", func(c *Config) { c.Radius, c.BorderWidth = 20, 4 }, ErrInvalidGeometry},
		{"unknown label", func(c *Config) { c.Active = []Label{"X"} }, ErrUnknownLabel},
		{"duplicate label", func(c *Config) { c.Active = []Label{LabelD, LabelD} }, ErrDuplicateLabel},
		{"unknown color key", func(c *Config) {
			c.Colors.Quadrants = map[Label]color.Color{"Q": color.Black}
		}, ErrUnknownLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(rec, cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := New(nil, DefaultConfig())
	assert.Error(t, err)
}

func TestDefaultConfigDoesNotShareActive(t *testing.T) {
	a := DefaultConfig()
	a.Active[0] = LabelC
	assert.Equal(t, LabelD, QuadrantLabels[0])
	assert.Equal(t, LabelD, DefaultConfig().Active[0])
}

func TestRenderOrder(t *testing.T) {
	r, rec := newTestRenderer(t, func(c *Config) { c.Colors.Border = color.Black })
	r.Render(nil)
	calls := rec.Calls()

	base := indexOf(calls, 0, func(c surface.Call) bool { return c.Op == surface.OpArc && c.Args[2] == 180 })
	border := indexOf(calls, 0, isOp(surface.OpLineDash))
	sector := indexOf(calls, 0, isOp(surface.OpMoveTo))
	divider := indexOf(calls, 0, isOp(surface.OpLineTo))
	letters := indexOf(calls, 0, func(c surface.Call) bool { return c.Op == surface.OpFillText && c.Text == "D" })
	radial := indexOf(calls, 0, isOp(surface.OpRotate))

	require.NotEqual(t, -1, base)
	assert.Less(t, base, border)
	assert.Less(t, border, sector)
	assert.Less(t, sector, divider)
	assert.Less(t, divider, letters)
	assert.Less(t, letters, radial)
	assert.Zero(t, rec.Depth(), "Save и Restore должны быть парными")
	assert.Equal(t, []string{"D", "i", "S", "C"}, rec.Texts()[:4])
}

func TestRenderWithoutBorder(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.Render(nil)
	assert.Zero(t, rec.Count(surface.OpLineDash))
	assert.Zero(t, rec.Count(surface.OpClip))
}

func TestDashedBorder(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderDashedBorder(color.Black)
	calls := rec.Calls()

	dash := indexOf(calls, 0, isOp(surface.OpLineDash))
	require.NotEqual(t, -1, dash)
	assert.Equal(t, []float64{9, 9}, calls[dash].Args)
	arc := indexOf(calls, 0, isOp(surface.OpArc))
	assert.Equal(t, []float64{200, 200, 198, 0, 2 * math.Pi}, calls[arc].Args)
	assert.Equal(t, 1, rec.Count(surface.OpStroke))
	assert.Zero(t, rec.Count(surface.OpFill))
}

func TestDividers(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderDivider(Horizontal)
	r.RenderDivider(Vertical)
	var lines [][]float64
	for _, c := range rec.Calls() {
		if c.Op == surface.OpMoveTo || c.Op == surface.OpLineTo {
			lines = append(lines, c.Args)
		}
	}
	assert.Equal(t, [][]float64{{9, 200}, {391, 200}, {200, 9}, {200, 391}}, lines)
	assert.Equal(t, 6.0, rec.Calls()[1].Args[0])
}

func TestCenterLabels(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderCenterLabels()
	var texts []surface.Call
	for _, c := range rec.Calls() {
		if c.Op == surface.OpFillText {
			texts = append(texts, c)
		}
	}
	require.Len(t, texts, 4)
	want := map[string][2]float64{
		"D": {400.0 / 3, 400.0 / 3},
		"i": {800.0 / 3, 400.0 / 3},
		"S": {800.0 / 3, 400.0 * 17 / 24},
		"C": {400.0 / 3, 400.0 * 17 / 24},
	}
	for _, c := range texts {
		w := want[c.Text]
		assert.InDelta(t, w[0], c.Args[0], 1e-9, c.Text)
		assert.InDelta(t, w[1], c.Args[1], 1e-9, c.Text)
		assert.Equal(t, surface.AlignCenter, c.Align)
		assert.Equal(t, surface.BaselineMiddle, c.Baseline)
	}
	fs := indexOf(rec.Calls(), 0, isOp(surface.OpFontSize))
	assert.InDelta(t, 400/5.5, rec.Calls()[fs].Args[0], 1e-9)
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, 0.0, Emphasis(4))
	assert.Equal(t, 2.0, Emphasis(3))
	assert.Equal(t, 4.0, Emphasis(2))
	assert.Equal(t, 6.0, Emphasis(1))
	assert.Equal(t, 8.0, Emphasis(0))
}

func TestEmphasisOffsetBuckets(t *testing.T) {
	want := []geom.Coordinate{geom.Pt(-4, -4), geom.Pt(4, -4), geom.Pt(4, 4), geom.Pt(-4, 4)}
	for i, w := range want {
		start, end := SlotAngles(i)
		assert.InDelta(t, math.Pi/2, end-start, 1e-12)
		assert.Equal(t, w, EmphasisOffset(start, 4), "slot %d", i)
	}
}

func TestQuadrantsAllActiveHaveNoEmphasis(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderQuadrants(QuadrantLabels[:], nil)
	var arcs [][]float64
	for _, c := range rec.Calls() {
		if c.Op == surface.OpArc {
			arcs = append(arcs, c.Args)
		}
	}
	require.Len(t, arcs, 4)
	for i, a := range arcs {
		start, end := SlotAngles(i)
		assert.Equal(t, []float64{200, 200, 180, start, end}, a)
	}
}

func TestQuadrantsSingleActiveIsEmphasised(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderQuadrants([]Label{LabelD}, nil)
	calls := rec.Calls()

	require.Equal(t, 1, rec.Count(surface.OpArc))
	move := indexOf(calls, 0, isOp(surface.OpMoveTo))
	assert.Equal(t, []float64{196, 196}, calls[move].Args)
	arc := indexOf(calls, 0, isOp(surface.OpArc))
	assert.Equal(t, 186.0, calls[arc].Args[2])
	fill := indexOf(calls, 0, isOp(surface.OpFillColor))
	assert.Equal(t, DefaultColors().Quadrants[LabelD], calls[fill].Color)
}

func TestQuadrantSectorRestoresStrokeState(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	start, end := SlotAngles(0)
	r.RenderQuadrantSector(0, start, end, color.Black, color.Black)

	ops := rec.Ops()
	assert.Equal(t, surface.OpSave, ops[0])
	assert.Equal(t, surface.OpLineWidth, ops[1])
	assert.Equal(t, surface.OpRestore, ops[len(ops)-1])
	assert.Zero(t, rec.Depth())
}

func TestQuadrantsIgnoreUnknownActive(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	r.RenderQuadrants([]Label{LabelS, "X"}, nil)
	assert.Equal(t, 1, rec.Count(surface.OpArc))
	arc := indexOf(rec.Calls(), 0, isOp(surface.OpArc))
	assert.Equal(t, 186.0, rec.Calls()[arc].Args[2])
}

func TestQuadrantsClipIsScoped(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	clip := geom.Quadratic(geom.Pt(100, 350), geom.Pt(200, 100), geom.Pt(300, 350))
	r.RenderQuadrants(QuadrantLabels[:], &clip)

	ops := rec.Ops()
	assert.Equal(t, []surface.Op{
		surface.OpSave,
		surface.OpBeginPath,
		surface.OpMoveTo,
		surface.OpQuadraticCurveTo,
		surface.OpLineTo,
		surface.OpQuadraticCurveTo,
		surface.OpClosePath,
		surface.OpClip,
	}, ops[:8])
	assert.Equal(t, surface.OpRestore, ops[len(ops)-1])
	// внешний Restore снимает отсечение, по одному на каждый сектор
	assert.Equal(t, 1+4, rec.Count(surface.OpRestore))
	assert.Zero(t, rec.Depth())
}

func TestRenderPassesClipOnlyToQuadrants(t *testing.T) {
	r, rec := newTestRenderer(t, nil)
	clip := geom.Cubic(geom.Pt(100, 350), geom.Pt(100, 100), geom.Pt(300, 100), geom.Pt(300, 350))
	r.Render(&clip)

	calls := rec.Calls()
	c := indexOf(calls, 0, isOp(surface.OpClip))
	require.NotEqual(t, -1, c)
	assert.Equal(t, 1, rec.Count(surface.OpClip))
	// отсечение снимается до разделителей
	restore := indexOf(calls, c, isOp(surface.OpRestore))
	divider := indexOf(calls, c, isOp(surface.OpLineTo))
	assert.Less(t, restore, divider)
}

func TestOverlayDrawnLast(t *testing.T) {
	var got Geometry
	r, rec := newTestRenderer(t, nil, WithOverlay(OverlayFunc(func(s surface.Surface, g Geometry) {
		got = g
		s.FillText("overlay", 0, 0, surface.AlignLeft, surface.BaselineTop)
	})))
	r.Render(nil)

	texts := rec.Texts()
	assert.Equal(t, "overlay", texts[len(texts)-1])
	assert.Equal(t, r.Geometry(), got)
	ops := rec.Ops()
	assert.Equal(t, surface.OpRestore, ops[len(ops)-1])
}

func TestConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	r, err := New(surface.NewRecorder(400, 400), cfg)
	require.NoError(t, err)
	cfg.Active[0] = LabelC
	cfg.Colors.Quadrants[LabelD] = color.Black
	assert.Equal(t, LabelD, r.Config().Active[0])
	assert.NotEqual(t, color.Color(color.Black), r.Config().Colors.Quadrants[LabelD])
}
