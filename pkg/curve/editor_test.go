package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrant-wheel/pkg/geom"
	"quadrant-wheel/pkg/surface"
	"quadrant-wheel/pkg/wheel"
)

type fixture struct {
	rec     *surface.Recorder
	ed      *Editor
	changes []Change
}

func newFixture(t *testing.T, mode Mode) *fixture {
	t.Helper()
	f := &fixture{rec: surface.NewRecorder(400, 400)}
	w, err := wheel.New(f.rec, wheel.DefaultConfig())
	require.NoError(t, err)
	f.ed = NewEditor(f.rec, w, mode, WithNotify(func(c Change) {
		f.changes = append(f.changes, c)
	}))
	return f
}

func TestNewEditorDoesNotRender(t *testing.T) {
	f := newFixture(t, Cubic)
	assert.Zero(t, f.ed.Frames())
	assert.Empty(t, f.rec.Calls())
	assert.Equal(t, Cubic, f.ed.Mode())
	assert.Equal(t, DefaultCurve(Cubic), f.ed.Points())
	assert.Contains(t, f.ed.CodeText(), "BezierCurveTo")
}

func TestHitTest(t *testing.T) {
	f := newFixture(t, Cubic)
	tests := []struct {
		name string
		pos  geom.Coordinate
		role geom.Role
		hit  bool
	}{
		{"p1 center", geom.Pt(100, 350), geom.P1, true},
		{"p1 inside radius", geom.Pt(109, 350), geom.P1, true},
		{"p1 on radius", geom.Pt(110, 350), 0, false},
		{"p2", geom.Pt(295, 345), geom.P2, true},
		{"cp1", geom.Pt(100, 100), geom.CP1, true},
		{"cp2", geom.Pt(300, 100), geom.CP2, true},
		{"empty canvas", geom.Pt(200, 200), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := f.ed.HitTest(tt.pos)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.Equal(t, tt.role, role)
			}
		})
	}

	q := newFixture(t, Quadratic)
	_, ok := q.ed.HitTest(geom.Pt(300, 100))
	assert.False(t, ok, "у квадратичной кривой нет cp2")
}

func TestDragControlPoint(t *testing.T) {
	f := newFixture(t, Cubic)

	require.True(t, f.ed.PointerDown(geom.Pt(100, 100)))
	assert.Equal(t, DragState{Active: geom.CP1, Dragging: true, Last: geom.Pt(100, 100)}, f.ed.Drag())

	f.ed.PointerMove(geom.Pt(150, 100))
	f.ed.PointerUp()

	pts := f.ed.Points()
	assert.Equal(t, geom.Pt(150, 100), pts.At(geom.CP1))
	assert.Equal(t, geom.Pt(300, 100), pts.At(geom.CP2))
	assert.Equal(t, geom.Pt(100, 350), pts.At(geom.P1))
	assert.Equal(t, geom.Pt(300, 350), pts.At(geom.P2))
	assert.False(t, f.ed.Drag().Dragging)
	assert.Equal(t, 3, f.ed.Frames())
	assert.Equal(t, []Change{DragStarted, DragMoved, DragEnded}, f.changes)
	assert.Contains(t, f.ed.CodeText(), "s.BezierCurveTo(150, 100, 300, 100, 300, 350)")
}

func TestDragAccumulatesDeltas(t *testing.T) {
	f := newFixture(t, Quadratic)
	require.True(t, f.ed.PointerDown(geom.Pt(205, 105)))
	f.ed.PointerMove(geom.Pt(215, 105))
	f.ed.PointerMove(geom.Pt(215, 125))
	assert.Equal(t, geom.Pt(210, 120), f.ed.Points().At(geom.CP1))
}

func TestZeroNetDragKeepsCurve(t *testing.T) {
	f := newFixture(t, Cubic)
	before := f.ed.Points()
	require.True(t, f.ed.PointerDown(geom.Pt(300, 350)))
	f.ed.PointerMove(geom.Pt(330, 310))
	f.ed.PointerMove(geom.Pt(300, 350))
	f.ed.PointerUp()
	assert.Equal(t, before, f.ed.Points())
}

func TestMissDoesNotRedraw(t *testing.T) {
	f := newFixture(t, Cubic)
	assert.False(t, f.ed.PointerDown(geom.Pt(5, 5)))
	f.ed.PointerMove(geom.Pt(50, 50))
	assert.Zero(t, f.ed.Frames())
	assert.Empty(t, f.changes)
	assert.Equal(t, DefaultCurve(Cubic), f.ed.Points())
}

func TestPointerUpAlwaysRedraws(t *testing.T) {
	f := newFixture(t, Cubic)
	f.ed.PointerUp()
	f.ed.PointerLeave()
	assert.Equal(t, 2, f.ed.Frames())
	assert.Empty(t, f.changes, "без перетаскивания DragEnded не отправляется")
}

func TestPointerLeaveKeepsGeometry(t *testing.T) {
	f := newFixture(t, Cubic)
	require.True(t, f.ed.PointerDown(geom.Pt(300, 350)))
	f.ed.PointerMove(geom.Pt(320, 360))
	f.ed.PointerLeave()
	assert.Equal(t, geom.Pt(320, 360), f.ed.Points().At(geom.P2))
	assert.False(t, f.ed.Drag().Dragging)

	// после ухода указателя движение ничего не меняет
	f.ed.PointerMove(geom.Pt(0, 0))
	assert.Equal(t, geom.Pt(320, 360), f.ed.Points().At(geom.P2))
}

func TestToggleMode(t *testing.T) {
	f := newFixture(t, Cubic)
	require.True(t, f.ed.PointerDown(geom.Pt(100, 100)))
	f.ed.PointerMove(geom.Pt(120, 90))
	f.ed.SaveStyle()

	f.ed.ToggleMode()
	assert.Equal(t, Quadratic, f.ed.Mode())
	assert.Equal(t, DefaultCurve(Quadratic), f.ed.Points())
	_, ok := f.ed.ClipRegion()
	assert.False(t, ok)
	assert.False(t, f.ed.Drag().Dragging)
	assert.Contains(t, f.ed.CodeText(), "QuadraticCurveTo")

	f.ed.ToggleMode()
	assert.Equal(t, DefaultCurve(Cubic), f.ed.Points())
	assert.Equal(t, Cubic, f.ed.Mode())
}

func TestSaveStyleIsSnapshot(t *testing.T) {
	f := newFixture(t, Quadratic)
	f.ed.SaveStyle()
	saved, ok := f.ed.ClipRegion()
	require.True(t, ok)
	assert.Equal(t, DefaultCurve(Quadratic), saved)

	require.True(t, f.ed.PointerDown(geom.Pt(200, 100)))
	f.ed.PointerMove(geom.Pt(200, 150))
	again, _ := f.ed.ClipRegion()
	assert.Equal(t, saved, again)

	f.ed.DeleteStyle()
	_, ok = f.ed.ClipRegion()
	assert.False(t, ok)
	assert.Equal(t, []Change{StyleSaved, DragStarted, DragMoved, StyleDeleted}, f.changes)
}

func TestSavedStyleClipsQuadrants(t *testing.T) {
	f := newFixture(t, Cubic)
	f.ed.SaveStyle()
	assert.Equal(t, 1, f.rec.Count(surface.OpClip))

	f.rec.Reset()
	f.ed.DeleteStyle()
	assert.Zero(t, f.rec.Count(surface.OpClip))
}

func TestRenderOrder(t *testing.T) {
	f := newFixture(t, Cubic)
	f.ed.Render()
	calls := f.rec.Calls()

	require.Equal(t, surface.OpClear, calls[0].Op)
	guide := -1
	for i, c := range calls {
		if c.Op == surface.OpStrokeColor && c.Color == DefaultStyle().Guide.Color {
			guide = i
			break
		}
	}
	curve := -1
	for i, c := range calls {
		if c.Op == surface.OpBezierCurveTo {
			curve = i
			break
		}
	}
	var points []int
	for i, c := range calls {
		if c.Op == surface.OpArc && c.Args[2] == DefaultStyle().Point.Radius {
			points = append(points, i)
		}
	}
	wheelText := -1
	for i, c := range calls {
		if c.Op == surface.OpFillText {
			wheelText = i
		}
	}

	require.NotEqual(t, -1, guide)
	require.NotEqual(t, -1, curve)
	require.Len(t, points, 4)
	assert.Less(t, wheelText, guide, "колесо рисуется до оверлея")
	assert.Less(t, guide, curve)
	assert.Less(t, curve, points[0])
	assert.Zero(t, f.rec.Depth())
	assert.Equal(t, 1, f.ed.Frames())
}

func TestQuadraticGuidesFormPolyline(t *testing.T) {
	f := newFixture(t, Quadratic)
	f.ed.Render()
	var lines [][]float64
	for _, c := range f.rec.Calls() {
		if c.Op == surface.OpLineTo {
			lines = append(lines, c.Args)
		}
	}
	// два разделителя колеса, затем ломаная p1 -> cp1 -> p2
	require.Len(t, lines, 4)
	assert.Equal(t, []float64{200, 100}, lines[2])
	assert.Equal(t, []float64{300, 350}, lines[3])
	// основа, четыре сектора и три точки
	assert.Equal(t, 8, f.rec.Count(surface.OpArc))
}
