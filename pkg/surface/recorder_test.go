package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderKeepsOrder(t *testing.T) {
	r := NewRecorder(100, 50)
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())

	r.Clear()
	r.Save()
	r.BeginPath()
	r.Arc(10, 10, 5, 0, 1)
	r.SetFillColor(color.White)
	r.Fill()
	r.Restore()

	assert.Equal(t, []Op{OpClear, OpSave, OpBeginPath, OpArc, OpFillColor, OpFill, OpRestore}, r.Ops())
	assert.Equal(t, 1, r.Count(OpArc))
	assert.Equal(t, "Arc(10, 10, 5, 0, 1)", r.Calls()[3].String())
	assert.Equal(t, "SetFillColor(rgba(255,255,255,255))", r.Calls()[4].String())
}

func TestRecorderFontSizeIsScoped(t *testing.T) {
	r := NewRecorder(10, 10)
	assert.InDelta(t, 6.0, r.MeasureText("a"), 1e-9)

	r.Save()
	r.SetFontSize(20)
	assert.Equal(t, 1, r.Depth())
	assert.InDelta(t, 36.0, r.MeasureText("abc"), 1e-9)
	r.Restore()

	assert.Zero(t, r.Depth())
	assert.InDelta(t, 6.0, r.MeasureText("a"), 1e-9)
}

func TestRecorderTextsAndReset(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillText("D", 1, 2, AlignCenter, BaselineMiddle)
	r.FillText("i", 3, 4, AlignLeft, BaselineTop)
	assert.Equal(t, []string{"D", "i"}, r.Texts())
	assert.Equal(t, AlignCenter, r.Calls()[0].Align)

	r.Save()
	r.Reset()
	assert.Empty(t, r.Calls())
	assert.Zero(t, r.Depth())
}
