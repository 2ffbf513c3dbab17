package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRasterRejectsEmptySize(t *testing.T) {
	_, err := NewRaster(0, 10)
	assert.Error(t, err)
}

func TestRasterFillsArc(t *testing.T) {
	r, err := NewRaster(40, 40)
	require.NoError(t, err)
	defer r.Close()

	r.Clear()
	r.Save()
	r.BeginPath()
	r.Arc(20, 20, 15, 0, 2*math.Pi)
	r.SetFillColor(color.RGBA{255, 0, 0, 255})
	r.Fill()
	r.Restore()

	cr, cg, cb, ca := r.Image().At(20, 20).RGBA()
	assert.Greater(t, cr>>8, uint32(200))
	assert.Less(t, cg>>8, uint32(50))
	assert.Less(t, cb>>8, uint32(50))
	assert.Greater(t, ca>>8, uint32(200))

	_, _, _, corner := r.Image().At(1, 1).RGBA()
	assert.Less(t, corner>>8, uint32(50))
	assert.Positive(t, r.MeasureText("DRIVE"))
}

// inkBounds габарит непрозрачных пикселей кадра.
func inkBounds(t *testing.T, r *Raster) (w, h int) {
	t.Helper()
	img := r.Image()
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a>>8 > 128 {
				minX, minY = min(minX, x), min(minY, y)
				maxX, maxY = max(maxX, x), max(maxY, y)
			}
		}
	}
	require.GreaterOrEqual(t, maxX, minX, "текст не нарисован")
	return maxX - minX + 1, maxY - minY + 1
}

func drawGlyph(t *testing.T, angle float64) (w, h int) {
	t.Helper()
	r, err := NewRaster(200, 200)
	require.NoError(t, err)
	defer r.Close()

	r.Clear()
	r.Save()
	r.SetFontSize(60)
	r.SetFillColor(color.Black)
	r.Translate(100, 100)
	r.Rotate(angle)
	r.FillText("I", 0, 0, AlignCenter, BaselineMiddle)
	r.Restore()
	return inkBounds(t, r)
}

func TestRasterFillTextFollowsRotation(t *testing.T) {
	w, h := drawGlyph(t, 0)
	assert.Greater(t, h, w, "вертикальная I выше, чем шире")

	w, h = drawGlyph(t, math.Pi/2)
	assert.Greater(t, w, h, "после поворота на π/2 глиф лежит")
}
