// pkg/render/frame.go
package render

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderer держит последний растровый кадр как *ebiten.Image.
// Кадр перезаливается в текстуру только после Invalidate, между
// перерисовками на экран выводится готовое изображение.
type FrameRenderer struct {
	source  func() image.Image
	frame   *ebiten.Image
	staging *image.RGBA
	dirty   bool
	X, Y    float64 // смещение кадра на экране
}

// NewFrameRenderer source возвращает текущее растровое изображение поверхности.
func NewFrameRenderer(source func() image.Image, x, y float64) *FrameRenderer {
	return &FrameRenderer{source: source, dirty: true, X: x, Y: y}
}

// Invalidate помечает кадр устаревшим.
func (r *FrameRenderer) Invalidate() { r.dirty = true }

// Contains попадает ли точка экрана в кадр.
func (r *FrameRenderer) Contains(x, y int) bool {
	if r.frame == nil {
		return false
	}
	b := r.frame.Bounds()
	fx, fy := float64(x)-r.X, float64(y)-r.Y
	return fx >= 0 && fy >= 0 && fx < float64(b.Dx()) && fy < float64(b.Dy())
}

// Local переводит координаты экрана в координаты поверхности.
func (r *FrameRenderer) Local(x, y int) (float64, float64) {
	return float64(x) - r.X, float64(y) - r.Y
}

func (r *FrameRenderer) upload() {
	img := r.source()
	b := img.Bounds()
	if r.frame == nil || r.frame.Bounds().Dx() != b.Dx() || r.frame.Bounds().Dy() != b.Dy() {
		if r.frame != nil {
			r.frame.Deallocate()
		}
		r.frame = ebiten.NewImage(b.Dx(), b.Dy())
		r.staging = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	pix := r.staging
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		pix = rgba
	} else {
		draw.Draw(r.staging, r.staging.Rect, img, b.Min, draw.Src)
	}
	r.frame.WritePixels(pix.Pix)
	r.dirty = false
}

// Draw выводит кадр, при необходимости перезалив его.
func (r *FrameRenderer) Draw(screen *ebiten.Image) {
	if r.dirty || r.frame == nil {
		r.upload()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(r.frame, op)
}
