// internal/ui/font.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace встроенный Go Regular заданного кегля.
func LoadFace(size float64) (font.Face, error) {
	return loadFace(goregular.TTF, size)
}

// LoadMonoFace встроенный Go Mono, для панели кода.
func LoadMonoFace(size float64) (font.Face, error) {
	return loadFace(gomono.TTF, size)
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("ui: parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ui: new face: %w", err)
	}
	return face, nil
}
