// internal/config/color.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor строка не является цветом
var ErrInvalidColor = errors.New("config: invalid color")

// ParseColor разбирает "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" или имя цвета SVG.
// Пустая строка даёт nil без ошибки.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, ch := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return toNRGBA(gg.Hex(hex)), nil
}

// toNRGBA округляет каналы; RGBA.Color() из gg отбрасывает дробную часть.
func toNRGBA(c gg.RGBA) color.NRGBA {
	ch := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// ParseBorder разбирает значение рамки. "true" даёт цвет по умолчанию,
// "false" или пустая строка означают отсутствие рамки, иначе это цвет.
func ParseBorder(s string) (color.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false":
		return nil, nil
	case "true":
		return DefaultBorderColor, nil
	}
	return ParseColor(s)
}
