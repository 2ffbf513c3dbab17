// pkg/wheel/config.go
package wheel

import (
	"errors"
	"fmt"
	"image/color"

	"quadrant-wheel/pkg/surface"
)

var (
	// ErrUnknownLabel активная метка не входит в четыре фиксированные.
	ErrUnknownLabel = errors.New("wheel: unknown quadrant label")
	// ErrDuplicateLabel метка квадранта указана дважды.
	ErrDuplicateLabel = errors.New("wheel: duplicate quadrant label")
	// ErrInvalidGeometry радиус или ширина рамки не дают круга для карты.
	ErrInvalidGeometry = errors.New("wheel: invalid geometry")
)

// Label метка квадранта.
type Label string

const (
	LabelD Label = "D"
	LabelI Label = "i"
	LabelS Label = "S"
	LabelC Label = "C"
)

// QuadrantLabels фиксированные метки в порядке слотов:
// верхний левый, верхний правый, нижний правый, нижний левый.
var QuadrantLabels = [...]Label{LabelD, LabelI, LabelS, LabelC}

// ParseLabel проверяет, что s одна из фиксированных меток.
func ParseLabel(s string) (Label, error) {
	for _, l := range QuadrantLabels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// Colors цвета колеса.
type Colors struct {
	Quadrants map[Label]color.Color
	Base      color.Color
	// Border nil: пунктирная рамка не рисуется.
	Border  color.Color
	Text    color.Color
	Divider color.Color
}

// DefaultColors палитра по умолчанию, без рамки.
func DefaultColors() Colors {
	return Colors{
		Quadrants: map[Label]color.Color{
			LabelD: color.RGBA{217, 83, 79, 255},
			LabelI: color.RGBA{240, 173, 78, 255},
			LabelS: color.RGBA{92, 184, 92, 255},
			LabelC: color.RGBA{66, 139, 202, 255},
		},
		Base:    color.RGBA{230, 230, 230, 255},
		Text:    color.White,
		Divider: color.White,
	}
}

// RadialLabel подпись вдоль окружности.
type RadialLabel struct {
	Text string
	// Angle в градусах: 0: вверх, рост по часовой стрелке.
	Angle     float64
	Align     surface.TextAlign
	Inside    bool
	Clockwise bool
	Kerning   float64
}

// DefaultRadialLabels восемь подписей приоритетов.
func DefaultRadialLabels() []RadialLabel {
	lbl := func(text string, angle float64, clockwise bool) RadialLabel {
		return RadialLabel{Text: text, Angle: angle, Align: surface.AlignCenter, Inside: true, Clockwise: clockwise}
	}
	return []RadialLabel{
		lbl("COLLABORATION", 270, true),
		lbl("ACTION", 180, true),
		lbl("ENCOURAGEMENT", 225, true),
		lbl("CHALLENGE", 90, true),
		lbl("DRIVE", 135, true),
		lbl("SUPPORT", 135, false),
		lbl("OBJECTIVITY", 225, false),
		lbl("RELIABILITY", 180, false),
	}
}

// Config неизменяемая конфигурация рендерера.
type Config struct {
	Radius      float64
	BorderWidth float64
	Colors      Colors
	// Active выделенные квадранты; подмножество QuadrantLabels.
	Active       []Label
	RadialLabels []RadialLabel
	// CenterFontRatio делитель ширины для кегля центральных букв.
	CenterFontRatio float64
	// LabelFontSize кегль радиальных подписей; 0: вычисляется из размеров колеса.
	LabelFontSize float64
}

// DefaultConfig колесо радиуса 200 со всеми квадрантами.
func DefaultConfig() Config {
	return Config{
		Radius:          200,
		BorderWidth:     4,
		Colors:          DefaultColors(),
		Active:          append([]Label(nil), QuadrantLabels[:]...),
		RadialLabels:    DefaultRadialLabels(),
		CenterFontRatio: 5.5,
	}
}

// Validate проверяет конфигурацию.
func (c Config) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius %g", ErrInvalidGeometry, c.Radius)
	}
	if c.BorderWidth < 0 {
		return fmt.Errorf("%w: border width %g", ErrInvalidGeometry, c.BorderWidth)
	}
	if c.Radius-5*c.BorderWidth <= 0 {
		return fmt.Errorf("%w: radius %g leaves no room inside border %g", ErrInvalidGeometry, c.Radius, c.BorderWidth)
	}
	seen := make(map[Label]bool, len(c.Active))
	for _, l := range c.Active {
		if _, err := ParseLabel(string(l)); err != nil {
			return err
		}
		if seen[l] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = true
	}
	for l := range c.Colors.Quadrants {
		if _, err := ParseLabel(string(l)); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
	}
	return nil
}

// withDefaults заполняет пустые поля значениями по умолчанию.
func (c Config) withDefaults() Config {
	def := DefaultColors()
	if c.Colors.Quadrants == nil {
		c.Colors.Quadrants = def.Quadrants
	} else {
		q := make(map[Label]color.Color, len(QuadrantLabels))
		for _, l := range QuadrantLabels {
			q[l] = def.Quadrants[l]
			if col, ok := c.Colors.Quadrants[l]; ok && col != nil {
				q[l] = col
			}
		}
		c.Colors.Quadrants = q
	}
	if c.Colors.Base == nil {
		c.Colors.Base = def.Base
	}
	if c.Colors.Text == nil {
		c.Colors.Text = def.Text
	}
	if c.Colors.Divider == nil {
		c.Colors.Divider = def.Divider
	}
	if c.CenterFontRatio <= 0 {
		c.CenterFontRatio = 5.5
	}
	c.Active = append([]Label(nil), c.Active...)
	c.RadialLabels = append([]RadialLabel(nil), c.RadialLabels...)
	return c
}
