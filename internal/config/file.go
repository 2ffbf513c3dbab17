// internal/config/file.go
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"quadrant-wheel/pkg/wheel"
)

// ColorsFile цвета в TOML-файле. Пустое значение: цвет по умолчанию.
type ColorsFile struct {
	D       string `toml:"D"`
	I       string `toml:"i"`
	S       string `toml:"S"`
	C       string `toml:"C"`
	Base    string `toml:"base"`
	Border  string `toml:"border"`
	Text    string `toml:"text"`
	Divider string `toml:"divider"`
}

// File содержимое конфигурационного файла.
type File struct {
	Radius        float64 `toml:"radius"`
	BorderWidth   float64 `toml:"border_width"`
	LabelFontSize float64 `toml:"label_font_size"`
	// Quadrants массив меток или строка через запятую ("D,i,S,C")
	Quadrants any        `toml:"quadrants"`
	Quadratic bool       `toml:"quadratic"`
	Edit      bool       `toml:"edit"`
	Colors    ColorsFile `toml:"colors"`
}

// Default конфигурация без файла.
func Default() File {
	return File{
		Radius:      DefaultRadius,
		BorderWidth: DefaultBorderW,
		Quadrants:   "D,i,S,C",
		Edit:        true,
	}
}

// Load читает TOML-файл поверх значений по умолчанию.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Decode разбирает TOML из r поверх значений по умолчанию.
// Неизвестные ключи считаются ошибкой.
func Decode(r io.Reader) (File, error) {
	f := Default()
	// в интерфейсное поле декодер пишет свой тип, поэтому значение по умолчанию ставим после
	f.Quadrants = nil
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, err
	}
	if f.Quadrants == nil {
		f.Quadrants = Default().Quadrants
	}
	if _, err := f.WheelConfig(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Labels активные метки квадрантов.
func (f File) Labels() ([]wheel.Label, error) {
	var raw []string
	switch q := f.Quadrants.(type) {
	case nil:
		return nil, nil
	case string:
		for _, part := range strings.Split(q, ",") {
			if part = strings.TrimSpace(part); part != "" {
				raw = append(raw, part)
			}
		}
	case []any:
		for _, v := range q {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("quadrants: %w: %v", wheel.ErrUnknownLabel, v)
			}
			raw = append(raw, strings.TrimSpace(s))
		}
	case []string:
		raw = q
	default:
		return nil, fmt.Errorf("quadrants: unsupported value %T", f.Quadrants)
	}

	labels := make([]wheel.Label, 0, len(raw))
	for _, s := range raw {
		l, err := wheel.ParseLabel(s)
		if err != nil {
			return nil, fmt.Errorf("quadrants: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// WheelConfig собирает wheel.Config. Ошибки цветов и меток возвращаются здесь.
func (f File) WheelConfig() (wheel.Config, error) {
	cfg := wheel.DefaultConfig()
	cfg.Radius = f.Radius
	cfg.BorderWidth = f.BorderWidth
	cfg.LabelFontSize = f.LabelFontSize

	labels, err := f.Labels()
	if err != nil {
		return wheel.Config{}, err
	}
	cfg.Active = labels

	quadrants := map[wheel.Label]string{
		wheel.LabelD: f.Colors.D,
		wheel.LabelI: f.Colors.I,
		wheel.LabelS: f.Colors.S,
		wheel.LabelC: f.Colors.C,
	}
	for l, s := range quadrants {
		c, err := ParseColor(s)
		if err != nil {
			return wheel.Config{}, fmt.Errorf("colors.%s: %w", l, err)
		}
		if c != nil {
			cfg.Colors.Quadrants[l] = c
		}
	}

	for _, it := range []struct {
		name string
		val  string
		dst  *color.Color
	}{
		{"base", f.Colors.Base, &cfg.Colors.Base},
		{"text", f.Colors.Text, &cfg.Colors.Text},
		{"divider", f.Colors.Divider, &cfg.Colors.Divider},
	} {
		c, err := ParseColor(it.val)
		if err != nil {
			return wheel.Config{}, fmt.Errorf("colors.%s: %w", it.name, err)
		}
		if c != nil {
			*it.dst = c
		}
	}

	border, err := ParseBorder(f.Colors.Border)
	if err != nil {
		return wheel.Config{}, fmt.Errorf("colors.border: %w", err)
	}
	cfg.Colors.Border = border

	if err := cfg.Validate(); err != nil {
		return wheel.Config{}, err
	}
	return cfg, nil
}
