// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarCompass возвращает смещение точки на расстоянии r под углом "по компасу"
// (0 вверх, рост по часовой стрелке, ось y вниз)
func PolarCompass(r, rad float64) (dx, dy float64) {
	return r * math.Sin(rad), -r * math.Cos(rad)
}

// NormalizeAngle нормализует угол в диапазон [-π, π].
// Для NaN и бесконечностей возвращает 0.
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	return math.Remainder(angle, 2*math.Pi)
}

// Turns переводит угол в число полуоборотов (единицы π)
func Turns(rad float64) float64 {
	return rad / math.Pi
}
