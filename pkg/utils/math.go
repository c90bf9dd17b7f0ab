// pkg/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction возвращает единичный вектор от (ax, ay) к (bx, by) и расстояние.
// Для совпадающих точек вектор нулевой.
func Direction(ax, ay, bx, by float64) (nx, ny, dist float64) {
	dx, dy := bx-ax, by-ay
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}
