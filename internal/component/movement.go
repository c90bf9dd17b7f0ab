// component/movement.go
package component

// Position — компонент позиции (центр сущности в координатах арены)
type Position struct {
	X, Y float64
}

// Bounds — прямоугольник арены
type Bounds struct {
	Width, Height float64
}

// Contains проверяет, находится ли точка внутри арены (границы включительно).
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Center возвращает центр арены.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}
