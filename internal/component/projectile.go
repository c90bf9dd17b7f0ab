// internal/component/projectile.go
package component

import "go-shape-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID types.EntityID
	Position

	DX, DY   float64 // Единичный вектор направления
	Speed    float64
	Damage   float64
	Radius   float64
	Friendly bool // Выпущен игроком или башней
	Alive    bool
}
