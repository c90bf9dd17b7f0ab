// internal/component/player.go
package component

import "go-shape-defense/internal/types"

// Player хранит состояние аватара игрока: позицию, здоровье,
// баланс валюты и параметры стрельбы.
type Player struct {
	ID types.EntityID
	Position
	Health

	Radius float64
	Speed  float64
	Money  float64 // Баланс дробный: пассивный доход начисляется каждый тик

	BulletDamage float64
	BulletSpeed  float64
	FireCooldown int // Тиков между выстрелами
	FireTimer    int // Отсчитывает до 0

	IFrames    int // Оставшиеся кадры неуязвимости
	IFramesMax int
}

// Invincible — действуют ли кадры неуязвимости
func (p *Player) Invincible() bool {
	return p.IFrames > 0
}
