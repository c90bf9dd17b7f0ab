// internal/render/requests.go
package render

import (
	"image/color"

	"go-shape-defense/internal/types"
)

// Shape — как рисовать сущность
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeStar
	ShapeBoss
)

// Sprite — запрос на отрисовку игрока, башни или врага.
type Sprite struct {
	ID    types.EntityID
	Shape Shape
	X, Y  float64
	Size  float64 // Диаметр
	Color color.RGBA

	HealthRatio float64
	ShowHealth  bool
	Range       float64 // Радиус стрельбы башни; 0 — не рисовать

	// Флаги состояния для отрисовки
	Hit       bool
	Invisible bool
	Charging  bool
	Aiming    bool
	Dashing   bool
	Raging    bool
	Firing    bool
	Damaged   bool
	Flicker   bool
}

// Shot — снаряд
type Shot struct {
	X, Y     float64
	Radius   float64
	Friendly bool
}

// HUD — верхняя строка боя
type HUD struct {
	SignalStrength float64
	Health         float64
	MaxHealth      float64
	CentralHealth  float64
	CentralMax     float64
	Money          int
	Wave, Waves    int
	Controls       string
}

// Slide — страница повествования
type Slide struct {
	Set          string
	Index, Count int
	Title, Text  string
	Art          string
}

// Menu — главное меню
type Menu struct {
	Title      string
	Difficulty float64
	Hint       string
}

// UpgradeItem — строка меню улучшений
type UpgradeItem struct {
	Category   string
	Label      string
	Level      int
	Cost       int
	Increment  string
	Shortcut   int
	Affordable bool
}

// UpgradeMenu — оверлей улучшений
type UpgradeMenu struct {
	Items       []UpgradeItem
	Money       int
	Message     string
	MessageGood bool
}

// Help — оверлей с подсказками
type Help struct {
	Lines []string
}

// Sink принимает запросы на отрисовку одного кадра.
type Sink interface {
	Clear(background color.RGBA)
	DrawSprite(s Sprite)
	DrawShot(s Shot)
	DrawHUD(h HUD)
	DrawSlide(s Slide)
	DrawMenu(m Menu)
	DrawUpgradeMenu(m UpgradeMenu)
	DrawHelp(h Help)
}
