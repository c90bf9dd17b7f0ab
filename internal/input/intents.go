// internal/input/intents.go
package input

import "go-shape-defense/internal/component"

// Intents — всё, что игрок хочет сделать в текущем тике.
// Фронтенд заполняет структуру из своего устройства ввода, ядро только читает её.
type Intents struct {
	MoveX, MoveY int // -1, 0, 1 по каждой оси
	Fire         bool
	AimX, AimY   float64 // Точка прицеливания в координатах арены

	BuildTower bool
	Purchases  []component.UpgradeKind

	ToggleHelp     bool
	ToggleUpgrades bool
	CloseOverlay   bool

	Advance         bool    // Следующий слайд
	Start           bool    // Начать игру из меню
	Difficulty      float64 // Сложность для Start; 0 — значение ползунка
	DifficultyDelta int     // Шаги ползунка сложности в меню
	Restart         bool
	Quit            bool
}

// Empty — нет ни одного намерения
func (in Intents) Empty() bool {
	return in.MoveX == 0 && in.MoveY == 0 && !in.Fire && !in.BuildTower &&
		len(in.Purchases) == 0 && !in.ToggleHelp && !in.ToggleUpgrades &&
		!in.CloseOverlay && !in.Advance && !in.Start && in.DifficultyDelta == 0 &&
		!in.Restart && !in.Quit
}
