// internal/defs/waves.go
package defs

import "go-shape-defense/internal/component"

// WaveStep — группа одинаковых врагов внутри волны.
type WaveStep struct {
	Kind  component.EnemyKind `yaml:"kind"`
	Tier  int                 `yaml:"tier"`
	Count int                 `yaml:"count"`
}

// WaveDefinition описывает одну волну: шаги идут строго по порядку.
type WaveDefinition struct {
	Steps         []WaveStep `yaml:"steps"`
	SpawnInterval int        `yaml:"spawn_interval"` // Тиков между появлениями
	Reward        int        `yaml:"reward"`
}

// WaveTable — последовательность волн и интерлюдии между ними.
type WaveTable struct {
	Waves []WaveDefinition `yaml:"waves"`
	// Интерлюдия показывается, когда индекс волны становится равен ключу
	Interludes map[int]string `yaml:"interludes"`
}

// Len — число волн
func (t *WaveTable) Len() int {
	return len(t.Waves)
}

// Wave возвращает волну по индексу; ok=false за пределами таблицы.
func (t *WaveTable) Wave(index int) (WaveDefinition, bool) {
	if index < 0 || index >= len(t.Waves) {
		return WaveDefinition{}, false
	}
	return t.Waves[index], true
}

// Interlude возвращает набор слайдов, привязанный к индексу волны.
func (t *WaveTable) Interlude(index int) (string, bool) {
	set, ok := t.Interludes[index]
	return set, ok
}
