// internal/event/types.go
package event

import "go-shape-defense/internal/component"

const (
	WaveStarted        EventType = "WaveStarted"        // Волна началась
	WaveEnded          EventType = "WaveEnded"          // Волна закончилась (естественно или по тайм-ауту)
	EnemyKilled        EventType = "EnemyKilled"        // Враг уничтожен попаданием
	TowerPlaced        EventType = "TowerPlaced"        // Башня построена
	TowerDestroyed     EventType = "TowerDestroyed"     // Построенная башня разрушена
	InterludeTriggered EventType = "InterludeTriggered" // Пора показать промежуточные слайды
	Victory            EventType = "Victory"
	Defeat             EventType = "Defeat"
	PhaseChanged       EventType = "PhaseChanged" // Смена высокоуровневого состояния
	SoundCue           EventType = "SoundCue"
)

// Cue — имя звукового сигнала
type Cue string

const (
	CueShot        Cue = "shot"
	CueTowerHit    Cue = "tower_hit"
	CueEnemyKilled Cue = "enemy_killed"
	CueBuild       Cue = "build"
	CueDenied      Cue = "denied"
	CuePurchase    Cue = "purchase"
)

// WaveData — данные WaveStarted / WaveEnded
type WaveData struct {
	Index    int
	Reward   int
	TimedOut bool
}

// KillData — данные EnemyKilled
type KillData struct {
	Kind   component.EnemyKind
	Tier   int
	Reward int
}

// InterludeData — данные InterludeTriggered
type InterludeData struct {
	AfterWave int    // Индекс волны, после которой показываются слайды
	SlideSet  string // Имя набора слайдов
}

// PhaseData — данные PhaseChanged
type PhaseData struct {
	From, To component.GamePhase
	SlideSet string // Пусто, если слайды не нужны
}
