package component

import "go-shape-defense/internal/types"

// EnemyKind — вариант врага
type EnemyKind string

const (
	EnemyTriangle EnemyKind = "triangle"
	EnemySquare   EnemyKind = "square"
	EnemyStar     EnemyKind = "star"
	EnemyBoss     EnemyKind = "boss"
)

// EnemyPhase — состояние автомата особого поведения.
// Base: Idle / Active / Normal; Special: Charging / Paused / Dashing / Rage.
type EnemyPhase int

const (
	PhaseBase EnemyPhase = iota
	PhaseSpecial
)

// SpecialParams — параметры особого поведения, копируются из таблицы врагов при создании.
type SpecialParams struct {
	Cooldown           int     // Тиков в базовой фазе до особого действия
	Duration           int     // Длительность особой фазы
	SpeedFactor        float64 // Множитель скорости в особой фазе (0 — остановка)
	AfterDuration      int     // Окно невидимости после рывка (звезда)
	ShotCooldownFactor float64 // Множитель перезарядки в ярости (босс)
	ShotCooldownFloor  int
}

// Enemy представляет вражескую сущность. Одна запись на все варианты,
// поведение выбирается по Kind.
type Enemy struct {
	ID   types.EntityID
	Kind EnemyKind
	Tier int
	Position
	Health

	Speed      float64
	BaseSpeed  float64
	Size       float64
	KillReward int
	Armor      float64
	Ranged     bool

	Weapon Weapon // Дальняя атака

	MeleeDamage   float64
	MeleeRange    float64
	MeleeCooldown int
	MeleeTimer    int

	HitTimer int // Вспышка попадания

	// Состояние автомата
	Phase        EnemyPhase
	SpecialTimer int // Отсчёт до следующего особого действия
	PhaseTimer   int // Остаток текущей особой фазы
	InvisTimer   int // Неуязвимость звезды
	Special      SpecialParams
}

// Charging — треугольник в рывке
func (e *Enemy) Charging() bool { return e.Kind == EnemyTriangle && e.Phase == PhaseSpecial }

// Aiming — квадрат замер для прицеливания
func (e *Enemy) Aiming() bool { return e.Kind == EnemySquare && e.Phase == PhaseSpecial }

// Dashing — звезда в рывке
func (e *Enemy) Dashing() bool { return e.Kind == EnemyStar && e.Phase == PhaseSpecial }

// Invisible — звезда неуязвима
func (e *Enemy) Invisible() bool { return e.InvisTimer > 0 }

// Raging — босс в ярости
func (e *Enemy) Raging() bool { return e.Kind == EnemyBoss && e.Phase == PhaseSpecial }

// Hit — идёт ли вспышка попадания
func (e *Enemy) Hit() bool { return e.HitTimer > 0 }
