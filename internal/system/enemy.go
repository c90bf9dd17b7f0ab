// internal/system/enemy.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/pkg/utils"
)

// behavior — особенности варианта врага.
type behavior struct {
	// special продвигает автомат особого поведения на один тик
	special func(e *component.Enemy)
	// mitigate пересчитывает входящий урон; ok=false — урон полностью игнорируется
	mitigate func(e *component.Enemy, amount float64) (float64, bool)
}

var behaviors = map[component.EnemyKind]behavior{
	component.EnemyTriangle: {special: chargeSpecial, mitigate: fullDamage},
	component.EnemySquare:   {special: aimPauseSpecial, mitigate: armorMitigate},
	component.EnemyStar:     {special: dashSpecial, mitigate: invisMitigate},
	component.EnemyBoss:     {special: rageSpecial, mitigate: fullDamage},
}

func behaviorFor(kind component.EnemyKind) behavior {
	if b, ok := behaviors[kind]; ok {
		return b
	}
	return behavior{special: func(*component.Enemy) {}, mitigate: fullDamage}
}

// cycle — общий автомат Base/Special: таймер уменьшается, переход при <= 0.
func cycle(e *component.Enemy, enter, exit func(e *component.Enemy)) {
	if e.Phase == component.PhaseBase {
		e.SpecialTimer--
		if e.SpecialTimer <= 0 {
			e.Phase = component.PhaseSpecial
			e.PhaseTimer = e.Special.Duration
			enter(e)
		}
		return
	}
	e.PhaseTimer--
	if e.PhaseTimer <= 0 {
		e.Phase = component.PhaseBase
		e.SpecialTimer = e.Special.Cooldown
		exit(e)
	}
}

// Треугольник: рывок с удвоенной скоростью.
func chargeSpecial(e *component.Enemy) {
	cycle(e,
		func(e *component.Enemy) { e.Speed *= e.Special.SpeedFactor },
		func(e *component.Enemy) { e.Speed /= e.Special.SpeedFactor },
	)
}

// Квадрат: замирает для прицеливания, затем возвращает базовую скорость.
func aimPauseSpecial(e *component.Enemy) {
	cycle(e,
		func(e *component.Enemy) { e.Speed = e.BaseSpeed * e.Special.SpeedFactor },
		func(e *component.Enemy) { e.Speed = e.BaseSpeed },
	)
}

// Звезда: рывок, после него окно невидимости.
func dashSpecial(e *component.Enemy) {
	if e.InvisTimer > 0 {
		e.InvisTimer--
	}
	cycle(e,
		func(e *component.Enemy) { e.Speed *= e.Special.SpeedFactor },
		func(e *component.Enemy) {
			e.Speed /= e.Special.SpeedFactor
			e.InvisTimer = e.Special.AfterDuration
		},
	)
}

// Босс: ярость ускоряет движение и стрельбу.
func rageSpecial(e *component.Enemy) {
	cycle(e,
		func(e *component.Enemy) {
			e.Speed *= e.Special.SpeedFactor
			cd := int(math.Floor(float64(e.Weapon.Cooldown) * e.Special.ShotCooldownFactor))
			if cd < e.Special.ShotCooldownFloor {
				cd = e.Special.ShotCooldownFloor
			}
			e.Weapon.Cooldown = cd
		},
		func(e *component.Enemy) {
			e.Speed /= e.Special.SpeedFactor
			e.Weapon.Cooldown = int(float64(e.Weapon.Cooldown) / e.Special.ShotCooldownFactor)
		},
	)
}

func fullDamage(_ *component.Enemy, amount float64) (float64, bool) {
	return amount, true
}

func armorMitigate(e *component.Enemy, amount float64) (float64, bool) {
	return math.Max(0, amount-e.Armor), true
}

func invisMitigate(e *component.Enemy, amount float64) (float64, bool) {
	if e.Invisible() {
		return 0, false
	}
	return amount, true
}

// EnemySystem — поведение врагов: особые фазы, движение, атаки.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher, logger *zap.Logger) *EnemySystem {
	return &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("enemy"),
	}
}

// Update продвигает всех активных врагов на один тик в порядке хранения.
func (s *EnemySystem) Update() {
	for _, e := range s.world.Enemies {
		s.advance(e)
	}
}

func (s *EnemySystem) advance(e *component.Enemy) {
	if !e.Alive() {
		return
	}

	behaviorFor(e.Kind).special(e)

	if t, ok := nearestTarget(s.world, e.X, e.Y, math.Inf(1)); ok {
		nx, ny, dist := utils.Direction(e.X, e.Y, t.x, t.y)
		if dist > 0 {
			e.X += nx * e.Speed
			e.Y += ny * e.Speed
		}
	}

	s.separate(e)

	if e.Ranged {
		s.rangedAttack(e)
	} else {
		s.meleeAttack(e)
	}

	if e.HitTimer > 0 {
		e.HitTimer--
	}
}

// separate расталкивает пересекающихся живых врагов.
func (s *EnemySystem) separate(e *component.Enemy) {
	for _, other := range s.world.Enemies {
		if other == e || !other.Alive() {
			continue
		}
		dx, dy := e.X-other.X, e.Y-other.Y
		dist := math.Hypot(dx, dy)
		minDist := (e.Size + other.Size) / 2
		if dist < minDist && dist > 0 {
			push := (minDist - dist) * config.SeparationForce
			e.X += dx / dist * push
			e.Y += dy / dist * push
		}
	}
}

func (s *EnemySystem) rangedAttack(e *component.Enemy) {
	if !e.Weapon.Ready() {
		e.Weapon.Tick()
		return
	}
	t, ok := nearestTarget(s.world, e.X, e.Y, e.Weapon.Range)
	if !ok {
		return
	}
	nx, ny, dist := utils.Direction(e.X, e.Y, t.x, t.y)
	if dist > 0 {
		s.world.AddProjectile(&component.Projectile{
			ID:       s.world.NewEntity(),
			Position: component.Position{X: e.X, Y: e.Y},
			DX:       nx,
			DY:       ny,
			Speed:    e.Weapon.Speed,
			Damage:   e.Weapon.Damage,
			Radius:   config.ProjectileRadius,
			Alive:    true,
		})
		s.eventDispatcher.Cue(event.CueShot)
	}
	e.Weapon.Reset()
}

func (s *EnemySystem) meleeAttack(e *component.Enemy) {
	if e.MeleeTimer > 0 {
		e.MeleeTimer--
		return
	}
	t, ok := nearestTarget(s.world, e.X, e.Y, e.MeleeRange)
	if !ok {
		return
	}
	t.damage(e.MeleeDamage, s.eventDispatcher)
	e.MeleeTimer = e.MeleeCooldown
}

// nearestTarget ищет ближайшую живую цель строго ближе maxRange.
// Порядок обхода: игрок, построенные башни, центральная башня; при равенстве
// остаётся кандидат, проверенный раньше.
func nearestTarget(w *entity.World, x, y, maxRange float64) (target, bool) {
	best := target{dist: math.Inf(1)}
	found := false
	consider := func(c target) {
		c.dist = utils.Distance(x, y, c.x, c.y)
		if c.dist < maxRange && c.dist < best.dist {
			best = c
			found = true
		}
	}
	if p := w.Player; p != nil && p.Alive() {
		consider(target{player: p, x: p.X, y: p.Y})
	}
	for _, t := range w.Towers {
		if t.Alive() {
			consider(target{tower: t, x: t.X, y: t.Y})
		}
	}
	if c := w.Central; c != nil && c.Alive() {
		consider(target{tower: c, x: c.X, y: c.Y})
	}
	return best, found
}
