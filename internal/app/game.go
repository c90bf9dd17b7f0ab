// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
	"go-shape-defense/internal/system"
	"go-shape-defense/internal/utils"
)

// Game — одна боевая сессия: мир и системы, которые его обновляют.
type Game struct {
	ID      uuid.UUID
	Config  *config.Config
	Content *defs.Content
	World   *entity.World

	PlayerSystem     *system.PlayerSystem
	TowerSystem      *system.TowerSystem
	UpgradeSystem    *system.UpgradeSystem
	WaveSystem       *system.WaveSystem
	EnemySystem      *system.EnemySystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	listener  *GameEventListener
	interlude string
	logger    *zap.Logger
}

// NewGame создаёт сессию. Диспетчер общий для всех сессий: на него подписаны
// звук и машина состояний.
func NewGame(cfg *config.Config, content *defs.Content, difficulty float64,
	eventDispatcher *event.Dispatcher, logger *zap.Logger) *Game {
	if content == nil {
		panic("app: content cannot be nil")
	}

	id := uuid.New()
	logger = logger.With(zap.String("session", id.String()))
	arena := component.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	world := entity.NewWorld(arena, difficulty)
	rng := utils.NewPRNGService(cfg.Arena.Seed)

	g := &Game{
		ID:              id,
		Config:          cfg,
		Content:         content,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		logger:          logger,
	}
	g.createPlayer()
	g.createCentralTower()
	world.Upgrades.PassiveIncome = cfg.Economy.PassiveIncome
	world.Upgrades.PlayerRegen = cfg.Economy.PlayerRegen
	world.Upgrades.CentralRegen = cfg.Economy.CentralRegen

	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)
	g.TowerSystem = system.NewTowerSystem(world, eventDispatcher)
	g.UpgradeSystem = system.NewUpgradeSystem(world, content.Upgrades, eventDispatcher, logger)
	g.WaveSystem = system.NewWaveSystem(world, content, cfg.Waves, rng, eventDispatcher, logger)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher, logger)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher, logger)
	g.StateSystem = system.NewStateSystem(world, eventDispatcher, logger)
	g.RenderSystem = system.NewRenderSystem(world, content.Waves.Len())

	g.listener = &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.InterludeTriggered, g.listener)

	logger.Info("session started",
		zap.Float64("difficulty", difficulty),
		zap.Int64("seed", rng.Seed()),
		zap.Int("waves", content.Waves.Len()),
	)
	return g
}

func (g *Game) createPlayer() {
	pc := g.Config.Player
	cx, cy := g.World.Arena.Center()
	g.World.Player = &component.Player{
		ID:           g.World.NewEntity(),
		Position:     component.Position{X: cx, Y: cy + pc.OffsetY},
		Health:       component.NewHealth(pc.MaxHealth),
		Radius:       pc.Radius,
		Speed:        pc.Speed,
		Money:        pc.StartMoney,
		BulletDamage: pc.BulletDamage,
		BulletSpeed:  pc.BulletSpeed,
		FireCooldown: pc.FireCooldown,
		IFramesMax:   pc.IFrames,
	}
}

func (g *Game) createCentralTower() {
	tc := g.Config.Central
	cx, cy := g.World.Arena.Center()
	g.World.Central = newTower(g.World.NewEntity(), component.TowerCentral, cx, cy, tc)
}

// Tick — один шаг симуляции. Порядок фиксирован: игрок, башни, пассивы,
// волны, враги, снаряды, попадания, очистка, проверка поражения.
func (g *Game) Tick(in input.Intents) system.Outcome {
	if out := g.StateSystem.Current(); out != system.OutcomeNone {
		return out
	}
	g.World.Tick++
	g.PlayerSystem.Update(in)
	g.TowerSystem.Update()
	g.UpgradeSystem.Passives()
	g.WaveSystem.Update()
	g.EnemySystem.Update()
	g.ProjectileSystem.Update()
	g.CombatSystem.Update()
	g.CombatSystem.Cleanup()
	return g.StateSystem.Update()
}

// Purchase покупает улучшение для игрока.
func (g *Game) Purchase(kind component.UpgradeKind) error {
	err := g.UpgradeSystem.Purchase(kind)
	if err != nil {
		g.logger.Debug("purchase rejected", zap.String("upgrade", string(kind)), zap.Error(err))
	}
	return err
}

// UpgradeEntries — строки меню улучшений
func (g *Game) UpgradeEntries() []system.UpgradeEntry {
	return g.UpgradeSystem.Entries()
}

// Money — текущий баланс игрока
func (g *Game) Money() float64 {
	return g.World.Player.Money
}

// Outcome — исход сессии
func (g *Game) Outcome() system.Outcome {
	return g.StateSystem.Current()
}

// TakeInterlude возвращает набор слайдов интерлюдии, если он был запрошен, и сбрасывает запрос.
func (g *Game) TakeInterlude() (string, bool) {
	set := g.interlude
	g.interlude = ""
	return set, set != ""
}

// Draw рисует бой в sink.
func (g *Game) Draw(sink render.Sink) {
	g.RenderSystem.Draw(sink)
}

// Close отписывает сессию от общего диспетчера.
func (g *Game) Close() {
	g.EventDispatcher.Unsubscribe(event.InterludeTriggered, g.listener)
	g.StateSystem.Detach()
	g.logger.Info("session closed",
		zap.String("outcome", g.StateSystem.Current().String()),
		zap.Int("wave", g.World.Wave.Index),
		zap.Int("ticks", g.World.Tick),
	)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.InterludeTriggered:
		if data, ok := e.Data.(event.InterludeData); ok {
			l.game.interlude = data.SlideSet
		}
	}
}
