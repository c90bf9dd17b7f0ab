// internal/system/state.go
package system

import (
	"go.uber.org/zap"

	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
)

// Outcome — итог сессии
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// StateSystem следит за исходом боя: о победе сообщает планировщик волн,
// итог решается в конце тика.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	outcome         Outcome
	victoryPending  bool // Victory пришла в этом тике, решается в Update
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher, logger *zap.Logger) *StateSystem {
	ss := &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("state"),
	}
	eventDispatcher.Subscribe(event.Victory, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.Victory && s.outcome == OutcomeNone {
		s.victoryPending = true
	}
}

// Update подводит итог тика. Поражение проверяется первым: гибель в том же тике,
// что и последняя волна, перекрывает победу.
func (s *StateSystem) Update() Outcome {
	if s.outcome != OutcomeNone {
		return s.outcome
	}
	playerDead := s.world.Player != nil && !s.world.Player.Alive()
	centralDead := s.world.Central != nil && !s.world.Central.Alive()
	switch {
	case playerDead || centralDead:
		s.outcome = OutcomeDefeat
		s.logger.Info("defeat",
			zap.Bool("player_dead", playerDead),
			zap.Bool("central_dead", centralDead),
			zap.Bool("victory_overridden", s.victoryPending),
		)
		s.eventDispatcher.Dispatch(event.Event{Type: event.Defeat})
	case s.victoryPending:
		s.outcome = OutcomeVictory
		s.logger.Info("all waves cleared")
	}
	s.victoryPending = false
	return s.outcome
}

// Current — текущий исход
func (s *StateSystem) Current() Outcome {
	return s.outcome
}

// Detach отписывает систему от диспетчера, когда сессия закончилась.
func (s *StateSystem) Detach() {
	s.eventDispatcher.Unsubscribe(event.Victory, s)
}
