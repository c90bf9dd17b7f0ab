// internal/state/state.go
package state

import (
	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in input.Intents)
	Draw(sink render.Sink)
	Exit()
	Phase() component.GamePhase
}

// slideShower — состояние, показывающее набор слайдов
type slideShower interface {
	SlideSet() string
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current         State
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	quit            bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(eventDispatcher *event.Dispatcher, logger *zap.Logger) *StateMachine {
	return &StateMachine{
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("state"),
	}
}

// SetState устанавливает новое состояние и сообщает о смене фазы.
func (sm *StateMachine) SetState(newState State) {
	from := component.PhaseMainMenu
	if sm.current != nil {
		from = sm.current.Phase()
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	sm.current.Enter()

	data := event.PhaseData{From: from, To: newState.Phase()}
	if s, ok := newState.(slideShower); ok {
		data.SlideSet = s.SlideSet()
	}
	sm.logger.Debug("phase changed",
		zap.Stringer("from", data.From),
		zap.Stringer("to", data.To),
		zap.String("slides", data.SlideSet),
	)
	sm.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: data})
}

// Current — текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Phase — фаза текущего состояния
func (sm *StateMachine) Phase() component.GamePhase {
	if sm.current == nil {
		return component.PhaseMainMenu
	}
	return sm.current.Phase()
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(in input.Intents) {
	if in.Quit {
		sm.Quit()
		return
	}
	if sm.current != nil {
		sm.current.Update(in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(sink render.Sink) {
	if sm.current != nil {
		sm.current.Draw(sink)
	}
}

// Quit просит фронтенд завершить программу.
func (sm *StateMachine) Quit() {
	if sm.quit {
		return
	}
	sm.quit = true
	sm.logger.Info("quit requested", zap.Stringer("phase", sm.Phase()))
}

// Done — пора ли завершаться
func (sm *StateMachine) Done() bool {
	return sm.quit
}
