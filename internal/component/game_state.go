package component

// GamePhase — высокоуровневое состояние игры
type GamePhase int

const (
	PhaseMainMenu GamePhase = iota
	PhaseBriefing
	PhaseCombat
	PhaseVictory
	PhaseDefeat
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhaseBriefing:
		return "briefing"
	case PhaseCombat:
		return "combat"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
