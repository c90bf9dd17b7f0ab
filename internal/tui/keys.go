// internal/tui/keys.go
package tui

import (
	"github.com/gdamore/tcell/v2"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/input"
)

// Терминал не сообщает об отпускании клавиш, поэтому нажатие движения
// держится moveHold тиков. Автоповтор клавиатуры продлевает его.
const moveHold = 8

// KeyMapper переводит события терминала в Intents.
type KeyMapper struct {
	shortcuts []component.UpgradeKind
	project   func(col, row int) (float64, float64)

	holdX, holdY int // Оставшиеся тики удержания
	dirX, dirY   int
	firing       bool
	aimX, aimY   float64

	pending input.Intents // Одноразовые намерения до следующего Next
}

// NewKeyMapper: project переводит клетку экрана в координаты арены.
func NewKeyMapper(catalog *defs.Catalog, project func(col, row int) (float64, float64)) *KeyMapper {
	m := &KeyMapper{project: project}
	for i, u := range catalog.Upgrades {
		if i >= 9 {
			break
		}
		m.shortcuts = append(m.shortcuts, u.Kind)
	}
	return m
}

// Handle разбирает событие tcell.
func (m *KeyMapper) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		m.HandleMouse(col, row, ev.Buttons()&tcell.Button1 != 0)
	}
}

func (m *KeyMapper) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyUp:
		m.move(0, -1)
	case tcell.KeyDown:
		m.move(0, 1)
	case tcell.KeyLeft:
		m.move(-1, 0)
		m.pending.DifficultyDelta--
	case tcell.KeyRight:
		m.move(1, 0)
		m.pending.DifficultyDelta++
	case tcell.KeyEnter:
		m.pending.Start = true
		m.pending.Advance = true
	case tcell.KeyEscape:
		m.pending.CloseOverlay = true
	case tcell.KeyCtrlC:
		m.pending.Quit = true
	case tcell.KeyRune:
		m.handleRune(r)
	}
}

func (m *KeyMapper) handleRune(r rune) {
	switch r {
	case 'w', 'W':
		m.move(0, -1)
	case 's', 'S':
		m.move(0, 1)
	case 'a', 'A':
		m.move(-1, 0)
	case 'd', 'D':
		m.move(1, 0)
	case 'f', 'F':
		m.firing = !m.firing
	case 't', 'T':
		m.pending.BuildTower = true
	case 'u', 'U':
		m.pending.ToggleUpgrades = true
	case 'h', 'H':
		m.pending.ToggleHelp = true
	case 'r', 'R':
		m.pending.Restart = true
	case 'q', 'Q':
		m.pending.Quit = true
	case ' ':
		m.pending.Advance = true
		m.pending.Start = true
	default:
		if r >= '1' && r <= '9' {
			if i := int(r - '1'); i < len(m.shortcuts) {
				m.pending.Purchases = append(m.pending.Purchases, m.shortcuts[i])
			}
		}
	}
}

func (m *KeyMapper) move(dx, dy int) {
	if dx != 0 {
		m.dirX, m.holdX = dx, moveHold
	}
	if dy != 0 {
		m.dirY, m.holdY = dy, moveHold
	}
}

// HandleMouse наводит прицел; зажатая левая кнопка стреляет.
func (m *KeyMapper) HandleMouse(col, row int, pressed bool) {
	m.aimX, m.aimY = m.project(col, row)
	m.firing = pressed
}

// Firing — включена ли стрельба
func (m *KeyMapper) Firing() bool { return m.firing }

// Next возвращает намерения текущего тика и сбрасывает одноразовые.
func (m *KeyMapper) Next() input.Intents {
	in := m.pending
	m.pending = input.Intents{}

	if m.holdX > 0 {
		in.MoveX = m.dirX
		m.holdX--
	}
	if m.holdY > 0 {
		in.MoveY = m.dirY
		m.holdY--
	}
	in.Fire = m.firing
	in.AimX, in.AimY = m.aimX, m.aimY
	return in
}
