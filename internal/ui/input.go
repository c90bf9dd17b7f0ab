// internal/ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/input"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// KeyReader собирает Intents из клавиатуры и мыши ebiten.
type KeyReader struct {
	shortcuts []component.UpgradeKind // Клавиша N покупает shortcuts[N-1]
}

func NewKeyReader(catalog *defs.Catalog) *KeyReader {
	r := &KeyReader{}
	for i, u := range catalog.Upgrades {
		if i >= len(digitKeys) {
			break
		}
		r.shortcuts = append(r.shortcuts, u.Kind)
	}
	return r
}

// Read вызывается один раз за тик.
func (r *KeyReader) Read() input.Intents {
	var in input.Intents

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}

	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	in.AimX, in.AimY = float64(x), float64(y)

	in.BuildTower = inpututil.IsKeyJustPressed(ebiten.KeyT)
	in.ToggleUpgrades = inpututil.IsKeyJustPressed(ebiten.KeyU)
	in.ToggleHelp = inpututil.IsKeyJustPressed(ebiten.KeyH)
	in.CloseOverlay = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for i, kind := range r.shortcuts {
		if inpututil.IsKeyJustPressed(digitKeys[i]) {
			in.Purchases = append(in.Purchases, kind)
		}
	}

	in.Advance = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Start = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		in.DifficultyDelta--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		in.DifficultyDelta++
	}
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return in
}
