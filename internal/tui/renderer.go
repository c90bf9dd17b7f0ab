// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/render"
	pkgrender "go-shape-defense/pkg/render"
)

// Renderer рисует кадр в терминал. Строка 0 — HUD, арена занимает остальное.
type Renderer struct {
	screen tcell.Screen
	arena  component.Bounds
	bg     tcell.Color
}

var _ render.Sink = (*Renderer)(nil)

func NewRenderer(screen tcell.Screen, arena component.Bounds) *Renderer {
	return &Renderer{screen: screen, arena: arena, bg: tcell.ColorDefault}
}

// Cell переводит координаты арены в клетку терминала.
func (r *Renderer) Cell(x, y float64) (int, int) {
	w, h := r.screen.Size()
	return toCell(r.arena, w, h, x, y)
}

// Project — обратное преобразование клетки в точку арены (центр клетки).
func (r *Renderer) Project(col, row int) (float64, float64) {
	w, h := r.screen.Size()
	return fromCell(r.arena, w, h, col, row)
}

func toCell(arena component.Bounds, w, h int, x, y float64) (int, int) {
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return 0, 0
	}
	col := int(x / arena.Width * float64(w))
	row := int(y/arena.Height*float64(rows)) + 1
	if col >= w {
		col = w - 1
	}
	if row > rows {
		row = rows
	}
	return col, row
}

func fromCell(arena component.Bounds, w, h, col, row int) (float64, float64) {
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) / float64(w) * arena.Width
	y := (float64(row-1) + 0.5) / float64(rows) * arena.Height
	return x, y
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) style(fg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(r.bg)
}

func (r *Renderer) text(col, row int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(col+i, row, ch, nil, st)
	}
}

func (r *Renderer) Clear(background color.RGBA) {
	r.bg = rgb(background)
	r.screen.SetStyle(tcell.StyleDefault.Background(r.bg))
	r.screen.Clear()
}

var shapeRunes = map[render.Shape]rune{
	render.ShapeTriangle: '^',
	render.ShapeSquare:   '#',
	render.ShapeStar:     '*',
	render.ShapeBoss:     'B',
}

func spriteRune(s render.Sprite) rune {
	if s.Shape == render.ShapeCircle {
		if s.Range > 0 {
			return 'T'
		}
		return '@'
	}
	return shapeRunes[s.Shape]
}

func (r *Renderer) DrawSprite(s render.Sprite) {
	clr := s.Color
	switch {
	case s.Flicker:
		clr = config.PlayerFlickerColor
	case s.Charging, s.Raging:
		clr = pkgrender.Lerp(clr, config.TowerDamagedColor, 0.5)
	}
	if s.Invisible {
		clr = pkgrender.DarkenColor(clr)
	}
	col, row := r.Cell(s.X, s.Y)
	st := r.style(clr)
	if s.Aiming || s.Dashing {
		st = st.Bold(true)
	}
	r.screen.SetContent(col, row, spriteRune(s), nil, st)
}

func (r *Renderer) DrawShot(s render.Shot) {
	clr, ch := config.HostileShotColor, 'o'
	if s.Friendly {
		clr, ch = config.FriendlyShotColor, '.'
	}
	col, row := r.Cell(s.X, s.Y)
	r.screen.SetContent(col, row, ch, nil, r.style(clr))
}

func (r *Renderer) DrawHUD(h render.HUD) {
	line := fmt.Sprintf(" Wave %d/%d  Signal %3.0f%%  HP %.0f/%.0f  Core %.0f/%.0f  $%d   F: fire  WASD: move  T: tower  U: upgrades  H: help",
		h.Wave, h.Waves, h.SignalStrength*100, h.Health, h.MaxHealth, h.CentralHealth, h.CentralMax, h.Money)
	r.text(0, 0, line, r.style(config.TextLightColor).Reverse(true))
}

// box рисует рамку по центру и возвращает начало текста внутри.
func (r *Renderer) box(width, lines int) (int, int) {
	w, h := r.screen.Size()
	bw, bh := width+4, lines+2
	x0, y0 := (w-bw)/2, (h-bh)/2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 1 {
		y0 = 1
	}
	st := r.style(config.TextLightColor).Background(rgb(config.MenuBackground))
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+bh-1) && (x == x0 || x == x0+bw-1):
				ch = '+'
			case y == y0 || y == y0+bh-1:
				ch = '-'
			case x == x0 || x == x0+bw-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
	return x0 + 2, y0 + 1
}

func (r *Renderer) lines(x, y int, lines []string, clr color.RGBA) {
	st := r.style(clr).Background(rgb(config.MenuBackground))
	for i, l := range lines {
		r.text(x, y+i, l, st)
	}
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w
}

func (r *Renderer) DrawSlide(s render.Slide) {
	body := []string{s.Title, ""}
	if s.Art != "" {
		body = append(body, strings.Split(s.Art, "\n")...)
		body = append(body, "")
	}
	body = append(body, strings.Split(s.Text, "\n")...)
	body = append(body, "", fmt.Sprintf("[%d/%d]  Space: continue", s.Index+1, s.Count))
	x, y := r.box(widest(body), len(body))
	r.lines(x, y, body[:1], config.TitleColor)
	r.lines(x, y+1, body[1:], config.TextLightColor)
}

func (r *Renderer) DrawMenu(m render.Menu) {
	body := []string{
		m.Title,
		"",
		fmt.Sprintf("Difficulty: < %.2f >", m.Difficulty),
		"",
		"Left/Right: difficulty   Enter: start   q: quit",
	}
	x, y := r.box(widest(body), len(body))
	r.lines(x, y, body[:1], config.TitleColor)
	r.lines(x, y+1, body[1:], config.TextLightColor)
}

func (r *Renderer) DrawUpgradeMenu(m render.UpgradeMenu) {
	body := []string{fmt.Sprintf("UPGRADES   $%d", m.Money), ""}
	affordable := make([]bool, 0, len(m.Items))
	category := ""
	for _, it := range m.Items {
		if it.Category != category {
			category = it.Category
			body = append(body, strings.ToUpper(category))
			affordable = append(affordable, true)
		}
		body = append(body, fmt.Sprintf(" %d. %-22s Lv %-3d %-12s $%d", it.Shortcut, it.Label, it.Level, it.Increment, it.Cost))
		affordable = append(affordable, it.Affordable)
	}
	body = append(body, "", m.Message)

	x, y := r.box(widest(body), len(body))
	r.lines(x, y, body[:2], config.TitleColor)
	for i, ok := range affordable {
		clr := config.TextLightColor
		if !ok {
			clr = pkgrender.DarkenColor(clr)
		}
		r.lines(x, y+2+i, body[2+i:3+i], clr)
	}
	msgClr := config.BadMessageColor
	if m.MessageGood {
		msgClr = config.GoodMessageColor
	}
	r.lines(x, y+len(body)-1, body[len(body)-1:], msgClr)
}

func (r *Renderer) DrawHelp(h render.Help) {
	lines := make([]string, len(h.Lines))
	copy(lines, h.Lines)
	lines = append(lines, "", "Terminal: F toggles fire, mouse aims")
	x, y := r.box(widest(lines), len(lines))
	r.lines(x, y, lines, config.TextLightColor)
}
