// internal/ui/renderer.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-shape-defense/internal/config"
	"go-shape-defense/internal/render"
	pkgrender "go-shape-defense/pkg/render"
)

const (
	lineHeight     = 18
	healthBarH     = 4
	hudHeight      = 28
	overlayWidth   = 620
	overlayPadding = 24
)

var (
	chargeColor = color.RGBA{255, 60, 60, 255}
	rageColor   = color.RGBA{255, 0, 0, 255}
	aimColor    = color.RGBA{255, 255, 255, 255}
	panelBorder = color.RGBA{70, 100, 120, 255}
	dimText     = color.RGBA{150, 150, 150, 255}
)

// Renderer рисует запросы кадра на экран ebiten.
type Renderer struct {
	screen   *ebiten.Image
	fontFace font.Face
}

var _ render.Sink = (*Renderer)(nil)

// NewRenderer оборачивает экран текущего кадра.
func NewRenderer(screen *ebiten.Image) *Renderer {
	return &Renderer{screen: screen, fontFace: basicfont.Face7x13}
}

func (r *Renderer) Clear(background color.RGBA) {
	r.screen.Fill(background)
}

func (r *Renderer) DrawSprite(s render.Sprite) {
	clr := spriteColor(s)
	x, y := float32(s.X), float32(s.Y)

	if s.Range > 0 {
		vector.StrokeCircle(r.screen, x, y, float32(s.Range), 1, pkgrender.Fade(config.RangeColor, 0.25), true)
	}

	if s.Shape == render.ShapeCircle {
		vector.DrawFilledCircle(r.screen, x, y, float32(s.Size/2), clr, true)
	} else {
		fillFan(r.screen, x, y, polygon(s.Shape, s.X, s.Y, s.Size), clr)
	}

	switch {
	case s.Raging:
		vector.StrokeCircle(r.screen, x, y, float32(s.Size/2)+4, 2, rageColor, true)
	case s.Aiming:
		vector.StrokeCircle(r.screen, x, y, float32(s.Size/2)+3, 1, aimColor, true)
	}

	if s.ShowHealth && !s.Invisible {
		r.healthBar(s.X-s.Size/2, s.Y-s.Size/2-8, s.Size, s.HealthRatio)
	}
}

func spriteColor(s render.Sprite) color.RGBA {
	clr := s.Color
	switch {
	case s.Flicker:
		clr = config.PlayerFlickerColor
	case s.Charging:
		clr = pkgrender.Lerp(clr, chargeColor, 0.5)
	case s.Dashing:
		clr = pkgrender.DarkenColor(clr)
	}
	if s.Invisible {
		clr = pkgrender.Fade(clr, 0.3)
	}
	return clr
}

func (r *Renderer) healthBar(x, y, w, ratio float64) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), healthBarH, config.HealthBarBack, false)
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w*ratio), healthBarH, config.EnemyHealthFront, false)
}

func (r *Renderer) DrawShot(s render.Shot) {
	clr := config.HostileShotColor
	if s.Friendly {
		clr = config.FriendlyShotColor
	}
	vector.DrawFilledCircle(r.screen, float32(s.X), float32(s.Y), float32(s.Radius), clr, true)
}

func (r *Renderer) DrawHUD(h render.HUD) {
	w := float32(r.screen.Bounds().Dx())
	vector.DrawFilledRect(r.screen, 0, 0, w, hudHeight, config.OverlayColor, false)

	line := fmt.Sprintf("Wave %s (%d/%d)   Signal %3.0f%%   HP %.0f/%.0f   Core %.0f/%.0f   $%d",
		toRoman(h.Wave), h.Wave, h.Waves, h.SignalStrength*100,
		h.Health, h.MaxHealth, h.CentralHealth, h.CentralMax, h.Money)
	text.Draw(r.screen, line, r.fontFace, 10, 19, config.TextLightColor)

	hintX := int(w) - len(h.Controls)*7 - 10
	text.Draw(r.screen, h.Controls, r.fontFace, hintX, 19, dimText)
}

func (r *Renderer) DrawSlide(s render.Slide) {
	x, y := r.panel(len(strings.Split(s.Text, "\n")) + strings.Count(s.Art, "\n") + 6)
	text.Draw(r.screen, s.Title, r.fontFace, x, y, config.TitleColor)
	y += lineHeight * 2
	if s.Art != "" {
		text.Draw(r.screen, s.Art, r.fontFace, x, y, dimText)
		y += lineHeight * (strings.Count(s.Art, "\n") + 2)
	}
	text.Draw(r.screen, s.Text, r.fontFace, x, y, config.TextLightColor)
	footer := fmt.Sprintf("[%d/%d]  Space: continue", s.Index+1, s.Count)
	text.Draw(r.screen, footer, r.fontFace, x, r.screen.Bounds().Dy()/2+200, dimText)
}

func (r *Renderer) DrawMenu(m render.Menu) {
	b := r.screen.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2
	text.Draw(r.screen, m.Title, r.fontFace, cx-len(m.Title)*7/2, cy-60, config.TitleColor)

	slider := fmt.Sprintf("Difficulty: < %.2f >", m.Difficulty)
	text.Draw(r.screen, slider, r.fontFace, cx-len(slider)*7/2, cy, config.TextLightColor)

	// Полоса ползунка
	const barW = 300
	ratio := (m.Difficulty - config.MinDifficulty) / (config.MaxDifficulty - config.MinDifficulty)
	bx, by := float32(cx-barW/2), float32(cy+16)
	vector.DrawFilledRect(r.screen, bx, by, barW, 6, config.HealthBarBack, false)
	vector.DrawFilledRect(r.screen, bx, by, float32(barW*ratio), 6, config.HealthBarFront, false)

	text.Draw(r.screen, m.Hint, r.fontFace, cx-len(m.Hint)*7/2, cy+60, dimText)
}

func (r *Renderer) DrawUpgradeMenu(m render.UpgradeMenu) {
	x, y := r.panel(len(m.Items) + 8)
	text.Draw(r.screen, fmt.Sprintf("UPGRADES   $%d", m.Money), r.fontFace, x, y, config.TitleColor)
	y += lineHeight * 2

	category := ""
	for _, it := range m.Items {
		if it.Category != category {
			category = it.Category
			text.Draw(r.screen, strings.ToUpper(category), r.fontFace, x, y, dimText)
			y += lineHeight
		}
		clr := config.TextLightColor
		if !it.Affordable {
			clr = pkgrender.DarkenColor(clr)
		}
		row := fmt.Sprintf("%d. %-22s Lv %-3d %-12s $%d", it.Shortcut, it.Label, it.Level, it.Increment, it.Cost)
		text.Draw(r.screen, row, r.fontFace, x+12, y, clr)
		y += lineHeight
	}

	if m.Message != "" {
		clr := config.BadMessageColor
		if m.MessageGood {
			clr = config.GoodMessageColor
		}
		text.Draw(r.screen, m.Message, r.fontFace, x, y+lineHeight, clr)
	}
}

func (r *Renderer) DrawHelp(h render.Help) {
	x, y := r.panel(len(h.Lines) + 2)
	for _, l := range h.Lines {
		text.Draw(r.screen, l, r.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}
}

// panel рисует затемнение и рамку по центру экрана, возвращает точку начала текста.
func (r *Renderer) panel(lines int) (int, int) {
	b := r.screen.Bounds()
	vector.DrawFilledRect(r.screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)

	h := lines*lineHeight + overlayPadding*2
	px := (b.Dx() - overlayWidth) / 2
	py := (b.Dy() - h) / 2
	vector.DrawFilledRect(r.screen, float32(px), float32(py), overlayWidth, float32(h), config.MenuBackground, false)
	vector.StrokeRect(r.screen, float32(px), float32(py), overlayWidth, float32(h), 2, panelBorder, false)
	return px + overlayPadding, py + overlayPadding + lineHeight
}
