// internal/render/frame.go
package render

import "image/color"

// Frame — Sink, который запоминает кадр. Фронтенды рисуют из него,
// тесты проверяют его содержимое.
type Frame struct {
	Background color.RGBA
	Sprites    []Sprite
	Shots      []Shot
	HUD        *HUD
	Slide      *Slide
	Menu       *Menu
	Upgrades   *UpgradeMenu
	Help       *Help
}

var _ Sink = (*Frame)(nil)

func (f *Frame) Clear(background color.RGBA) {
	f.Background = background
	f.Sprites = f.Sprites[:0]
	f.Shots = f.Shots[:0]
	f.HUD = nil
	f.Slide = nil
	f.Menu = nil
	f.Upgrades = nil
	f.Help = nil
}

func (f *Frame) DrawSprite(s Sprite)           { f.Sprites = append(f.Sprites, s) }
func (f *Frame) DrawShot(s Shot)               { f.Shots = append(f.Shots, s) }
func (f *Frame) DrawHUD(h HUD)                 { f.HUD = &h }
func (f *Frame) DrawSlide(s Slide)             { f.Slide = &s }
func (f *Frame) DrawMenu(m Menu)               { f.Menu = &m }
func (f *Frame) DrawUpgradeMenu(m UpgradeMenu) { f.Upgrades = &m }
func (f *Frame) DrawHelp(h Help)               { f.Help = &h }

// Replay передаёт записанный кадр в другой Sink в порядке слоёв.
func (f *Frame) Replay(s Sink) {
	s.Clear(f.Background)
	for _, sp := range f.Sprites {
		s.DrawSprite(sp)
	}
	for _, sh := range f.Shots {
		s.DrawShot(sh)
	}
	if f.HUD != nil {
		s.DrawHUD(*f.HUD)
	}
	if f.Menu != nil {
		s.DrawMenu(*f.Menu)
	}
	if f.Slide != nil {
		s.DrawSlide(*f.Slide)
	}
	if f.Upgrades != nil {
		s.DrawUpgradeMenu(*f.Upgrades)
	}
	if f.Help != nil {
		s.DrawHelp(*f.Help)
	}
}
