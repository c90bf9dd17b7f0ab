// internal/defs/slides.go
package defs

// Имена наборов слайдов
const (
	SlidesIntro   = "intro"
	SlidesVictory = "victory"
	SlidesDefeat  = "defeat"
)

// Slide — одна страница повествования.
type Slide struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Art   string `yaml:"art"` // Имя картинки, рисует фронтенд
}

// SlideSets — наборы слайдов по имени.
type SlideSets map[string][]Slide

type slidesFile struct {
	Slides SlideSets `yaml:"slides"`
}
