// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-shape-defense/internal/component"
)

// PRNGService — генератор случайных чисел сессии. Один сид задаёт все точки появления врагов.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService: сид 0 — текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed — фактически использованный сид (для логов и воспроизведения)
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// EdgePoint выбирает случайную сторону арены и случайную точку на ней.
// Порядок сторон: верх, низ, лево, право.
func (s *PRNGService) EdgePoint(b component.Bounds) (x, y float64) {
	switch s.Intn(4) {
	case 0:
		return s.Float64() * b.Width, 0
	case 1:
		return s.Float64() * b.Width, b.Height
	case 2:
		return 0, s.Float64() * b.Height
	default:
		return b.Width, s.Float64() * b.Height
	}
}
