// internal/component/wave.go
package component

// WaveStatus — состояние планировщика волн
type WaveStatus int

const (
	WaveIdle WaveStatus = iota
	WaveRunning
)

// WaveProgress — прогресс текущей волны
type WaveProgress struct {
	Index      int // Номер текущей волны (с нуля)
	StepIndex  int // Текущий шаг внутри волны
	Remaining  int // Сколько врагов осталось выпустить в текущем шаге
	SpawnTimer int // Отсчёт до следующего появления
	Elapsed    int // Тиков с начала волны
	TimeLimit  int // Лимит времени волны
	Status     WaveStatus

	// Интерлюдии, уже показанные в этой сессии (ключ — индекс волны)
	InterludesShown map[int]bool
}

// Running — идёт ли волна
func (w *WaveProgress) Running() bool {
	return w.Status == WaveRunning
}
