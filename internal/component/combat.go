package component

// Health — компонент здоровья. Value всегда в диапазоне [0, Max].
type Health struct {
	Value float64
	Max   float64
}

// NewHealth создаёт полное здоровье.
func NewHealth(max float64) Health {
	return Health{Value: max, Max: max}
}

// Alive — жива ли сущность
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Ratio возвращает долю здоровья для полоски HP.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := h.Value / h.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Damage уменьшает здоровье и возвращает фактически нанесённый урон.
func (h *Health) Damage(amount float64) float64 {
	if amount <= 0 || h.Value <= 0 {
		return 0
	}
	if amount > h.Value {
		amount = h.Value
	}
	h.Value -= amount
	return amount
}

// Heal восстанавливает здоровье живой сущности, не выше максимума.
func (h *Health) Heal(amount float64) {
	if amount <= 0 || h.Value <= 0 || h.Value >= h.Max {
		return
	}
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// Grow увеличивает и максимум, и текущее здоровье (улучшения живучести).
func (h *Health) Grow(amount float64) {
	if amount <= 0 {
		return
	}
	h.Max += amount
	if h.Value > 0 {
		h.Value += amount
	}
}

// Kill обнуляет здоровье.
func (h *Health) Kill() {
	h.Value = 0
}

// Weapon — параметры стрельбы башни или врага
type Weapon struct {
	Cooldown int     // Тиков между выстрелами
	Timer    int     // Оставшееся время до следующего выстрела
	Damage   float64 // Урон снаряда
	Speed    float64 // Скорость снаряда
	Range    float64 // Радиус действия
}

// Ready — можно ли стрелять в этом тике
func (w *Weapon) Ready() bool {
	return w.Timer <= 0
}

// Tick уменьшает таймер перезарядки.
func (w *Weapon) Tick() {
	if w.Timer > 0 {
		w.Timer--
	}
}

// Reset перезапускает перезарядку после выстрела.
func (w *Weapon) Reset() {
	w.Timer = w.Cooldown
}
