// internal/component/visual.go
package component

// Flash — короткий визуальный таймер (вспышка урона, вспышка выстрела).
type Flash struct {
	Timer int
}

// Trigger запускает вспышку на duration тиков.
func (f *Flash) Trigger(duration int) {
	f.Timer = duration
}

// Active — идёт ли вспышка
func (f *Flash) Active() bool {
	return f.Timer > 0
}

// Tick гасит вспышку на один тик.
func (f *Flash) Tick() {
	if f.Timer > 0 {
		f.Timer--
	}
}
