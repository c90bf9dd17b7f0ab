// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки внутри Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка одного слушателя на несколько событий
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. ListenerFunc сравнивать нельзя,
// поэтому отписываются только слушатели-указатели.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, ok := listener.(ListenerFunc); ok {
		return
	}
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if _, ok := l.(ListenerFunc); ok {
				continue
			}
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Cue — короткий способ отправить звуковой сигнал.
func (d *Dispatcher) Cue(name Cue) {
	d.Dispatch(Event{Type: SoundCue, Data: name})
}
