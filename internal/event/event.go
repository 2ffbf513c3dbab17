// internal/event/event.go
package event

// EventType тип события
type EventType string

// Event событие сессии редактора
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, см. types.go
}

// Listener подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher синхронный диспетчер: Dispatch возвращается, когда все
// подписчики отработали. Не потокобезопасен, как и весь цикл кадра.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Dispatch отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
