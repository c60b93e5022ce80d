// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event: структура события. Содержимое Data описано рядом с каждой
// константой EventType.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher: диспетчер событий. Не потокобезопасен: все события
// рассылаются из игрового цикла.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher: создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe: подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll: подписка на несколько событий сразу
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe: отписка от события. Подписчик должен быть сравнимым
// (методы на указателе), иначе сравнение вызовет панику.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch: отправка события всем подписчикам. Вызов на nil ничего не делает.
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
