// internal/event/event.go
package event

// EventType names an event
type EventType string

// Event is what listeners receive; Data holds one of the payload types from types.go
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// SubscriptionID is returned by Subscribe and used to unsubscribe
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher delivers events synchronously, in subscription order.
// Events dispatched while a delivery is running are queued and delivered
// after it, so handlers always observe a consistent order.
type Dispatcher struct {
	listeners  map[EventType][]subscription
	nextID     SubscriptionID
	queue      []Event
	delivering bool
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener for eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeFunc is Subscribe for plain functions
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) SubscriptionID {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe removes a subscription; unknown ids are ignored
func (d *Dispatcher) Unsubscribe(eventType EventType, id SubscriptionID) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, s := range listeners {
			if s.id == id {
				updated := make([]subscription, 0, len(listeners)-1)
				updated = append(updated, listeners[:i]...)
				d.listeners[eventType] = append(updated, listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch sends event to all subscribers of its type
func (d *Dispatcher) Dispatch(event Event) {
	d.queue = append(d.queue, event)
	if d.delivering {
		return
	}
	d.delivering = true
	defer func() { d.delivering = false }()

	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		// snapshot so (un)subscribing inside a handler does not affect this delivery
		for _, s := range d.listeners[next.Type] {
			s.listener.OnEvent(next)
		}
	}
	d.queue = nil
}

// Emit is a shorthand for Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}
