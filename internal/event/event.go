// internal/event/event.go
package event

import (
	"reflect"

	"node-zero/internal/component"
)

// Type is the kind of a game event.
type Type string

// Event carries the data of one game event. Only the fields relevant to Type are set.
type Event struct {
	Type      Type
	Timestamp float64 // game time in seconds

	// Node
	Shape    component.NodeShape
	Position component.Position
	Size     float64
	HP       int
	Damage   int

	// Scoring
	Points        int
	Delta         int
	Multiplier    float64
	OldMultiplier float64

	// Screens and levels
	Screen    component.GameScreen
	OldScreen component.GameScreen
	Level     int
	NextLevel int
	BossHP    float64
}

// New creates an event with the neutral defaults for scoring and level fields.
func New(t Type, timestamp float64) Event {
	return Event{
		Type:          t,
		Timestamp:     timestamp,
		Multiplier:    1,
		OldMultiplier: 1,
		Level:         1,
		NextLevel:     1,
	}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher routes events to subscribers registered per type or for all types.
// It is not safe for concurrent use.
type Dispatcher struct {
	listeners map[Type][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType Type, listener Listener) {
	if listener == nil {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType Type, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		d.listeners[eventType] = remove(listeners, listener)
	}
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	if listener == nil {
		return
	}
	d.all = append(d.all, listener)
}

func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.all = remove(d.all, listener)
}

// Dispatch delivers e to the subscribers of its type, then to the wildcard subscribers.
// Subscriptions changed by a listener take effect from the next Dispatch.
func (d *Dispatcher) Dispatch(e Event) {
	typed := d.listeners[e.Type]
	targets := make([]Listener, 0, len(typed)+len(d.all))
	targets = append(targets, typed...)
	targets = append(targets, d.all...)
	for _, listener := range targets {
		listener.OnEvent(e)
	}
}

// Len reports how many registrations exist for eventType, wildcard ones included.
func (d *Dispatcher) Len(eventType Type) int {
	return len(d.listeners[eventType]) + len(d.all)
}

func remove(listeners []Listener, listener Listener) []Listener {
	for i, l := range listeners {
		if sameListener(l, listener) {
			out := make([]Listener, 0, len(listeners)-1)
			out = append(out, listeners[:i]...)
			return append(out, listeners[i+1:]...)
		}
	}
	return listeners
}

// sameListener compares listeners without panicking on uncomparable dynamic types.
// Functions match by code pointer, so two closures of one literal are indistinguishable.
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}
