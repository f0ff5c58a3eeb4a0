package editorui

// EventKind identifies the type of an Event.
type EventKind int

const (
	EventPointerPressed EventKind = iota
	EventPointerMoved
	EventPointerReleased
	EventKeyPressed
	EventTextInput
	EventWindowDocked
	EventWindowDetached
	EventLayoutLoaded
	EventPropertyChanged
	EventPropertyRejected
)

var eventKindNames = [...]string{
	EventPointerPressed:   "PointerPressed",
	EventPointerMoved:     "PointerMoved",
	EventPointerReleased:  "PointerReleased",
	EventKeyPressed:       "KeyPressed",
	EventTextInput:        "TextInput",
	EventWindowDocked:     "WindowDocked",
	EventWindowDetached:   "WindowDetached",
	EventLayoutLoaded:     "LayoutLoaded",
	EventPropertyChanged:  "PropertyChanged",
	EventPropertyRejected: "PropertyRejected",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Modifiers is the modifier key state captured with an event.
type Modifiers struct {
	Ctrl, Shift, Alt bool
}

// Event is a single notification routed through an EventBus.
// Target is the window or widget name the event is addressed to; empty means broadcast.
type Event struct {
	Kind    EventKind
	Target  string
	Pos     Vec2
	Button  MouseButton
	Key     Key
	Mods    Modifiers
	Text    []rune
	Payload any
}

// EventHandler handles an event and reports whether it was consumed.
type EventHandler func(Event) bool

type subscription struct {
	id      uint64
	handler EventHandler
}

type eventKey struct {
	kind   EventKind
	target string
}

// EventBus dispatches events to handlers keyed by kind and target.
//
// Publish calls handlers subscribed to the event's exact target first, then
// handlers subscribed with an empty target, each in subscription order. The
// first handler that returns true stops delivery.
type EventBus struct {
	handlers map[eventKey][]subscription
	nextID   uint64
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[eventKey][]subscription)}
}

// Subscribe registers h for events of kind addressed to target.
// An empty target receives every event of that kind.
// The returned function removes the subscription.
func (b *EventBus) Subscribe(kind EventKind, target string, h EventHandler) func() {
	b.nextID++
	id := b.nextID
	k := eventKey{kind: kind, target: target}
	b.handlers[k] = append(b.handlers[k], subscription{id: id, handler: h})
	return func() {
		subs := b.handlers[k]
		for i, s := range subs {
			if s.id == id {
				b.handlers[k] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev and reports whether any handler consumed it.
func (b *EventBus) Publish(ev Event) bool {
	if ev.Target != "" {
		if b.deliver(eventKey{kind: ev.Kind, target: ev.Target}, ev) {
			return true
		}
	}
	return b.deliver(eventKey{kind: ev.Kind}, ev)
}

func (b *EventBus) deliver(k eventKey, ev Event) bool {
	// Copy so handlers may unsubscribe during delivery.
	subs := append([]subscription(nil), b.handlers[k]...)
	for _, s := range subs {
		if s.handler(ev) {
			return true
		}
	}
	return false
}

// HandlerCount returns the number of handlers registered for kind and target.
func (b *EventBus) HandlerCount(kind EventKind, target string) int {
	return len(b.handlers[eventKey{kind: kind, target: target}])
}

// DispatchInput converts one frame of input into pointer, key and text events.
// target addresses the events (typically the window under the pointer).
func (b *EventBus) DispatchInput(in *InputState, target string) {
	if in == nil {
		return
	}
	mods := in.Mods()
	pos := in.MousePos()

	for btn := MouseButton(0); btn < MouseButtonCount; btn++ {
		if in.MouseClicked(btn) {
			b.Publish(Event{Kind: EventPointerPressed, Target: target, Pos: pos, Button: btn, Mods: mods})
		}
	}
	if d := in.MouseDelta(); d.X != 0 || d.Y != 0 {
		b.Publish(Event{Kind: EventPointerMoved, Target: target, Pos: pos, Mods: mods})
	}
	for btn := MouseButton(0); btn < MouseButtonCount; btn++ {
		if in.MouseReleased(btn) {
			b.Publish(Event{Kind: EventPointerReleased, Target: target, Pos: pos, Button: btn, Mods: mods})
		}
	}
	for k := KeyNone + 1; k < KeyCount; k++ {
		if in.KeyPressed(k) {
			b.Publish(Event{Kind: EventKeyPressed, Target: target, Key: k, Mods: mods})
		}
	}
	if len(in.InputChars) > 0 {
		b.Publish(Event{Kind: EventTextInput, Target: target, Text: append([]rune(nil), in.InputChars...), Mods: mods})
	}
}
