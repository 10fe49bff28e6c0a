package cachedprop

// Observer receives attribute lifecycle events. Implementations must be safe
// for concurrent use when the owner is accessed from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(EventData)

// On calls f(eventData).
func (f ObserverFunc) On(eventData EventData) {
	f(eventData)
}

// Event represents an attribute event type.
type Event int

const (
	// EventHit is emitted when a Get call finds a cached value.
	EventHit Event = iota
	// EventMiss is emitted when a Get call invokes the computation function.
	EventMiss
	// EventDedup is emitted when a concurrent caller of a thread-safe
	// property shares an in-flight computation instead of starting one.
	EventDedup
	// EventError is emitted when the computation function returns an error.
	// Nothing is cached.
	EventError
	// EventReset is emitted when a cached value is deleted.
	EventReset
	// EventSet is emitted after a property's setter ran.
	EventSet
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventDedup:
		return "dedup"
	case EventError:
		return "error"
	case EventReset:
		return "reset"
	case EventSet:
		return "set"
	}
	return "unknown"
}

// EventData carries the details of an attribute event.
type EventData struct {
	Event Event
	Name  string
	Err   error
}
