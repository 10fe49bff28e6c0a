package cachedprop

import (
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Owner is implemented by any value that carries cached attributes.
// Embedding Attrs in a struct makes a pointer to that struct an Owner.
type Owner interface {
	CachedAttrs() *Attrs
}

// Attrs is the attribute namespace of a single owning instance.
// An entry being present is the only signal that a property was computed.
// The zero value is ready to use.
type Attrs struct {
	group    singleflight.Group
	mu       sync.RWMutex
	store    map[string]any
	observer Observer
}

// NewAttrs returns an empty namespace configured with opts.
func NewAttrs(opts ...Option) *Attrs {
	a := &Attrs{}
	a.Configure(opts...)
	return a
}

// Configure applies opts to a. Useful when Attrs is embedded by value.
func (a *Attrs) Configure(opts ...Option) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, opt := range opts {
		opt(a)
	}
}

// CachedAttrs returns a, so that structs embedding Attrs satisfy Owner.
func (a *Attrs) CachedAttrs() *Attrs {
	return a
}

// Lookup returns the value stored under name without computing anything.
func (a *Attrs) Lookup(name string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.store[name]
	return v, ok
}

// Store writes v under name, replacing any cached value.
func (a *Attrs) Store(name string, v any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		a.store = make(map[string]any)
	}
	a.store[name] = v
}

// Delete removes the entry for name and reports whether one was present.
// The next read of a property with that name recomputes it.
func (a *Attrs) Delete(name string) bool {
	a.mu.Lock()
	_, ok := a.store[name]
	delete(a.store, name)
	a.mu.Unlock()

	if ok {
		a.emit(EventReset, name, nil)
	}
	return ok
}

// Names returns the sorted names of all present entries.
func (a *Attrs) Names() []string {
	a.mu.RLock()
	names := make([]string, 0, len(a.store))
	for name := range a.store {
		names = append(names, name)
	}
	a.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of present entries.
func (a *Attrs) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.store)
}

func (a *Attrs) emit(event Event, name string, err error) {
	a.mu.RLock()
	o := a.observer
	a.mu.RUnlock()

	if o == nil {
		return
	}
	o.On(EventData{
		Event: event,
		Name:  name,
		Err:   err,
	})
}
