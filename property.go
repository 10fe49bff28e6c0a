package cachedprop

import (
	"context"
	"fmt"
)

// Func computes the value of a property for one owner.
type Func[O Owner, T any] func(ctx context.Context, owner O) (T, error)

// SetFunc receives values written to a property. It does not store them:
// the next read recomputes through the property's Func.
type SetFunc[O Owner, T any] func(ctx context.Context, owner O, value T) error

// Descriptor is the introspection surface shared by all property kinds.
// A property variable, read without an owner, is its own descriptor.
type Descriptor interface {
	Name() string
	Doc() string
}

type descriptor[O Owner, T any] struct {
	name string
	doc  string
	get  Func[O, T]
}

func newDescriptor[O Owner, T any](name string, get Func[O, T]) descriptor[O, T] {
	if name == "" {
		panic("cachedprop: property name must not be empty")
	}
	if get == nil {
		panic("cachedprop: nil computation function for property " + name)
	}
	return descriptor[O, T]{name: name, get: get}
}

// Name returns the attribute name the value is cached under.
func (d *descriptor[O, T]) Name() string { return d.name }

// Doc returns the documentation attached with WithDoc.
func (d *descriptor[O, T]) Doc() string { return d.doc }

func (d *descriptor[O, T]) String() string {
	var zero T
	return fmt.Sprintf("cachedprop %s %T", d.name, zero)
}

// Cached returns the value cached on owner, if any, without computing it.
func (d *descriptor[O, T]) Cached(owner O) (T, bool) {
	attrs := owner.CachedAttrs()
	if attrs == nil {
		var zero T
		return zero, false
	}
	v, ok, err := d.load(attrs)
	return v, ok && err == nil
}

// Reset deletes the value cached on owner so that the next read recomputes.
// It reports whether a value was cached.
func (d *descriptor[O, T]) Reset(owner O) bool {
	attrs := owner.CachedAttrs()
	if attrs == nil {
		return false
	}
	return attrs.Delete(d.name)
}

// load reads the entry for d from attrs. ok reports presence; err is set when
// the entry holds something other than a T.
func (d *descriptor[O, T]) load(attrs *Attrs) (v T, ok bool, err error) {
	raw, ok := attrs.Lookup(d.name)
	if !ok {
		return v, false, nil
	}
	v, typed := cast[T](raw)
	if !typed {
		return v, true, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, d.name, raw)
	}
	return v, true, nil
}

// compute runs the computation function and caches a successful result.
func (d *descriptor[O, T]) compute(ctx context.Context, owner O, attrs *Attrs) (T, error) {
	attrs.emit(EventMiss, d.name, nil)

	v, err := d.get(ctx, owner)
	if err != nil {
		attrs.emit(EventError, d.name, err)
		var zero T
		return zero, err
	}

	attrs.Store(d.name, v)
	return v, nil
}

func cast[T any](raw any) (T, bool) {
	if raw == nil {
		// Only interface types can hold an untyped nil.
		var zero T
		return zero, any(zero) == nil
	}
	v, ok := raw.(T)
	return v, ok
}

// Property is a lazily computed attribute. Its Func runs at most once per
// owner between resets; the result is cached in the owner's Attrs under the
// property's name.
//
// Property makes no concurrency guarantee for the compute-once behavior:
// concurrent first reads on the same owner may each run the Func. Use
// ThreadSafeProperty when an owner is shared between goroutines.
type Property[O Owner, T any] struct {
	descriptor[O, T]
	set SetFunc[O, T]
}

// New returns a property that caches the result of get under name.
// Nothing is computed until the first Get on an owner.
//
// New panics if name is empty or get is nil.
func New[O Owner, T any](name string, get Func[O, T]) *Property[O, T] {
	return &Property[O, T]{descriptor: newDescriptor(name, get)}
}

// WithSetter installs set as the property's write handler. It is meant to be
// chained onto New when declaring the property.
func (p *Property[O, T]) WithSetter(set SetFunc[O, T]) *Property[O, T] {
	p.set = set
	return p
}

// WithDoc attaches documentation to the property.
func (p *Property[O, T]) WithDoc(doc string) *Property[O, T] {
	p.doc = doc
	return p
}

// Get returns the value cached on owner, computing and caching it first if
// needed. A failed computation caches nothing and returns the error as is,
// so the next Get tries again.
//
// If owner has no Attrs (CachedAttrs returns nil), the value is computed on
// every call.
func (p *Property[O, T]) Get(ctx context.Context, owner O) (T, error) {
	attrs := owner.CachedAttrs()
	if attrs == nil {
		return p.get(ctx, owner)
	}

	if v, ok, err := p.load(attrs); ok {
		if err == nil {
			attrs.emit(EventHit, p.name, nil)
		}
		return v, err
	}
	return p.compute(ctx, owner, attrs)
}

// Set resets the value cached on owner and passes value to the setter.
// value itself is not cached; the next Get recomputes.
//
// Without a setter the cached value is still reset and an error wrapping
// ErrReadOnly is returned.
func (p *Property[O, T]) Set(ctx context.Context, owner O, value T) error {
	attrs := owner.CachedAttrs()
	if attrs != nil {
		attrs.Delete(p.name)
	}

	if p.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, p.name)
	}
	if err := p.set(ctx, owner, value); err != nil {
		return err
	}

	if attrs != nil {
		attrs.emit(EventSet, p.name, nil)
	}
	return nil
}
