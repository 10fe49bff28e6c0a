package cachedprop

import (
	"context"
	"fmt"
)

// computingKey marks a context as belonging to the computation of one
// property on one owner.
type computingKey struct {
	attrs *Attrs
	name  string
}

// panicked carries a panic out of the singleflight call so that every caller
// can re-panic with the original value.
type panicked struct {
	value any
}

func (p *panicked) Error() string {
	return fmt.Sprintf("cachedprop: computation panicked: %v", p.value)
}

// ThreadSafeProperty is a Property whose first computation on an owner is
// serialized: concurrent first reads run the Func exactly once and all
// observe its result. Computations on different owners do not block each
// other.
//
// ThreadSafeProperty has no setter.
type ThreadSafeProperty[O Owner, T any] struct {
	descriptor[O, T]
}

// NewThreadSafe returns a thread-safe property that caches the result of get
// under name.
//
// NewThreadSafe panics if name is empty or get is nil.
func NewThreadSafe[O Owner, T any](name string, get Func[O, T]) *ThreadSafeProperty[O, T] {
	return &ThreadSafeProperty[O, T]{descriptor: newDescriptor(name, get)}
}

// WithDoc attaches documentation to the property.
func (p *ThreadSafeProperty[O, T]) WithDoc(doc string) *ThreadSafeProperty[O, T] {
	p.doc = doc
	return p
}

// Get returns the value cached on owner, computing and caching it first if
// needed. Concurrent callers for the same owner block and receive the same
// result. Errors are not cached. A panic in the Func is re-raised, with the
// original value, in every caller waiting on that computation.
//
// The context handed to the Func is marked, so that a Get on the same
// property and owner made with it (directly or through other properties)
// computes the value directly instead of waiting on itself.
func (p *ThreadSafeProperty[O, T]) Get(ctx context.Context, owner O) (T, error) {
	attrs := owner.CachedAttrs()
	if attrs == nil {
		return p.get(ctx, owner)
	}

	// Fast path: already cached.
	if v, ok, err := p.load(attrs); ok {
		if err == nil {
			attrs.emit(EventHit, p.name, nil)
		}
		return v, err
	}

	key := computingKey{attrs: attrs, name: p.name}
	if ctx.Value(key) != nil {
		return p.compute(ctx, owner, attrs)
	}

	// Slow path: singleflight dedup.
	var ran bool
	val, err, shared := attrs.group.Do(p.name, func() (v any, err error) {
		ran = true
		defer func() {
			if r := recover(); r != nil {
				err = &panicked{value: r}
			}
		}()

		// Double-check: another goroutine may have cached while we waited.
		if v, ok, err := p.load(attrs); ok {
			if err == nil {
				attrs.emit(EventHit, p.name, nil)
			}
			return v, err
		}
		return p.compute(context.WithValue(ctx, key, struct{}{}), owner, attrs)
	})
	if shared && !ran {
		attrs.emit(EventDedup, p.name, nil)
	}

	if pe, ok := err.(*panicked); ok {
		panic(pe.value)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := cast[T](val)
	return v, nil
}
