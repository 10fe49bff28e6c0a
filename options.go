package cachedprop

// Option configures an Attrs created by NewAttrs or passed to Configure.
type Option func(*Attrs)

// WithObserver attaches an Observer that receives hit, miss, dedup, error,
// reset and set events for every property read through the namespace.
func WithObserver(o Observer) Option {
	return func(attrs *Attrs) {
		attrs.observer = o
	}
}
