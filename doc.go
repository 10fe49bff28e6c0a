// Package cachedprop provides lazily computed, per-instance cached
// attributes.
//
// A property is declared once, usually as a package-level variable, and
// read on any number of owners. The first read on an owner runs the
// property's function and stores the result in the owner's attribute
// namespace ([Attrs]) under the property's name. Later reads return the
// stored value. Deleting the entry, with [Property.Reset] or
// [Attrs.Delete], makes the next read compute it again.
//
// Embed [Attrs] in the owning struct and declare properties against a
// pointer to it:
//
//	type Dataset struct {
//		cachedprop.Attrs
//		Path string
//	}
//
//	var rowCount = cachedprop.New("row_count",
//		func(ctx context.Context, d *Dataset) (int, error) {
//			return countRows(ctx, d.Path)
//		})
//
//	n, err := rowCount.Get(ctx, ds)
//
// [Property] makes no concurrency guarantee for the compute-once behavior.
// [ThreadSafeProperty] runs the first computation on an owner exactly once
// even when many goroutines read it at the same time, and shares the
// result (or error) between them. Computations on different owners do not
// block each other.
//
// Errors are never cached, so a failed read can be retried. Attach an
// [Observer] with [WithObserver] to watch hits, misses and resets, or use
// [LogObserver] to send them to a logr.Logger.
package cachedprop
