package cachedprop

import "errors"

var (
	// ErrReadOnly is returned by Property.Set when no setter was supplied.
	// The cached value is reset regardless.
	ErrReadOnly = errors.New("cachedprop: property has no setter")

	// ErrTypeMismatch is returned when the value stored under a property's
	// name is not of the property's type.
	ErrTypeMismatch = errors.New("cachedprop: cached value has unexpected type")
)
