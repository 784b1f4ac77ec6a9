package types

// Source produces values one at a time. Next returns the next value and
// true, or the zero value and false once the source is exhausted. Sources
// are single-consumer; Next is not safe for concurrent use.
type Source[T any] interface {
	Next() (T, bool)
}

// Releaser is implemented by values that hold pooled or otherwise owned
// resources. Free should be called when the value is no longer needed.
type Releaser interface {
	Free()
}

func Zero[T any]() T {
	var zero T
	return zero
}
