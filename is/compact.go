package is

// Compact returns values without its falsy entries (see [Truthy]).
func Compact[T any](values []T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if Truthy(v) {
			out = append(out, v)
		}
	}
	return out
}

// CompactPtr dereferences the non-nil pointers in values and drops the rest.
func CompactPtr[T any](values []*T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
