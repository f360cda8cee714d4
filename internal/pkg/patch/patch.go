package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Any reports whether at least one of the optional fields is set.
func Any(set ...bool) bool {
	for _, s := range set {
		if s {
			return true
		}
	}
	return false
}
