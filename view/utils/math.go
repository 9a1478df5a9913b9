package utils

// Number types that the clamp helpers operate on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func Clamp[T Number](v, lo, hi T) T {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}
