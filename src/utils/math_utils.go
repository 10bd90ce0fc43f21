package utils

// MinInt returns the smaller of two integers.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampLimit normalizes a caller-supplied result limit: negative values
// count as zero, so a bad limit yields an empty slice rather than a panic.
func ClampLimit(limit, size int) int {
	if limit < 0 {
		return 0
	}
	return MinInt(limit, size)
}
