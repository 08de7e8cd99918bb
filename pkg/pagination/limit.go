package pagination

// Clamp bounds a requested page size: non-positive values get def, large ones max.
func Clamp(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
