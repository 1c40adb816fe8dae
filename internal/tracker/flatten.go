package tracker

// flatten concatenates per-repo result slices into one sequence, preserving
// repo-encounter order and inner order.
func flatten[T any](groups [][]T) []T {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]T, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
