package partition

// Test bridge: exposes the resolved grid size so partition_test can check
// the max(Oversample·(n+1), MinSamples) rule without widening the API.

// ExportedGridSize returns the dense grid size Adaptive would use for n.
func ExportedGridSize(n int, opts ...Option) int {
	return newConfig(opts...).gridSize(n)
}
