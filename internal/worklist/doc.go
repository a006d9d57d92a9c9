package worklist

// Package worklist reads and rewrites the canonical JSON worklist file and
// writes the timestamped snapshots taken before each rewrite.
