package pipeline

// Package pipeline runs one download pass over the worklist:
// load, select, validate, fetch, archive, persist. Each stage blocks until
// done and the first failure ends the run.
