package model

// Package model defines domain data structures used across the app: worklist
// records, the worklist itself, per-run transfer telemetry and run status
// enums. Records keep their original JSON layout so a rewrite of the worklist
// only changes what the run actually touched.
