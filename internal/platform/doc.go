package platform

// Package platform contains filesystem glue: media filename derivation and
// validation, snapshot copies, and best-effort cleanup of partial files.
