package download

// Package download implements the media fetcher: a single blocking HTTP GET
// streamed to disk, with progress propagation through an update callback and
// cleanup of partial files when the transfer fails.
