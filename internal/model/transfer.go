package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Transfer represents the telemetry of a single HTTP download
type Transfer struct {
	ID           string
	URL          string
	OutputPath   string    // path of the file being written
	BytesWritten int64     // bytes written so far
	TotalBytes   int64     // Content-Length, -1 if unknown
	Speed        string    // human readable speed (e.g., "1.2MB/s")
	StartedAt    time.Time // when the request was sent
	FinishedAt   time.Time // when the body was fully written or the transfer failed
	LastError    string    // last error message if any
	Title        string    // video title
}

// Percent returns download progress from 0 to 100, or -1 if the size is unknown
func (t *Transfer) Percent() int {
	if t.TotalBytes <= 0 {
		return -1
	}
	percent := int(t.BytesWritten * 100 / t.TotalBytes)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// GetProgressString returns something like "42% (1.5MB of 3.6MB)"
func (t *Transfer) GetProgressString() string {
	written := formatMB(t.BytesWritten)
	if t.Percent() < 0 {
		return written
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d%% (%s of %s)", t.Percent(), written, formatMB(t.TotalBytes)))
	return b.String()
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (t *Transfer) GetDisplayTitle() string {
	if t.Title != "" && !strings.HasPrefix(t.Title, "http") {
		return t.Title
	}
	if t.OutputPath != "" {
		return filepath.Base(t.OutputPath)
	}
	return t.URL
}

// Duration returns how long the transfer took, zero while still running
func (t *Transfer) Duration() time.Duration {
	if t.FinishedAt.IsZero() || t.StartedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

func formatMB(n int64) string {
	return fmt.Sprintf("%.1fMB", float64(n)/1024/1024)
}
