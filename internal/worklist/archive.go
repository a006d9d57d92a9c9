package worklist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ytget/nextvideo/internal/model"
	"github.com/ytget/nextvideo/internal/platform"
)

// ParseDate parses a human readable record date, e.g. "July 24, 2018".
// Dates without a zone are read in the local time zone.
func ParseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, fmt.Errorf("record has no date")
	}
	t, err := dateparse.ParseIn(date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", date, err)
	}
	return t, nil
}

// ArchivePath returns "<canonical>.<epoch-ms>" for the record's date
func ArchivePath(canonical string, record *model.VideoRecord) (string, error) {
	t, err := ParseDate(record.Date)
	if err != nil {
		return "", err
	}
	return canonical + "." + strconv.FormatInt(t.UnixMilli(), 10), nil
}

// Archive copies the canonical worklist file, as it is on disk, to the
// snapshot path of record. It returns the snapshot path.
func Archive(canonical string, record *model.VideoRecord) (string, error) {
	target, err := ArchivePath(canonical, record)
	if err != nil {
		return "", fmt.Errorf("failed to name snapshot: %w", err)
	}
	if _, err := platform.CopyFile(canonical, target); err != nil {
		return "", err
	}
	return target, nil
}
