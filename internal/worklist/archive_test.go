package worklist

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ytget/nextvideo/internal/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		date     string
		expected time.Time
	}{
		{"July 24, 2018", time.Date(2018, time.July, 24, 0, 0, 0, 0, time.Local)},
		{"July 17, 2018", time.Date(2018, time.July, 17, 0, 0, 0, 0, time.Local)},
		{"  July 17, 2018 ", time.Date(2018, time.July, 17, 0, 0, 0, 0, time.Local)},
		{"2018-07-24", time.Date(2018, time.July, 24, 0, 0, 0, 0, time.Local)},
	}

	for _, test := range tests {
		result, err := ParseDate(test.date)
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", test.date, err)
			continue
		}
		if !result.Equal(test.expected) {
			t.Errorf("ParseDate(%q) = %v, expected %v", test.date, result, test.expected)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, date := range []string{"", "   ", "not a date"} {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) expected error", date)
		}
	}
}

func TestArchivePath(t *testing.T) {
	record := &model.VideoRecord{Date: "July 24, 2018"}

	path, err := ArchivePath("list.txt", record)
	if err != nil {
		t.Fatalf("ArchivePath failed: %v", err)
	}

	want := time.Date(2018, time.July, 24, 0, 0, 0, 0, time.Local).UnixMilli()
	suffix := strings.TrimPrefix(path, "list.txt.")
	got, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		t.Fatalf("Suffix %q is not a number: %v", suffix, err)
	}
	if got != want {
		t.Errorf("Expected suffix %d, got %d", want, got)
	}
}

func TestArchive(t *testing.T) {
	canonical := writeList(t, sampleList)
	record := &model.VideoRecord{Date: "July 17, 2018"}

	target, err := Archive(canonical, record)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if filepath.Dir(target) != filepath.Dir(canonical) {
		t.Errorf("Snapshot should live next to the worklist, got %s", target)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}
	if string(data) != sampleList {
		t.Error("Snapshot is not byte-identical to the worklist")
	}
}

func TestArchive_BadDateWritesNothing(t *testing.T) {
	canonical := writeList(t, sampleList)
	record := &model.VideoRecord{Date: "someday"}

	if _, err := Archive(canonical, record); err == nil {
		t.Fatal("Expected error for unparseable date")
	}

	entries, err := os.ReadDir(filepath.Dir(canonical))
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the worklist on disk, got %d entries", len(entries))
	}
}

func TestArchive_MissingWorklist(t *testing.T) {
	canonical := filepath.Join(t.TempDir(), DefaultFileName)
	record := &model.VideoRecord{Date: "July 17, 2018"}

	if _, err := Archive(canonical, record); err == nil {
		t.Fatal("Expected error for missing worklist")
	}
}
