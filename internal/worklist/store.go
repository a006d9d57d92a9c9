package worklist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ytget/nextvideo/internal/model"
	"github.com/ytget/nextvideo/internal/platform"
)

// DefaultFileName is the canonical worklist file name
const DefaultFileName = "list.txt"

// Indent used when the worklist is rewritten
const Indent = "  "

// ErrNotArray is returned when the worklist document is not a JSON array
var ErrNotArray = errors.New("worklist must be a JSON array")

// Load reads and parses the worklist file at path
func Load(path string) (model.Worklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worklist: %w", err)
	}
	return Decode(data)
}

// Decode parses a worklist document
func Decode(data []byte) (model.Worklist, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var list model.Worklist
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("failed to parse worklist: %w", err)
	}
	for i, record := range list {
		if record == nil {
			return nil, fmt.Errorf("failed to parse worklist: entry %d is null", i)
		}
	}
	return list, nil
}

// Encode serializes the worklist as JSON indented with two spaces.
// HTML characters are written as is and there is no trailing newline.
func Encode(list model.Worklist) ([]byte, error) {
	if list == nil {
		list = model.Worklist{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(list); err != nil {
		return nil, fmt.Errorf("failed to encode worklist: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Save overwrites the worklist file at path with the full list.
// The write is not atomic: a crash mid-write can leave a truncated file.
func Save(path string, list model.Worklist) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write worklist: %w", err)
	}
	return nil
}
