package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON keys of the fields a record is known to carry
const (
	KeyURL        = "url"
	KeyTitle      = "title"
	KeyDate       = "date"
	KeyDownloaded = "downloaded"
)

// VideoRecord represents a single video entry of the worklist
type VideoRecord struct {
	URL        string // absolute HTTP URL of the media file
	Title      string // human readable title
	Date       string // human readable date, e.g. "July 24, 2018"
	Downloaded bool   // absent in JSON means false

	// fields keeps every key of the decoded object in document order, so
	// keys this program does not know about survive a rewrite untouched.
	fields []rawField
}

type rawField struct {
	key   string
	value json.RawMessage
}

// UnmarshalJSON decodes a record object, remembering key order and unknown keys
func (r *VideoRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("video record must be a JSON object, got %s", bytes.TrimSpace(data))
	}

	*r = VideoRecord{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token in video record: %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode field %q: %w", key, err)
		}

		if err := r.setKnown(key, value); err != nil {
			return err
		}
		r.fields = append(r.fields, rawField{key: key, value: value})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (r *VideoRecord) setKnown(key string, value json.RawMessage) error {
	var target any
	switch key {
	case KeyURL:
		target = &r.URL
	case KeyTitle:
		target = &r.Title
	case KeyDate:
		target = &r.Date
	case KeyDownloaded:
		target = &r.Downloaded
	default:
		return nil
	}
	if err := json.Unmarshal(value, target); err != nil {
		return fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return nil
}

// MarshalJSON encodes the record in its original key order. Records built in
// code emit url, title and date, plus downloaded once it is set.
func (r VideoRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	seen := make(map[string]bool, len(r.fields))
	n := 0
	write := func(key string, value any) error {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		if err := encodeCompact(&buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		return encodeCompact(&buf, value)
	}

	for _, f := range r.fields {
		if seen[f.key] {
			continue
		}
		seen[f.key] = true

		var err error
		if known, ok := r.knownValue(f.key); ok {
			err = write(f.key, known)
		} else {
			err = write(f.key, f.value)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(r.fields) == 0 {
		for _, key := range []string{KeyURL, KeyTitle, KeyDate} {
			known, _ := r.knownValue(key)
			if err := write(key, known); err != nil {
				return nil, err
			}
			seen[key] = true
		}
	}
	if r.Downloaded && !seen[KeyDownloaded] {
		if err := write(KeyDownloaded, true); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *VideoRecord) knownValue(key string) (any, bool) {
	switch key {
	case KeyURL:
		return r.URL, true
	case KeyTitle:
		return r.Title, true
	case KeyDate:
		return r.Date, true
	case KeyDownloaded:
		return r.Downloaded, true
	}
	return nil, false
}

// encodeCompact encodes v without HTML escaping and without the trailing newline
func encodeCompact(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Extra returns the raw value of a key this program does not interpret
func (r *VideoRecord) Extra(key string) (json.RawMessage, bool) {
	if _, known := r.knownValue(key); known {
		return nil, false
	}
	for _, f := range r.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// String returns a short description used in log lines
func (r *VideoRecord) String() string {
	if r == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q (%s, %s)", r.Title, r.Date, r.URL)
}
