package config

import (
	"strconv"
	"strings"
	"time"
)

// Settings keys, read from the environment or a .env file
const (
	KeyWorklistPath = "NEXTVIDEO_LIST"
	KeyDownloadDir  = "NEXTVIDEO_DIR"
	KeyDryRun       = "NEXTVIDEO_DRY_RUN"
	KeyHTTPTimeout  = "NEXTVIDEO_HTTP_TIMEOUT"
)

// Default values
const (
	DefaultWorklistPath = "list.txt"
	DefaultDownloadDir  = "."
	DefaultDryRun       = false
	DefaultHTTPTimeout  = time.Duration(0) // no timeout
)

// Settings manages application configuration
type Settings struct {
	prefs Preferences
}

// NewSettings creates a new settings manager
func NewSettings(prefs Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// GetWorklistPath returns the path of the canonical worklist file
func (s *Settings) GetWorklistPath() string {
	path := strings.TrimSpace(s.prefs.String(KeyWorklistPath))
	if path == "" {
		return DefaultWorklistPath
	}
	return path
}

// SetWorklistPath sets the path of the canonical worklist file
func (s *Settings) SetWorklistPath(path string) {
	s.prefs.SetString(KeyWorklistPath, path)
}

// GetDownloadDirectory returns the directory media files are written to
func (s *Settings) GetDownloadDirectory() string {
	dir := strings.TrimSpace(s.prefs.String(KeyDownloadDir))
	if dir == "" {
		return DefaultDownloadDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.prefs.SetString(KeyDownloadDir, dir)
}

// GetDryRun returns whether downloads are skipped. Unparseable values fall
// back to the default.
func (s *Settings) GetDryRun() bool {
	value := strings.TrimSpace(s.prefs.String(KeyDryRun))
	if value == "" {
		return DefaultDryRun
	}
	dryRun, err := strconv.ParseBool(value)
	if err != nil {
		return DefaultDryRun
	}
	return dryRun
}

// SetDryRun sets whether downloads are skipped
func (s *Settings) SetDryRun(dryRun bool) {
	s.prefs.SetString(KeyDryRun, strconv.FormatBool(dryRun))
}

// GetHTTPTimeout returns the whole-request timeout, zero meaning none
func (s *Settings) GetHTTPTimeout() time.Duration {
	value := strings.TrimSpace(s.prefs.String(KeyHTTPTimeout))
	if value == "" {
		return DefaultHTTPTimeout
	}
	timeout, err := time.ParseDuration(value)
	if err != nil || timeout < 0 {
		return DefaultHTTPTimeout
	}
	return timeout
}

// SetHTTPTimeout sets the whole-request timeout
func (s *Settings) SetHTTPTimeout(timeout time.Duration) {
	if timeout < 0 {
		timeout = 0
	}
	s.prefs.SetString(KeyHTTPTimeout, timeout.String())
}
