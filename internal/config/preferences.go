package config

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded on startup when present
const DefaultEnvFile = ".env"

// Preferences is the key/value store Settings reads from
type Preferences interface {
	String(key string) string
	SetString(key, value string)
}

// EnvPreferences stores settings in the process environment
type EnvPreferences struct{}

// NewEnvPreferences loads the given .env files into the environment and
// returns an environment-backed store. Missing files are skipped; variables
// already set in the environment win over file values.
func NewEnvPreferences(files ...string) (*EnvPreferences, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
	}
	return &EnvPreferences{}, nil
}

// String returns the environment value of key
func (p *EnvPreferences) String(key string) string {
	return os.Getenv(key)
}

// SetString sets key in the environment
func (p *EnvPreferences) SetString(key, value string) {
	os.Setenv(key, value)
}

// MemoryPreferences is an in-memory store
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPreferences creates a store seeded with values
func NewMemoryPreferences(values map[string]string) *MemoryPreferences {
	p := &MemoryPreferences{values: make(map[string]string, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

func (p *MemoryPreferences) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values[key]
}

func (p *MemoryPreferences) SetString(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}
