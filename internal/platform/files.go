package platform

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Accepted media filename pattern: V*.mp4
const (
	RequiredPrefix    = "V"
	RequiredExtension = ".mp4"
)

// ErrInvalidFilename is returned when a media filename does not match V*.mp4
var ErrInvalidFilename = errors.New("invalid media filename")

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FilenameFromURL returns the last segment of the URL's path component.
// Query string and fragment are ignored.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse url %q: %w", rawURL, err)
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return "", fmt.Errorf("%w: url %q has no file name", ErrInvalidFilename, rawURL)
	}
	return path.Base(u.Path), nil
}

// ValidateFilename checks that name starts with "V" and ends with ".mp4"
func ValidateFilename(name string) error {
	if !strings.HasPrefix(name, RequiredPrefix) || !strings.HasSuffix(name, RequiredExtension) {
		return fmt.Errorf("%w: %q must match %s*%s", ErrInvalidFilename, name, RequiredPrefix, RequiredExtension)
	}
	return nil
}

// MediaFilename derives and validates the media filename of a URL
func MediaFilename(rawURL string) (string, error) {
	name, err := FilenameFromURL(rawURL)
	if err != nil {
		return "", err
	}
	if err := ValidateFilename(name); err != nil {
		return "", err
	}
	return name, nil
}

// CopyFile copies src to dst byte for byte, creating or truncating dst.
// A partially written dst is removed on failure.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		RemoveBestEffort(dst)
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		RemoveBestEffort(dst)
		return n, fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return n, nil
}

// RemoveBestEffort deletes a partial file. A failed delete is logged and
// otherwise ignored; callers are already reporting the primary error.
func RemoveBestEffort(filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove partial file %s: %v", filePath, err)
	}
}

// FileExists reports whether a regular file exists at filePath
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}
