package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/nextvideo/internal/model"
	"github.com/ytget/nextvideo/internal/platform"
)

const (
	// DefaultProgressInterval throttles update callbacks while bytes arrive
	DefaultProgressInterval = 500 * time.Millisecond

	TransferIDPrefix = "transfer-"
)

// ErrUnexpectedStatus is returned for non-2xx responses
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Options configures a download Service
type Options struct {
	// DryRun skips the request and the file write; Fetch reports success
	DryRun bool

	// Client performs the request; nil means a client without timeout
	Client *http.Client

	// ProgressInterval throttles update callbacks; zero means the default
	ProgressInterval time.Duration
}

// Service handles download operations
type Service struct {
	client           *http.Client
	dryRun           bool
	progressInterval time.Duration
	onUpdate         func(*model.Transfer) // callback for progress updates
}

// NewService creates a new download service
func NewService(opts Options) *Service {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &Service{
		client:           client,
		dryRun:           opts.DryRun,
		progressInterval: interval,
	}
}

// SetUpdateCallback sets the callback function for transfer updates
func (s *Service) SetUpdateCallback(callback func(*model.Transfer)) {
	s.onUpdate = callback
}

// DryRun reports whether the service skips downloads
func (s *Service) DryRun() bool {
	return s.dryRun
}

// Fetch performs a GET of url and streams the body to dest, creating or
// truncating it. On failure the partial dest is removed and the transfer,
// with LastError set, is returned alongside the error. On success dest is
// closed before Fetch returns.
func (s *Service) Fetch(ctx context.Context, url, dest string) (*model.Transfer, error) {
	transfer := &model.Transfer{
		ID:         generateTransferID(),
		URL:        url,
		OutputPath: dest,
		TotalBytes: -1,
		StartedAt:  time.Now(),
	}

	if s.dryRun {
		log.Printf("Dry run, skipping download of %s", url)
		transfer.FinishedAt = time.Now()
		return transfer, nil
	}

	err := s.fetch(ctx, transfer)
	transfer.FinishedAt = time.Now()
	if err != nil {
		transfer.LastError = err.Error()
		s.notifyUpdate(transfer)
		return transfer, err
	}

	s.notifyUpdate(transfer)
	return transfer, nil
}

func (s *Service) fetch(ctx context.Context, transfer *model.Transfer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transfer.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	transfer.TotalBytes = resp.ContentLength

	file, err := os.OpenFile(transfer.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", transfer.OutputPath, err)
	}

	pw := &progressWriter{
		w:        file,
		transfer: transfer,
		interval: s.progressInterval,
		notify:   s.notifyUpdate,
	}
	if _, err := io.Copy(pw, resp.Body); err != nil {
		file.Close()
		platform.RemoveBestEffort(transfer.OutputPath)
		return fmt.Errorf("transfer failed: %w", err)
	}

	if err := file.Close(); err != nil {
		platform.RemoveBestEffort(transfer.OutputPath)
		return fmt.Errorf("failed to close %s: %w", transfer.OutputPath, err)
	}

	if transfer.TotalBytes >= 0 && transfer.BytesWritten != transfer.TotalBytes {
		platform.RemoveBestEffort(transfer.OutputPath)
		return fmt.Errorf("transfer failed: got %d of %d bytes", transfer.BytesWritten, transfer.TotalBytes)
	}
	return nil
}

// progressWriter counts written bytes and reports them at most once per interval
type progressWriter struct {
	w        io.Writer
	transfer *model.Transfer
	interval time.Duration
	notify   func(*model.Transfer)
	last     time.Time
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.transfer.BytesWritten += int64(n)

	now := time.Now()
	if now.Sub(p.last) >= p.interval {
		p.last = now
		updateSpeed(p.transfer, now)
		p.notify(p.transfer)
	}
	return n, err
}

func updateSpeed(transfer *model.Transfer, now time.Time) {
	elapsed := now.Sub(transfer.StartedAt)
	if elapsed.Seconds() > 0 {
		bytesPerSecond := float64(transfer.BytesWritten) / elapsed.Seconds()
		transfer.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(transfer *model.Transfer) {
	if s.onUpdate != nil {
		s.onUpdate(transfer)
	}
}

// generateTransferID generates a unique transfer ID
func generateTransferID() string {
	return TransferIDPrefix + uuid.NewString()
}
