package download

import (
	"context"

	"github.com/ytget/nextvideo/internal/model"
)

// Fetcher defines the interface for the download service.
type Fetcher interface {
	SetUpdateCallback(func(*model.Transfer))

	// Fetch downloads url into dest and returns the finished transfer
	Fetch(ctx context.Context, url, dest string) (*model.Transfer, error)

	// DryRun reports whether Fetch skips the network entirely
	DryRun() bool
}
