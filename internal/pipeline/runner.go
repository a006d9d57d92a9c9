package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ytget/nextvideo/internal/download"
	"github.com/ytget/nextvideo/internal/model"
	"github.com/ytget/nextvideo/internal/platform"
	"github.com/ytget/nextvideo/internal/worklist"
)

const RunIDPrefix = "run-"

// Config holds the paths a Runner works on
type Config struct {
	WorklistPath string // canonical worklist file
	DownloadDir  string // directory media files are written to
}

// Result describes what a run did
type Result struct {
	RunID    string
	Status   model.RunStatus
	Record   *model.VideoRecord // selected record, nil if none
	File     string             // media file path
	Archive  string             // snapshot path
	Transfer *model.Transfer
}

// Runner sequences the stages of a single download pass
type Runner struct {
	cfg     Config
	fetcher download.Fetcher
	logger  *log.Logger
}

// NewRunner creates a runner. A nil logger writes to stdout.
func NewRunner(cfg Config, fetcher download.Fetcher, logger *log.Logger) *Runner {
	if cfg.WorklistPath == "" {
		cfg.WorklistPath = worklist.DefaultFileName
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	return &Runner{cfg: cfg, fetcher: fetcher, logger: logger}
}

// Run downloads the next pending video of the worklist.
//
// The canonical worklist is rewritten only after the download and the
// snapshot both succeed. If the snapshot fails the media file stays on disk
// while the worklist still lists it as pending; the next run downloads it
// again.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: RunIDPrefix + uuid.NewString()}
	logger := log.New(r.logger.Writer(), r.logger.Prefix()+"["+res.RunID+"] ", r.logger.Flags())

	list, err := worklist.Load(r.cfg.WorklistPath)
	if err != nil {
		return r.fail(logger, res, model.RunStatusLoadFailed, wrap(ErrLoad, err))
	}

	record, ok := list.Next()
	if !ok {
		logger.Printf("Nothing to download, all %d videos are downloaded", len(list))
		res.Status = model.RunStatusNothingToDo
		return res, nil
	}
	res.Record = record
	logger.Printf("Going to download: %s", record)

	name, err := platform.MediaFilename(record.URL)
	if err != nil {
		logger.Printf("Problem with filename, quitting")
		return r.fail(logger, res, model.RunStatusInvalidFilename, wrap(ErrInvalidFilename, err))
	}
	res.File = filepath.Join(r.cfg.DownloadDir, name)
	logger.Printf("File being written: %s", res.File)

	transfer, err := r.fetcher.Fetch(ctx, record.URL, res.File)
	res.Transfer = transfer
	if err != nil {
		return r.fail(logger, res, model.RunStatusFetchFailed, wrap(ErrFetch, fmt.Errorf("%s: %w", record.URL, err)))
	}
	if transfer != nil {
		transfer.Title = record.Title
	}
	logger.Printf("Done!")

	// The snapshot copies the file on disk, which does not carry the flag yet.
	list.MarkDownloaded(record)

	archive, err := worklist.Archive(r.cfg.WorklistPath, record)
	if err != nil {
		return r.fail(logger, res, model.RunStatusArchiveFailed, wrap(ErrArchive, err))
	}
	res.Archive = archive
	logger.Printf("Archived worklist to %s", archive)

	if err := worklist.Save(r.cfg.WorklistPath, list); err != nil {
		return r.fail(logger, res, model.RunStatusPersistFailed, wrap(ErrPersist, err))
	}

	res.Status = model.RunStatusDownloaded
	if r.fetcher.DryRun() {
		res.Status = model.RunStatusDryRun
	}
	logger.Printf("Marked %s as downloaded, %.0f%% of the worklist done", record.URL, list.Progress())
	return res, nil
}

func (r *Runner) fail(logger *log.Logger, res *Result, status model.RunStatus, err error) (*Result, error) {
	res.Status = status
	logger.Printf("Run failed (%s): %v", status, err)
	return res, err
}
