package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ytget/nextvideo/internal/config"
	"github.com/ytget/nextvideo/internal/download"
	"github.com/ytget/nextvideo/internal/model"
	"github.com/ytget/nextvideo/internal/pipeline"
	"github.com/ytget/nextvideo/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	log.SetOutput(os.Stdout)
	logger.Printf("nextvideo v%s starting...", version)

	prefs, err := config.NewEnvPreferences(config.DefaultEnvFile)
	if err != nil {
		logger.Printf("failed to load %s: %v", config.DefaultEnvFile, err)
		return 1
	}
	settings := config.NewSettings(prefs)

	downloadDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		logger.Printf("failed to ensure download dir: %v", err)
		return 1
	}

	fetcher := download.NewService(download.Options{
		DryRun: settings.GetDryRun(),
		Client: &http.Client{Timeout: settings.GetHTTPTimeout()},
	})
	fetcher.SetUpdateCallback(logProgress(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := pipeline.NewRunner(pipeline.Config{
		WorklistPath: settings.GetWorklistPath(),
		DownloadDir:  downloadDir,
	}, fetcher, logger)

	res, err := runner.Run(ctx)
	if err != nil {
		if res != nil && res.Status == model.RunStatusArchiveFailed {
			logger.Printf("%s is on disk but still pending in the worklist", res.File)
		}
		return 1
	}
	return 0
}

// logProgress prints transfer updates, at most one line per second
func logProgress(logger *log.Logger) func(*model.Transfer) {
	var last time.Time
	return func(t *model.Transfer) {
		if !t.FinishedAt.IsZero() {
			if t.LastError == "" {
				logger.Printf("%s: %s in %s", t.GetDisplayTitle(), t.GetProgressString(), t.Duration().Round(time.Millisecond))
			}
			return
		}
		if time.Since(last) < time.Second {
			return
		}
		last = time.Now()
		logger.Printf("%s: %s at %s", t.GetDisplayTitle(), t.GetProgressString(), t.Speed)
	}
}
