package model

// RunStatus represents the terminal outcome of one invocation
type RunStatus string

const (
	// RunStatusNothingToDo means every record was already downloaded
	RunStatusNothingToDo RunStatus = "nothing_to_do"

	// RunStatusDownloaded means a video was fetched, archived and persisted
	RunStatusDownloaded RunStatus = "downloaded"

	// RunStatusDryRun means the pipeline ran without touching the network
	RunStatusDryRun RunStatus = "dry_run"

	// RunStatusLoadFailed means the worklist could not be read or parsed
	RunStatusLoadFailed RunStatus = "load_failed"

	// RunStatusInvalidFilename means the URL basename is not an accepted media name
	RunStatusInvalidFilename RunStatus = "invalid_filename"

	// RunStatusFetchFailed means the transfer failed and the partial file was removed
	RunStatusFetchFailed RunStatus = "fetch_failed"

	// RunStatusArchiveFailed means the download succeeded but the snapshot could not be written
	RunStatusArchiveFailed RunStatus = "archive_failed"

	// RunStatusPersistFailed means the snapshot exists but the worklist rewrite failed
	RunStatusPersistFailed RunStatus = "persist_failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsFailure returns true if the run ended in any failure state
func (rs RunStatus) IsFailure() bool {
	switch rs {
	case RunStatusNothingToDo, RunStatusDownloaded, RunStatusDryRun:
		return false
	}
	return true
}

// LeftMediaFile returns true if the run ended with a downloaded file on disk
func (rs RunStatus) LeftMediaFile() bool {
	return rs == RunStatusDownloaded || rs == RunStatusArchiveFailed || rs == RunStatusPersistFailed
}
