package pipeline

import "errors"

// Errors returned by Runner.Run, one per failing stage
var (
	ErrLoad            = errors.New("failed to load worklist")
	ErrInvalidFilename = errors.New("problem with filename")
	ErrFetch           = errors.New("download failed")
	ErrArchive         = errors.New("failed to archive worklist")
	ErrPersist         = errors.New("failed to persist worklist")
)

// stageError ties a stage sentinel to the underlying cause so both match errors.Is
type stageError struct {
	stage error
	cause error
}

func (e *stageError) Error() string {
	return e.stage.Error() + ": " + e.cause.Error()
}

func (e *stageError) Unwrap() []error {
	return []error{e.stage, e.cause}
}

func wrap(stage, cause error) error {
	return &stageError{stage: stage, cause: cause}
}
