package exports

import "errors"

var (
	ErrValidation        = errors.New("invalid input")
	ErrTaskNotFound      = errors.New("export task not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrTaskNotCompleted  = errors.New("export task not completed")
	ErrFileMissing       = errors.New("export file missing")
	ErrLinkExpired       = errors.New("download link expired")
)
