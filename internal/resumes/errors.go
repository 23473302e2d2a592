package resumes

import "errors"

var (
	ErrNotFound           = errors.New("resume not found")
	ErrMissingUserEmail   = errors.New("user email not found")
	ErrMissingFields      = errors.New("missing required fields")
	ErrFileDownloadFailed = errors.New("failed to download file from URL")
	ErrPersistence        = errors.New("failed to save resume")
)
