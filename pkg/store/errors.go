package store

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid store configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS configuration")
	ErrInvalidRedisURL    = errors.New("failed to parse redis connection string")

	// Lookup errors
	ErrInvalidPath       = errors.New("invalid path") // key escapes the base directory
	ErrNotFound          = errors.New("dictionary object not found")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNotDirectory      = errors.New("path is not a directory")
	ErrIsDirectory       = errors.New("path is a directory")

	// Backend errors
	ErrFailedToOpenFile        = errors.New("failed to open file")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrBucketNotFound          = errors.New("bucket not found")
	ErrAccessDenied            = errors.New("access denied")
	ErrServiceUnavailable      = errors.New("service unavailable")
	ErrOperationTimeout        = errors.New("operation timed out")
	ErrOperationCanceled       = errors.New("operation canceled")
	ErrRedisNotReady           = errors.New("redis did not become ready within the given time period")
)
