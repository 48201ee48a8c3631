package errors

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidFilePath  = errors.New("invalid file path")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidQuery     = errors.New("invalid query")
	ErrConfigNotFound   = errors.New("config not found")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrSearchFailed     = errors.New("search command failed")
)

func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func NewTimestampError(value string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

func NewQueryError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrInvalidQuery, field, value)
}

func NewSearchError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrSearchFailed, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}
