package fileutils

import (
	"fmt"
	"time"
)

// CreationTime returns the birth time of path without following symlinks.
// It returns an error wrapping ErrCreationTimeUnsupported when the platform or
// filesystem does not record one.
func (fu *FileUtils) CreationTime(path string) (time.Time, error) {
	t, err := creationTime(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read creation time of %s: %w", path, err)
	}
	return t, nil
}

// CreationDate returns the local creation date of path as yyyyMMdd, or
// DefaultCreationDate when it cannot be read
func (fu *FileUtils) CreationDate(path string) string {
	t, err := fu.CreationTime(path)
	if err != nil {
		VerboseLog(1, "creation date fallback %s: %v", DefaultCreationDate, err)
		return DefaultCreationDate
	}
	return t.Local().Format(CreationDateLayout)
}
