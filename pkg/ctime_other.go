//go:build !linux && !darwin && !freebsd

package fileutils

import (
	"os"
	"time"
)

func creationTime(path string) (time.Time, error) {
	if _, err := os.Lstat(path); err != nil {
		return time.Time{}, err
	}
	return time.Time{}, ErrCreationTimeUnsupported
}
