//go:build unix

package fileutils

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isCrossDevice reports whether a rename failed because source and target
// live on different filesystems
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
