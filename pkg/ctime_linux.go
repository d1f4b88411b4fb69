//go:build linux

package fileutils

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

func creationTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return time.Time{}, ErrCreationTimeUnsupported
	}
	if err != nil {
		return time.Time{}, err
	}

	// Filesystems without birth time leave the bit clear
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, ErrCreationTimeUnsupported
	}

	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
