//go:build darwin || freebsd

package fileutils

import (
	"time"

	"golang.org/x/sys/unix"
)

func creationTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}, err
	}

	sec, nsec := st.Btim.Unix()
	return time.Unix(sec, nsec), nil
}
