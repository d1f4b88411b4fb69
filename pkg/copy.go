package fileutils

import (
	"fmt"
	"io"
	"os"
)

// copyThenRemove is the cross-device fallback for MoveFile: copy, sync,
// verify by MD5, then remove the source. The partial target is removed on
// any failure before the source is touched.
func (fu *FileUtils) copyThenRemove(src, dst string, perm os.FileMode) error {
	if err := copyOnce(src, dst, perm); err != nil {
		_ = os.Remove(dst)
		return err
	}

	srcSum, err := fu.HashFileToHexString(src, "md5")
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to verify source checksum: %w", err)
	}
	dstSum, err := fu.HashFileToHexString(dst, "md5")
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to verify target checksum: %w", err)
	}
	if srcSum != dstSum {
		_ = os.Remove(dst)
		return ErrChecksumMismatch
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied but failed to remove source: %w", err)
	}
	return nil
}

func copyOnce(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
