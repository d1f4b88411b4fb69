package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MoveFile moves sourcePath into targetDir, named newName or, when newName is
// blank, the source's base name. A missing targetDir is created with its
// parents. Errors wrap ErrSourceNotExist or ErrInvalidTarget for bad
// arguments (nothing is changed on disk), otherwise the rename failure.
func (fu *FileUtils) MoveFile(sourcePath, targetDir, newName string) error {
	defer VerboseEnter()()

	srcInfo, err := os.Stat(sourcePath)
	if err != nil || !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("file %q: %w", sourcePath, ErrSourceNotExist)
	}

	targetInfo, err := os.Stat(targetDir)
	switch {
	case err == nil && !targetInfo.IsDir():
		return fmt.Errorf("%q: %w", targetDir, ErrInvalidTarget)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to stat target %s: %w", targetDir, err)
	}

	name := strings.TrimSpace(newName)
	if name == "" {
		name = filepath.Base(sourcePath)
	}
	targetPath := filepath.Join(targetDir, name)

	moveConfig := fu.getMoveConfig()
	if IsDebugEnabled("move") {
		VerboseLog(2, "move %s -> %s (dir mode %#o, cross-device %s)",
			sourcePath, targetPath, moveConfig.DirMode, moveConfig.CrossDevice)
	}

	if err := os.MkdirAll(targetDir, moveConfig.DirMode); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", targetDir, err)
	}

	err = os.Rename(sourcePath, targetPath)
	if err == nil {
		VerboseLog(2, "moved %s -> %s", sourcePath, targetPath)
		return nil
	}

	if !isCrossDevice(err) || moveConfig.CrossDevice != CrossDeviceCopy {
		return fmt.Errorf("failed to move %s to %s: %w", sourcePath, targetPath, err)
	}

	VerboseLog(2, "rename across devices, copying %s -> %s", sourcePath, targetPath)
	if err := fu.copyThenRemove(sourcePath, targetPath, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", sourcePath, targetPath, err)
	}
	return nil
}
