package fileutils

import (
	"fmt"
	"os"

	"github.com/udhos/equalfile"
)

// FilesAreEqual reports whether two files have the same MD5 digest. Both
// digests are always computed; if either cannot be computed the files are
// reported unequal, even when both paths name the same file.
func (fu *FileUtils) FilesAreEqual(pathA, pathB string) bool {
	defer VerboseEnter()()

	digestA := fu.FileMD5(pathA)
	digestB := fu.FileMD5(pathB)
	if digestA == "" || digestB == "" {
		return false
	}
	return digestA == digestB
}

// ContentsEqual compares two regular files byte by byte
func (fu *FileUtils) ContentsEqual(pathA, pathB string) (bool, error) {
	for _, p := range []string{pathA, pathB} {
		info, err := os.Stat(p)
		if err != nil {
			return false, fmt.Errorf("failed to stat file %s: %w", p, err)
		}
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("cannot compare %s: %w", p, ErrNotRegularFile)
		}
	}

	bufferSize, err := fu.getHashBufferSize()
	if err != nil {
		return false, fmt.Errorf("failed to get hash buffer size: %w", err)
	}

	cmp := equalfile.New(make([]byte, bufferSize), equalfile.Options{})
	equal, err := cmp.CompareFile(pathA, pathB)
	if err != nil {
		return false, fmt.Errorf("failed to compare %s and %s: %w", pathA, pathB, err)
	}
	return equal, nil
}
