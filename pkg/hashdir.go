package fileutils

import (
	"fmt"
	"os"

	"github.com/gosimple/hashdir"
)

// HashDirectory returns a single digest over every file path and file content
// below dir. Only md5, sha1, sha256 and sha512 are available here.
func (fu *FileUtils) HashDirectory(dir string, algorithm string) (string, error) {
	defer VerboseEnter()()

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}

	if algorithm == "" {
		algorithm = fu.getDefaultHashAlgorithmName()
	}
	algo, err := GetHashAlgorithm(algorithm)
	if err != nil {
		return "", err
	}
	if algo.TypeID == HashTypeBLAKE3 {
		return "", fmt.Errorf("%w: %s for directories", ErrDigestUnavailable, algo.Name)
	}

	digest, err := hashdir.Make(dir, algo.Name)
	if err != nil {
		return "", fmt.Errorf("failed to hash directory %s: %w", dir, err)
	}
	VerboseLog(2, "%s %s %s/", algo.Name, digest, dir)
	return digest, nil
}
