package fileutils

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DuplicateGroup represents a group of files with the same hash
type DuplicateGroup struct {
	Hash  string   `json:"hash"`
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// FindDuplicates hashes paths with up to performance.hash_workers goroutines
// and returns the groups of two or more files sharing a digest. Paths that
// cannot be hashed are logged and skipped. An empty algorithm selects the
// configured default.
func (fu *FileUtils) FindDuplicates(paths []string, algorithm string) ([]DuplicateGroup, error) {
	defer VerboseEnter()()

	if algorithm == "" {
		algorithm = fu.getDefaultHashAlgorithmName()
	}
	// Fail once up front rather than once per file
	if _, err := GetHashAlgorithm(algorithm); err != nil {
		return nil, err
	}

	var (
		mu         sync.Mutex
		duplicates = make(map[string][]string)
		seen       = make(map[string]bool)
	)

	g := new(errgroup.Group)
	g.SetLimit(fu.getHashWorkers())

	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true

		path := path
		g.Go(func() error {
			digest, err := fu.HashFileToHexString(path, algorithm)
			if err != nil {
				VerboseLog(1, "skipping %s: %v", path, err)
				return nil
			}
			mu.Lock()
			duplicates[digest] = append(duplicates[digest], path)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result []DuplicateGroup
	for hash, files := range duplicates {
		if len(files) > 1 {
			sort.Strings(files)
			result = append(result, DuplicateGroup{
				Hash:  hash,
				Files: files,
				Count: len(files),
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Hash < result[j].Hash
	})

	return result, nil
}
