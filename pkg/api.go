package fileutils

import "time"

// This file exposes the operations as free functions over a default,
// configuration-free FileUtils

var defaultUtils = &FileUtils{}

// ConfigureLogging applies the [verbose] section of cfg to the package logger
func ConfigureLogging(cfg *Config) {
	verboseConfig := cfg.GetVerboseConfig()
	if ValidateVerboseLevel(verboseConfig.Level) == nil {
		SetVerboseLevel(verboseConfig.Level)
	}
	if verboseConfig.Debug != "" {
		SetDebugFlags(verboseConfig.Debug)
	}
}

// HashFileToHexString hashes a regular file with the named algorithm
func HashFileToHexString(filePath string, algorithm string) (string, error) {
	return defaultUtils.HashFileToHexString(filePath, algorithm)
}

// FileHash returns the hex digest of a file, or "" on failure
func FileHash(filePath string, algorithm string) string {
	return defaultUtils.FileHash(filePath, algorithm)
}

// FileMD5 returns the MD5 hex digest of a file, or "" on failure
func FileMD5(filePath string) string {
	return defaultUtils.FileMD5(filePath)
}

// FileSHA1 returns the SHA-1 hex digest of a file, or "" on failure
func FileSHA1(filePath string) string {
	return defaultUtils.FileSHA1(filePath)
}

// FilesAreEqual reports whether two files have the same MD5 digest
func FilesAreEqual(pathA, pathB string) bool {
	return defaultUtils.FilesAreEqual(pathA, pathB)
}

// ContentsEqual compares two regular files byte by byte
func ContentsEqual(pathA, pathB string) (bool, error) {
	return defaultUtils.ContentsEqual(pathA, pathB)
}

// CreationTime returns the birth time of path without following symlinks
func CreationTime(path string) (time.Time, error) {
	return defaultUtils.CreationTime(path)
}

// CreationDate returns the creation date of path as yyyyMMdd, or "19700101"
func CreationDate(path string) string {
	return defaultUtils.CreationDate(path)
}

// MoveFile moves sourcePath into targetDir as newName (or its own name)
func MoveFile(sourcePath, targetDir, newName string) error {
	return defaultUtils.MoveFile(sourcePath, targetDir, newName)
}

// FindDuplicates groups paths by digest
func FindDuplicates(paths []string, algorithm string) ([]DuplicateGroup, error) {
	return defaultUtils.FindDuplicates(paths, algorithm)
}

// HashDirectory returns one digest over a directory tree
func HashDirectory(dir string, algorithm string) (string, error) {
	return defaultUtils.HashDirectory(dir, algorithm)
}
