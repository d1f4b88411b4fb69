package fileutils

import (
	"fmt"
	"strings"
)

// FileUtils runs the file operations against a configuration. The zero
// configuration (nil) uses the package defaults. A FileUtils holds no mutable
// state and is safe for concurrent use.
type FileUtils struct {
	config *Config
}

// New returns a FileUtils bound to cfg and applies cfg's verbose settings.
// cfg may be nil.
func New(cfg *Config) *FileUtils {
	if cfg != nil {
		ConfigureLogging(cfg)
	}
	return &FileUtils{config: cfg}
}

// Config returns the bound configuration, or nil
func (fu *FileUtils) Config() *Config {
	return fu.config
}

// HashFileToHexString hashes a regular file and returns its hex digest.
// Errors wrap ErrNotRegularFile, ErrDigestUnavailable or the I/O failure.
func (fu *FileUtils) HashFileToHexString(filePath string, algorithm string) (string, error) {
	algo, err := GetHashAlgorithm(algorithm)
	if err != nil {
		return "", err
	}

	bufferSize, err := fu.getHashBufferSize()
	if err != nil {
		return "", fmt.Errorf("failed to get hash buffer size: %w", err)
	}

	sum, err := HashFile(filePath, algo, bufferSize)
	if err != nil {
		return "", err
	}

	digest := FormatDigest(sum, fu.getDigestWidth())
	VerboseLog(2, "%s %s %s", algo.Name, digest, filePath)
	return digest, nil
}

// FileHash hashes a regular file and returns its hex digest, or "" on any
// failure. Failures are logged at verbose level 1. An empty algorithm name
// selects the configured default.
func (fu *FileUtils) FileHash(filePath string, algorithm string) string {
	if strings.TrimSpace(algorithm) == "" {
		algorithm = fu.getDefaultHashAlgorithmName()
	}

	digest, err := fu.HashFileToHexString(filePath, algorithm)
	if err != nil {
		VerboseLog(1, "hash %s failed: %v", filePath, err)
		return ""
	}
	return digest
}

// FileMD5 returns the MD5 hex digest of a file, or "" on failure
func (fu *FileUtils) FileMD5(filePath string) string {
	return fu.FileHash(filePath, "md5")
}

// FileSHA1 returns the SHA-1 hex digest of a file, or "" on failure
func (fu *FileUtils) FileSHA1(filePath string) string {
	return fu.FileHash(filePath, "sha1")
}

// getDefaultHashAlgorithmName gets the default hash algorithm from config
func (fu *FileUtils) getDefaultHashAlgorithmName() string {
	if fu.config == nil {
		return DefaultHashAlgorithm
	}
	return fu.config.GetHashConfig().Default
}

// getHashBufferSize gets the configured hash buffer size in bytes
func (fu *FileUtils) getHashBufferSize() (int, error) {
	if fu.config == nil {
		return ParseHumanSize(DefaultHashBuffer)
	}
	return ParseHumanSize(fu.config.GetPerformanceConfig().HashBuffer)
}

// getHashWorkers gets the configured worker count, clamped to a valid range
func (fu *FileUtils) getHashWorkers() int {
	if fu.config == nil {
		return DefaultHashWorkers
	}
	workers := fu.config.GetPerformanceConfig().HashWorkers
	if ValidateHashWorkers(workers) != nil {
		return DefaultHashWorkers
	}
	return workers
}

func (fu *FileUtils) getDigestWidth() string {
	if fu.config == nil {
		return DigestWidthFixed
	}
	return fu.config.GetOutputConfig().DigestWidth
}

func (fu *FileUtils) getMoveConfig() *MoveConfig {
	if fu.config == nil {
		return &MoveConfig{DirMode: 0o755, CrossDevice: CrossDeviceCopy}
	}
	return fu.config.GetMoveConfig()
}
