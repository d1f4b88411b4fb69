package fileutils

import "errors"

// Errors returned by the file operations. Wrapped errors carry the path and
// the underlying cause; test for them with errors.Is.
var (
	// ErrSourceNotExist is returned by MoveFile when the source is missing or
	// is not a regular file.
	ErrSourceNotExist = errors.New("source file does not exist")

	// ErrInvalidTarget is returned by MoveFile when the target path exists
	// but is not a directory.
	ErrInvalidTarget = errors.New("target is not a valid directory")

	// ErrNotRegularFile is returned when hashing a path that is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrDigestUnavailable is returned for an unknown or unsupported hash algorithm.
	ErrDigestUnavailable = errors.New("digest algorithm unavailable")

	// ErrCreationTimeUnsupported is returned when the OS or filesystem does
	// not report a creation (birth) time.
	ErrCreationTimeUnsupported = errors.New("creation time not supported")

	// ErrChecksumMismatch is returned when a cross-device copy does not
	// reproduce the source bytes.
	ErrChecksumMismatch = errors.New("checksum mismatch after copy")
)
