// Package fileutils provides file hashing, creation-date lookup, digest-based
// file comparison and a move helper.
//
// # Core API
//
// Every operation is available as a free function using built-in defaults:
//
//	sum := fileutils.FileMD5("/path/to/file")   // "" if it cannot be hashed
//	same := fileutils.FilesAreEqual(a, b)       // false if either fails
//	date := fileutils.CreationDate(path)        // "19700101" if unknown
//	err := fileutils.MoveFile(src, "/archive", "renamed.txt")
//
// Each lookup also has an explicit form that returns the error instead of a
// sentinel:
//
//	sum, err := fileutils.HashFileToHexString(path, "SHA-1")
//	t, err := fileutils.CreationTime(path)
//
// MoveFile reports bad arguments with ErrSourceNotExist and ErrInvalidTarget
// and, unlike a bare rename, always reports a failed move.
//
// # Configuration
//
// Settings live in an INI file loaded with LoadConfig:
//
//	cfg, err := fileutils.LoadConfig("/etc/fileutils")
//	fu := fileutils.New(cfg)
//	fu.FileHash(path, "") // configured default algorithm
//
// By default digests are zero-padded to the algorithm's full width. Setting
// [output] digest_width = minimal drops leading zeros instead.
//
// # Logging
//
//	fileutils.SetVerboseLevel(1)      // log swallowed failures to stderr
//	fileutils.SetDebugFlags("hash,move")
package fileutils
