package fileutils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"math/big"
	"os"

	"github.com/zeebo/blake3"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	TypeID  uint16
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name.
// Names are case-insensitive and may be hyphenated ("SHA-1").
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch normaliseAlgorithmName(name) {
	case "md5":
		return &HashAlgorithm{
			Name:    "md5",
			TypeID:  HashTypeMD5,
			Size:    HashSizeMD5,
			NewFunc: func() hash.Hash { return md5.New() },
		}, nil
	case "sha1":
		return &HashAlgorithm{
			Name:    "sha1",
			TypeID:  HashTypeSHA1,
			Size:    HashSizeSHA1,
			NewFunc: func() hash.Hash { return sha1.New() },
		}, nil
	case "sha256":
		return &HashAlgorithm{
			Name:    "sha256",
			TypeID:  HashTypeSHA256,
			Size:    HashSizeSHA256,
			NewFunc: func() hash.Hash { return sha256.New() },
		}, nil
	case "sha512":
		return &HashAlgorithm{
			Name:    "sha512",
			TypeID:  HashTypeSHA512,
			Size:    HashSizeSHA512,
			NewFunc: func() hash.Hash { return sha512.New() },
		}, nil
	case "blake3":
		return &HashAlgorithm{
			Name:    "blake3",
			TypeID:  HashTypeBLAKE3,
			Size:    HashSizeBLAKE3,
			NewFunc: func() hash.Hash { return blake3.New() },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrDigestUnavailable, name)
	}
}

// GetHashAlgorithmByType returns the hash algorithm configuration for the given type ID
func GetHashAlgorithmByType(typeID uint16) (*HashAlgorithm, error) {
	name := HashTypeName(typeID)
	if name == "unknown" {
		return nil, fmt.Errorf("%w: type ID %d", ErrDigestUnavailable, typeID)
	}
	return GetHashAlgorithm(name)
}

// SupportedHashAlgorithms lists the canonical algorithm names in type ID order
func SupportedHashAlgorithms() []string {
	return []string{"md5", "sha1", "sha256", "sha512", "blake3"}
}

// HashFile streams a regular file through the algorithm using a buffer of
// bufferSize bytes and returns the raw digest. The buffer size affects only
// throughput, never the result.
func HashFile(filePath string, algorithm *HashAlgorithm, bufferSize int) ([]byte, error) {
	defer VerboseEnter()()

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", filePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot hash %s: %w", filePath, ErrNotRegularFile)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	if bufferSize <= 0 {
		bufferSize = 8 * 1024
	}
	if IsDebugEnabled("hash") {
		VerboseLog(3, "hashing %s with %s, buffer %d bytes", filePath, algorithm.Name, bufferSize)
	}

	hasher := algorithm.NewFunc()
	buffer := make([]byte, bufferSize)

	for {
		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read from file %s: %w", filePath, err)
		}
	}

	return hasher.Sum(nil), nil
}

// FormatDigest renders a digest as lowercase hex. DigestWidthFixed keeps every
// byte (MD5 is always 32 characters); DigestWidthMinimal treats the digest as
// a non-negative integer and drops leading zeros, so an all-zero digest is "0".
func FormatDigest(sum []byte, width string) string {
	if width == DigestWidthMinimal {
		return new(big.Int).SetBytes(sum).Text(16)
	}
	return hex.EncodeToString(sum)
}

// HashStringToHexString calculates the hash of a string and returns it as fixed-width hex
func HashStringToHexString(data string, algorithm *HashAlgorithm) string {
	hasher := algorithm.NewFunc()
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
