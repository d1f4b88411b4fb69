package fileutils

import "strings"

// Hash type constants
const (
	HashTypeMD5    uint16 = 1 // MD5 (16 bytes)
	HashTypeSHA1   uint16 = 2 // SHA-1 (20 bytes)
	HashTypeSHA256 uint16 = 3 // SHA-256 (32 bytes)
	HashTypeSHA512 uint16 = 4 // SHA-512 (64 bytes)
	HashTypeBLAKE3 uint16 = 5 // BLAKE3 (32 bytes)
)

// Hash size constants
const (
	HashSizeMD5    = 16 // MD5 hash size in bytes
	HashSizeSHA1   = 20 // SHA-1 hash size in bytes
	HashSizeSHA256 = 32 // SHA-256 hash size in bytes
	HashSizeSHA512 = 64 // SHA-512 hash size in bytes
	HashSizeBLAKE3 = 32 // BLAKE3 default output size in bytes
)

// Digest width modes for hex rendering
const (
	DigestWidthFixed   = "fixed"   // zero-padded to the algorithm's full width
	DigestWidthMinimal = "minimal" // big-integer rendering, leading zeros dropped
)

// Cross-device move policies
const (
	CrossDeviceCopy = "copy"
	CrossDeviceFail = "fail"
)

// Defaults used when no configuration is supplied
const (
	DefaultHashAlgorithm = "md5"
	DefaultHashBuffer    = "8K"
	DefaultHashWorkers   = 4
	DefaultDirMode       = "0755"
)

// DefaultCreationDate is returned by CreationDate when the creation time
// cannot be read. Consumers compare against it verbatim.
const DefaultCreationDate = "19700101"

// CreationDateLayout is the yyyyMMdd layout used by CreationDate.
const CreationDateLayout = "20060102"

// HashTypeName returns the human-readable name for a hash type
func HashTypeName(hashType uint16) string {
	switch hashType {
	case HashTypeMD5:
		return "md5"
	case HashTypeSHA1:
		return "sha1"
	case HashTypeSHA256:
		return "sha256"
	case HashTypeSHA512:
		return "sha512"
	case HashTypeBLAKE3:
		return "blake3"
	default:
		return "unknown"
	}
}

// HashTypeFromName returns the hash type constant from a name (case-insensitive,
// hyphens ignored so "SHA-1" and "sha1" are the same algorithm)
func HashTypeFromName(name string) (uint16, bool) {
	switch normaliseAlgorithmName(name) {
	case "md5":
		return HashTypeMD5, true
	case "sha1":
		return HashTypeSHA1, true
	case "sha256":
		return HashTypeSHA256, true
	case "sha512":
		return HashTypeSHA512, true
	case "blake3":
		return HashTypeBLAKE3, true
	default:
		return 0, false
	}
}

// normaliseAlgorithmName folds "SHA-1", "sha_1" and "Sha1" to "sha1"
func normaliseAlgorithmName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}
