package fileutils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseHumanSize parses human-readable size strings (e.g., "8K", "512k", "2M")
func ParseHumanSize(sizeStr string) (int, error) {
	if sizeStr == "" {
		return 0, fmt.Errorf("empty size string")
	}

	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))

	// Split at the first non-numeric character
	numEnd := len(sizeStr)
	for i, char := range sizeStr {
		if (char < '0' || char > '9') && char != '.' {
			numEnd = i
			break
		}
	}
	numPart, suffix := sizeStr[:numEnd], strings.TrimSpace(sizeStr[numEnd:])

	if numPart == "" {
		return 0, fmt.Errorf("no numeric part in size string: %s", sizeStr)
	}

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric part in size string %s: %w", sizeStr, err)
	}

	var multiplier int64
	switch suffix {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size suffix: %s", suffix)
	}

	result := int64(num * float64(multiplier))
	if result <= 0 {
		return 0, fmt.Errorf("size must be positive: %s", sizeStr)
	}
	if result > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("size too large: %s", sizeStr)
	}

	return int(result), nil
}

// ParseFileMode parses an octal permission string such as "0755" or "750"
func ParseFileMode(modeStr string) (os.FileMode, error) {
	modeStr = strings.TrimSpace(modeStr)
	if modeStr == "" {
		return 0, fmt.Errorf("empty file mode")
	}

	mode, err := strconv.ParseUint(strings.TrimPrefix(modeStr, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", modeStr, err)
	}
	if mode > 0o777 {
		return 0, fmt.Errorf("file mode %q has bits outside 0777", modeStr)
	}

	return os.FileMode(mode), nil
}
