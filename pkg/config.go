package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
)

// Config represents the fileutils configuration
type Config struct {
	configPath string
	ini        *ini.File
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default string // Algorithm used by FileHash when none is given
}

// OutputConfig represents digest rendering configuration
type OutputConfig struct {
	DigestWidth string // fixed or minimal
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // Default verbose level (0=quiet, 1=basic, 2=detailed, 3=trace)
	Debug string // Default debug flags (comma-separated)
}

// PerformanceConfig represents performance-related configuration
type PerformanceConfig struct {
	HashWorkers int    // Concurrent hash workers for FindDuplicates (default: 4)
	HashBuffer  string // Read buffer size for hashing (default: "8K")
}

// MoveConfig represents MoveFile configuration
type MoveConfig struct {
	DirMode     os.FileMode // Mode for directories created by MoveFile
	CrossDevice string      // copy or fail when rename crosses filesystems
}

// AllConfig represents all configuration options
type AllConfig struct {
	Hash        *HashConfig
	Output      *OutputConfig
	Verbose     *VerboseConfig
	Performance *PerformanceConfig
	Move        *MoveConfig
}

// LoadConfig loads configuration from <dir>/config, writing a default file
// if none exists yet
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "config")

	cfg := &Config{
		configPath: configPath,
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.ini = ini.Empty()
		if err := cfg.setDefaults(); err != nil {
			return nil, fmt.Errorf("failed to set default config: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	} else {
		iniFile, err := ini.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.ini = iniFile
	}

	return cfg, nil
}

// NewDefaultConfig returns an in-memory configuration holding the defaults.
// Save fails on it until a path is given via SaveTo.
func NewDefaultConfig() *Config {
	cfg := &Config{ini: ini.Empty()}
	if err := cfg.setDefaults(); err != nil {
		// only reachable if ini rejects a hard-coded section name
		panic(err)
	}
	return cfg
}

// setDefaults sets default configuration values
func (c *Config) setDefaults() error {
	defaults := []struct {
		section string
		key     string
		value   string
	}{
		{"filehash", "default", DefaultHashAlgorithm},
		{"output", "digest_width", DigestWidthFixed},
		{"verbose", "level", "0"},
		{"verbose", "debug", ""},
		{"performance", "hash_workers", strconv.Itoa(DefaultHashWorkers)},
		{"performance", "hash_buffer", DefaultHashBuffer},
		{"move", "dir_mode", DefaultDirMode},
		{"move", "cross_device", CrossDeviceCopy},
	}

	for _, d := range defaults {
		section, err := c.ini.GetSection(d.section)
		if err != nil {
			section, err = c.ini.NewSection(d.section)
			if err != nil {
				return fmt.Errorf("failed to create %s section: %w", d.section, err)
			}
		}
		if _, err := section.NewKey(d.key, d.value); err != nil {
			return fmt.Errorf("failed to set default %s.%s: %w", d.section, d.key, err)
		}
	}

	return nil
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	hashConfig := &HashConfig{
		Default: DefaultHashAlgorithm,
	}

	if c.ini.HasSection("filehash") {
		section := c.ini.Section("filehash")
		if section.HasKey("default") {
			hashConfig.Default = section.Key("default").String()
		}
	}

	return hashConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		DigestWidth: DigestWidthFixed,
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("digest_width") {
			if width := strings.ToLower(section.Key("digest_width").String()); ValidateDigestWidth(width) == nil {
				outputConfig.DigestWidth = width
			}
		}
	}

	return outputConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{}

	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}

	return verboseConfig
}

// GetPerformanceConfig returns the performance configuration
func (c *Config) GetPerformanceConfig() *PerformanceConfig {
	performanceConfig := &PerformanceConfig{
		HashWorkers: DefaultHashWorkers,
		HashBuffer:  DefaultHashBuffer,
	}

	if c.ini.HasSection("performance") {
		section := c.ini.Section("performance")
		if section.HasKey("hash_workers") {
			if workers, err := section.Key("hash_workers").Int(); err == nil {
				performanceConfig.HashWorkers = workers
			}
		}
		if section.HasKey("hash_buffer") {
			if bufferSize := section.Key("hash_buffer").String(); bufferSize != "" {
				performanceConfig.HashBuffer = bufferSize
			}
		}
	}

	return performanceConfig
}

// GetMoveConfig returns the move configuration
func (c *Config) GetMoveConfig() *MoveConfig {
	moveConfig := &MoveConfig{
		DirMode:     0o755,
		CrossDevice: CrossDeviceCopy,
	}

	if c.ini.HasSection("move") {
		section := c.ini.Section("move")
		if section.HasKey("dir_mode") {
			if mode, err := ParseFileMode(section.Key("dir_mode").String()); err == nil {
				moveConfig.DirMode = mode
			}
		}
		if section.HasKey("cross_device") {
			if policy := strings.ToLower(section.Key("cross_device").String()); ValidateCrossDevice(policy) == nil {
				moveConfig.CrossDevice = policy
			}
		}
	}

	return moveConfig
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Hash:        c.GetHashConfig(),
		Output:      c.GetOutputConfig(),
		Verbose:     c.GetVerboseConfig(),
		Performance: c.GetPerformanceConfig(),
		Move:        c.GetMoveConfig(),
	}
}

// SetHashDefault sets the default hash algorithm
func (c *Config) SetHashDefault(algorithm string) error {
	if err := ValidateHashAlgorithm(algorithm); err != nil {
		return err
	}
	c.ini.Section("filehash").Key("default").SetValue(algorithm)
	return c.Save()
}

// SetDigestWidth sets the hex rendering mode
func (c *Config) SetDigestWidth(width string) error {
	if err := ValidateDigestWidth(width); err != nil {
		return err
	}
	c.ini.Section("output").Key("digest_width").SetValue(strings.ToLower(width))
	return c.Save()
}

// SetCrossDevice sets the cross-device move policy
func (c *Config) SetCrossDevice(policy string) error {
	if err := ValidateCrossDevice(policy); err != nil {
		return err
	}
	c.ini.Section("move").Key("cross_device").SetValue(strings.ToLower(policy))
	return c.Save()
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("config has no file path")
	}
	return c.ini.SaveTo(c.configPath)
}

// SaveTo saves the configuration to path and remembers it for later saves
func (c *Config) SaveTo(path string) error {
	c.configPath = path
	return c.Save()
}

// ApplyOverrides applies key:value overrides to the configuration
// Accepts strings like "default:sha1", "digest_width:minimal", "level:2", "cross_device:fail"
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "default":
			c.ini.Section("filehash").Key("default").SetValue(value)
		case "digest_width":
			c.ini.Section("output").Key("digest_width").SetValue(value)
		case "level":
			c.ini.Section("verbose").Key("level").SetValue(value)
		case "debug":
			c.ini.Section("verbose").Key("debug").SetValue(value)
		case "hash_workers":
			c.ini.Section("performance").Key("hash_workers").SetValue(value)
		case "hash_buffer":
			c.ini.Section("performance").Key("hash_buffer").SetValue(value)
		case "dir_mode":
			c.ini.Section("move").Key("dir_mode").SetValue(value)
		case "cross_device":
			c.ini.Section("move").Key("cross_device").SetValue(value)
		default:
			return fmt.Errorf("unsupported override key '%s' (supported: default, digest_width, level, debug, hash_workers, hash_buffer, dir_mode, cross_device)", key)
		}
	}

	return nil
}

// ValidateHashAlgorithm validates that a hash algorithm is supported
func ValidateHashAlgorithm(algorithm string) error {
	if _, ok := HashTypeFromName(algorithm); !ok {
		return fmt.Errorf("unsupported hash algorithm: %s (supported: %s)",
			algorithm, strings.Join(SupportedHashAlgorithms(), ", "))
	}
	return nil
}

// ValidateDigestWidth validates a digest width mode
func ValidateDigestWidth(width string) error {
	switch strings.ToLower(width) {
	case DigestWidthFixed, DigestWidthMinimal:
		return nil
	default:
		return fmt.Errorf("unsupported digest width: %s (supported: fixed, minimal)", width)
	}
}

// ValidateCrossDevice validates a cross-device move policy
func ValidateCrossDevice(policy string) error {
	switch strings.ToLower(policy) {
	case CrossDeviceCopy, CrossDeviceFail:
		return nil
	default:
		return fmt.Errorf("unsupported cross-device policy: %s (supported: copy, fail)", policy)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}

// ValidateHashWorkers validates that the hash worker count is reasonable
func ValidateHashWorkers(workers int) error {
	if workers < 1 {
		return fmt.Errorf("hash workers must be at least 1, got: %d", workers)
	}
	if workers > 64 {
		return fmt.Errorf("hash workers should not exceed 64, got: %d", workers)
	}
	return nil
}
