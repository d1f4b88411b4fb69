package fileutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	tempDir := t.TempDir()

	// Load config (should create default)
	config, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	allConfig := config.GetAllConfig()
	if allConfig.Hash.Default != "md5" {
		t.Errorf("Expected default hash algorithm 'md5', got '%s'", allConfig.Hash.Default)
	}
	if allConfig.Output.DigestWidth != DigestWidthFixed {
		t.Errorf("Expected default digest width 'fixed', got '%s'", allConfig.Output.DigestWidth)
	}
	if allConfig.Verbose.Level != 0 || allConfig.Verbose.Debug != "" {
		t.Errorf("Expected quiet verbose defaults, got %+v", allConfig.Verbose)
	}
	if allConfig.Performance.HashWorkers != 4 || allConfig.Performance.HashBuffer != "8K" {
		t.Errorf("Unexpected performance defaults: %+v", allConfig.Performance)
	}
	if allConfig.Move.DirMode != 0o755 || allConfig.Move.CrossDevice != CrossDeviceCopy {
		t.Errorf("Unexpected move defaults: %+v", allConfig.Move)
	}

	configPath := filepath.Join(tempDir, "config")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestConfigLoadExisting(t *testing.T) {
	tempDir := t.TempDir()
	content := strings.Join([]string{
		"[filehash]",
		"default = sha1",
		"[output]",
		"digest_width = minimal",
		"[move]",
		"cross_device = fail",
		"dir_mode = 0700",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(tempDir, "config"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := config.GetHashConfig().Default; got != "sha1" {
		t.Errorf("Expected hash default 'sha1', got '%s'", got)
	}
	if got := config.GetOutputConfig().DigestWidth; got != DigestWidthMinimal {
		t.Errorf("Expected digest width 'minimal', got '%s'", got)
	}
	moveConfig := config.GetMoveConfig()
	if moveConfig.CrossDevice != CrossDeviceFail {
		t.Errorf("Expected cross_device 'fail', got '%s'", moveConfig.CrossDevice)
	}
	if moveConfig.DirMode != 0o700 {
		t.Errorf("Expected dir mode 0700, got %#o", moveConfig.DirMode)
	}
	// Missing sections fall back to defaults
	if got := config.GetPerformanceConfig().HashBuffer; got != DefaultHashBuffer {
		t.Errorf("Expected default hash buffer, got '%s'", got)
	}
}

func TestConfigLoadInvalidFile(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "config"), []byte("[broken\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(tempDir); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestConfigOverrides(t *testing.T) {
	config := NewDefaultConfig()

	err := config.ApplyOverrides([]string{
		"default:sha256",
		"digest_width:minimal",
		"level:2",
		"debug:hash,move",
		"hash_workers:8",
		"hash_buffer:64K",
		"dir_mode:0750",
		"cross_device:fail",
	})
	if err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}

	allConfig := config.GetAllConfig()
	if allConfig.Hash.Default != "sha256" {
		t.Errorf("Expected hash algorithm 'sha256' after override, got '%s'", allConfig.Hash.Default)
	}
	if allConfig.Output.DigestWidth != DigestWidthMinimal {
		t.Errorf("Expected digest width 'minimal' after override, got '%s'", allConfig.Output.DigestWidth)
	}
	if allConfig.Verbose.Level != 2 {
		t.Errorf("Expected verbose level 2 after override, got %d", allConfig.Verbose.Level)
	}
	if allConfig.Verbose.Debug != "hash,move" {
		t.Errorf("Expected debug flags 'hash,move' after override, got '%s'", allConfig.Verbose.Debug)
	}
	if allConfig.Performance.HashWorkers != 8 || allConfig.Performance.HashBuffer != "64K" {
		t.Errorf("Unexpected performance after override: %+v", allConfig.Performance)
	}
	if allConfig.Move.DirMode != 0o750 || allConfig.Move.CrossDevice != CrossDeviceFail {
		t.Errorf("Unexpected move after override: %+v", allConfig.Move)
	}

	if err := config.ApplyOverrides([]string{"nocolon"}); err == nil {
		t.Error("Expected error for override without colon")
	}
	if err := config.ApplyOverrides([]string{"colour:blue"}); err == nil {
		t.Error("Expected error for unsupported override key")
	}
}

func TestConfigInvalidValuesFallBack(t *testing.T) {
	config := NewDefaultConfig()
	if err := config.ApplyOverrides([]string{
		"digest_width:tiny",
		"dir_mode:rwx",
		"cross_device:teleport",
		"hash_workers:many",
	}); err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}

	if got := config.GetOutputConfig().DigestWidth; got != DigestWidthFixed {
		t.Errorf("Expected fallback digest width 'fixed', got '%s'", got)
	}
	moveConfig := config.GetMoveConfig()
	if moveConfig.DirMode != 0o755 || moveConfig.CrossDevice != CrossDeviceCopy {
		t.Errorf("Expected fallback move config, got %+v", moveConfig)
	}
	if got := config.GetPerformanceConfig().HashWorkers; got != DefaultHashWorkers {
		t.Errorf("Expected fallback hash workers, got %d", got)
	}
}

func TestConfigSetters(t *testing.T) {
	tempDir := t.TempDir()

	config, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if err := config.SetHashDefault("SHA-1"); err != nil {
		t.Fatalf("SetHashDefault failed: %v", err)
	}
	if err := config.SetDigestWidth("Minimal"); err != nil {
		t.Fatalf("SetDigestWidth failed: %v", err)
	}
	if err := config.SetCrossDevice("fail"); err != nil {
		t.Fatalf("SetCrossDevice failed: %v", err)
	}
	if err := config.SetHashDefault("md4"); err == nil {
		t.Error("Expected SetHashDefault to reject md4")
	}

	// Setters persist; reload and verify
	reloaded, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if got := reloaded.GetHashConfig().Default; got != "SHA-1" {
		t.Errorf("Expected persisted hash default 'SHA-1', got '%s'", got)
	}
	if got := reloaded.GetOutputConfig().DigestWidth; got != DigestWidthMinimal {
		t.Errorf("Expected persisted digest width 'minimal', got '%s'", got)
	}
	if got := reloaded.GetMoveConfig().CrossDevice; got != CrossDeviceFail {
		t.Errorf("Expected persisted cross-device 'fail', got '%s'", got)
	}
}

func TestDefaultConfigSave(t *testing.T) {
	config := NewDefaultConfig()
	if err := config.Save(); err == nil {
		t.Error("Expected Save without a path to fail")
	}

	path := filepath.Join(t.TempDir(), "saved.ini")
	if err := config.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "cross_device") {
		t.Errorf("Saved config missing move section:\n%s", data)
	}
}

func TestConfigValidation(t *testing.T) {
	t.Run("HashAlgorithm", func(t *testing.T) {
		testCases := []struct {
			algorithm string
			valid     bool
		}{
			{"md5", true},
			{"MD5", true},
			{"sha1", true},
			{"SHA-1", true},
			{"sha256", true},
			{"sha512", true},
			{"blake3", true},
			{"md4", false},
			{"", false},
		}

		for _, tc := range testCases {
			err := ValidateHashAlgorithm(tc.algorithm)
			if tc.valid && err != nil {
				t.Errorf("Algorithm '%s' should be valid but got error: %v", tc.algorithm, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("Algorithm '%s' should be invalid but no error returned", tc.algorithm)
			}
		}
	})

	t.Run("DigestWidth", func(t *testing.T) {
		for _, width := range []string{"fixed", "minimal", "FIXED"} {
			if err := ValidateDigestWidth(width); err != nil {
				t.Errorf("Width '%s' should be valid: %v", width, err)
			}
		}
		if err := ValidateDigestWidth("wide"); err == nil {
			t.Error("Width 'wide' should be invalid")
		}
	})

	t.Run("CrossDevice", func(t *testing.T) {
		if err := ValidateCrossDevice("Copy"); err != nil {
			t.Errorf("Policy 'Copy' should be valid: %v", err)
		}
		if err := ValidateCrossDevice("skip"); err == nil {
			t.Error("Policy 'skip' should be invalid")
		}
	})

	t.Run("VerboseLevel", func(t *testing.T) {
		testCases := []struct {
			level int
			valid bool
		}{
			{0, true},
			{3, true},
			{-1, false},
			{4, false},
		}

		for _, tc := range testCases {
			err := ValidateVerboseLevel(tc.level)
			if tc.valid != (err == nil) {
				t.Errorf("ValidateVerboseLevel(%d) = %v, expected valid=%v", tc.level, err, tc.valid)
			}
		}
	})

	t.Run("HashWorkers", func(t *testing.T) {
		for workers, valid := range map[int]bool{0: false, 1: true, 64: true, 65: false} {
			if err := ValidateHashWorkers(workers); valid != (err == nil) {
				t.Errorf("ValidateHashWorkers(%d) = %v, expected valid=%v", workers, err, valid)
			}
		}
	})
}

func TestFileUtilsUsesConfig(t *testing.T) {
	defer SetVerboseLevel(0)
	defer SetDebugFlags("")

	tempDir := t.TempDir()
	file := writeTestFile(t, tempDir, "hello.txt", []byte("hello world"))

	config := NewDefaultConfig()
	if err := config.ApplyOverrides([]string{"default:sha1", "hash_buffer:1", "level:1", "debug:hash"}); err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}
	fu := New(config)

	if fu.Config() != config {
		t.Error("Expected Config() to return the bound configuration")
	}
	if GetVerboseLevel() != 1 || !IsDebugEnabled("hash") {
		t.Error("Expected New to apply verbose configuration")
	}
	if got := fu.FileHash(file, ""); got != "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed" {
		t.Errorf("Expected configured sha1 default, got %q", got)
	}

	if err := config.ApplyOverrides([]string{"hash_buffer:huge"}); err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}
	if _, err := fu.HashFileToHexString(file, "md5"); err == nil {
		t.Error("Expected error for unparseable hash buffer")
	}
}
