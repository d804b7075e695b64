package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig controls what gets scanned and what qualifies for deletion.
type ScanConfig struct {
	// Root is the directory tree to scan. Required; there is no default
	// on purpose — a cleanup tool should never guess where to delete.
	Root string `yaml:"root"`

	// MaxAgeDays is the staleness threshold: a file whose last access is
	// older than this is a deletion candidate.
	MaxAgeDays int `yaml:"max_age_days"`

	// ProtectedExtensions lists file extensions (with leading dot,
	// case-insensitive) that are never deleted regardless of age.
	ProtectedExtensions []string `yaml:"protected_extensions"`

	// ExcludeDirs lists directory names (case-insensitive) skipped
	// entirely during the walk.
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// ReportConfig controls the deleted-files report.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	File           string `yaml:"file,omitempty"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb,omitempty"`
	FileMaxFiles   int    `yaml:"file_max_files,omitempty"`
	FileMaxAgeDays int    `yaml:"file_max_age_days,omitempty"`
}

// Default returns a Config with sensible defaults. The 180-day threshold
// approximates six months.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxAgeDays:          180,
			ProtectedExtensions: []string{".app", ".framework", ".dylib"},
		},
		Report: ReportConfig{
			Path: "unused_files.txt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("FALLOW_ROOT"); v != "" {
		c.Scan.Root = v
	}
	if v := os.Getenv("FALLOW_MAX_AGE_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			c.Scan.MaxAgeDays = days
		}
	}
	if v := os.Getenv("FALLOW_PROTECTED_EXTS"); v != "" {
		c.Scan.ProtectedExtensions = strings.Split(v, ",")
	}
	if v := os.Getenv("FALLOW_REPORT"); v != "" {
		c.Report.Path = v
	}
	if v := os.Getenv("FALLOW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FALLOW_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("FALLOW_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate checks invariants and normalizes the protected extension list
// to lowercase with a leading dot.
func (c *Config) Validate() error {
	if c.Scan.MaxAgeDays <= 0 {
		return fmt.Errorf("max_age_days must be positive, got %d", c.Scan.MaxAgeDays)
	}
	if c.Report.Path == "" {
		return fmt.Errorf("report path is required")
	}

	exts := make([]string, 0, len(c.Scan.ProtectedExtensions))
	for _, ext := range c.Scan.ProtectedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Scan.ProtectedExtensions = exts

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	return nil
}

// MaxAge returns the staleness threshold as a duration.
func (c *ScanConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// NeverDeletePaths returns paths that must NEVER be deleted or used as a
// scan root under any circumstances.
func NeverDeletePaths() []string {
	paths := []string{
		"/",
		"/bin",
		"/boot",
		"/dev",
		"/etc",
		"/lib",
		"/proc",
		"/sbin",
		"/sys",
		"/usr",
		"/var",
		"/Applications",
		"/Library",
		"/System",
		"/private",
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Clean(home))
	}
	return paths
}
