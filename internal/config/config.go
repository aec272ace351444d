package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	StateDir         string `toml:"state_dir"`
	LogDir           string `toml:"log_dir"`
	DefaultOutputDir string `toml:"default_output_dir"`
	APIBind          string `toml:"api_bind"`
	APIToken         string `toml:"api_token"`
}

// Dialog selects the native picker used for file and folder selection.
type Dialog struct {
	Backend string `toml:"backend"`
}

// Window contains the settings window presentation.
type Window struct {
	SettingsTitle  string `toml:"settings_title"`
	SettingsWidth  int    `toml:"settings_width"`
	SettingsHeight int    `toml:"settings_height"`
	LaunchBrowser  bool   `toml:"launch_browser"`
}

// FFmpeg contains the ffmpeg binary location used for status reporting.
type FFmpeg struct {
	Path string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mediaconv.
//
// Configuration sections by subsystem:
//   - Paths: runtime state, logs, default output directory, API bind address and token
//   - Dialog: native picker backend
//   - Window: settings window title, size and browser fallback
//   - FFmpeg: binary location reported by status checks
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Dialog  Dialog  `toml:"dialog"`
	Window  Window  `toml:"window"`
	FFmpeg  FFmpeg  `toml:"ffmpeg"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads the configuration at path, or the first existing default
// location when path is empty. Missing files yield defaults. The returned
// config is normalized and validated; exists reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// resolveConfigPath returns the config file to read. An explicit path is
// used even when absent; otherwise the user config wins over ./mediaconv.toml
// and the user location is reported when neither exists.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		switch _, err := os.Stat(expanded); {
		case err == nil:
			return expanded, true, nil
		case errors.Is(err, fs.ErrNotExist):
			return expanded, false, nil
		default:
			return "", false, fmt.Errorf("stat config: %w", err)
		}
	}

	userPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(defaultProjectConfig)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if isRegularFile(candidate) {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDirectories creates the directories the daemon writes into. The
// default output directory is left alone; it only seeds the output picker.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SocketPath returns the JSON-RPC socket location.
func (c *Config) SocketPath() string {
	return filepath.Join(c.Paths.StateDir, socketFileName)
}

// LockPath returns the daemon single-instance lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, lockFileName)
}

// LogPath returns the daemon log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, logFileName)
}

// FFmpegBinary returns the configured ffmpeg binary, or "ffmpeg" for PATH lookup.
func (c *Config) FFmpegBinary() string {
	if path := strings.TrimSpace(c.FFmpeg.Path); path != "" {
		return path
	}
	return "ffmpeg"
}

// ExpandPath resolves a leading "~" to the home directory and returns the
// cleaned absolute form. Empty input stays empty.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if rest, ok := strings.CutPrefix(pathValue, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, rest)
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
