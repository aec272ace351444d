package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDialog()
	c.normalizeWindow()
	if err := c.normalizeFFmpeg(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.DefaultOutputDir, err = expandPath(strings.TrimSpace(c.Paths.DefaultOutputDir)); err != nil {
		return fmt.Errorf("paths.default_output_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	return nil
}

func (c *Config) normalizeDialog() {
	c.Dialog.Backend = strings.ToLower(strings.TrimSpace(c.Dialog.Backend))
	if c.Dialog.Backend == "" {
		c.Dialog.Backend = defaultDialogBackend
	}
}

func (c *Config) normalizeWindow() {
	c.Window.SettingsTitle = strings.TrimSpace(c.Window.SettingsTitle)
	if c.Window.SettingsTitle == "" {
		c.Window.SettingsTitle = defaultSettingsTitle
	}
	if c.Window.SettingsWidth == 0 {
		c.Window.SettingsWidth = defaultSettingsWidth
	}
	if c.Window.SettingsHeight == 0 {
		c.Window.SettingsHeight = defaultSettingsHeight
	}
}

func (c *Config) normalizeFFmpeg() error {
	path := strings.TrimSpace(c.FFmpeg.Path)
	if path == "" || !strings.ContainsAny(path, `/\~`) {
		// Bare command names stay as-is for PATH lookup.
		c.FFmpeg.Path = path
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("ffmpeg.path: %w", err)
	}
	c.FFmpeg.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
