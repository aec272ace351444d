package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"mediaconv/internal/config"
	"mediaconv/internal/ipc"
)

const skipConfigAnnotation = "mediaconv/skip-config"

// commandContext carries the global flags and lazily loaded config shared by
// every subcommand.
type commandContext struct {
	socketFlag *string
	configFlag *string

	loadConfig sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(socketFlag, configFlag *string) *commandContext {
	return &commandContext{socketFlag: socketFlag, configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.loadConfig.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err == nil {
			err = cfg.EnsureDirectories()
		}
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configValue returns the loaded config, or nil when loading failed.
func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) configPath() string {
	return flagValue(c.configFlag)
}

// socketPath resolves --socket, then the configured state dir, then the
// default state dir.
func (c *commandContext) socketPath() string {
	if socket := flagValue(c.socketFlag); socket != "" {
		return socket
	}
	if cfg := c.configValue(); cfg != nil {
		return cfg.SocketPath()
	}
	fallback := config.Default()
	stateDir, err := config.ExpandPath(fallback.Paths.StateDir)
	if err != nil {
		return filepath.Join(os.TempDir(), "mediaconv.sock")
	}
	fallback.Paths.StateDir = stateDir
	return fallback.SocketPath()
}

func (c *commandContext) withClient(fn func(*ipc.Client) error) error {
	socket := c.socketPath()
	client, err := ipc.Dial(socket)
	if err != nil {
		return dialError(err, socket)
	}
	defer client.Close()
	return fn(client)
}

func dialError(err error, socket string) error {
	switch {
	case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("connect to daemon: socket %s not found; start the daemon with `mediaconv start`", socket)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to daemon: socket %s refused the connection; the daemon may have exited", socket)
	default:
		return fmt.Errorf("connect to daemon: %w", err)
	}
}

// localCommand marks cmd as runnable without loading the config file.
func localCommand(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[skipConfigAnnotation] = "true"
	return cmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}
