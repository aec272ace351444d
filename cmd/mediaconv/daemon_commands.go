package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mediaconv/internal/daemonctl"
	"mediaconv/internal/daemonrun"
	"mediaconv/internal/ipc"
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	var startHeadless bool
	var startLogLevel string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the mediaconv daemon in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}

			result, err := daemonctl.EnsureStarted(
				ctx.socketPath(),
				exe,
				daemonctl.LaunchOptions{
					ConfigPath: ctx.configPath(),
					LogLevel:   startLogLevel,
					Headless:   startHeadless,
				},
				10*time.Second,
			)
			if err != nil {
				return err
			}

			switch result.State {
			case daemonctl.StartStateStarted:
				fmt.Fprintf(stdout, "Daemon started (pid %d)\n", result.PID)
			case daemonctl.StartStateAlreadyRunning:
				fmt.Fprintln(stdout, "Daemon already running")
			}
			return nil
		},
	}
	startCmd.Flags().BoolVar(&startHeadless, "headless", false, "Run without opening windows")
	startCmd.Flags().StringVar(&startLogLevel, "log-level", "", "Override the configured log level")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the mediaconv daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			pid, err := daemonctl.Stop(ctx.socketPath(), 5*time.Second)
			if errors.Is(err, daemonctl.ErrDaemonNotRunning) {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			if err != nil {
				return err
			}
			if pid > 0 {
				fmt.Fprintf(stdout, "Daemon stopped (pid %d)\n", pid)
				return nil
			}
			fmt.Fprintln(stdout, "Daemon stopped")
			return nil
		},
	}

	var statusJSON bool
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon, dependency, and directory status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := daemonctl.BuildStatusSnapshot(ctx.socketPath(), ctx.configValue())
			if err != nil {
				return err
			}
			if statusJSON {
				return writeJSON(cmd, status)
			}
			stdout := cmd.OutOrStdout()
			for _, line := range renderStatus(status, shouldColorize(stdout)) {
				fmt.Fprintln(stdout, line)
			}
			return nil
		},
	}
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output JSON")

	return []*cobra.Command{startCmd, stopCmd, statusCmd}
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	var headless bool
	var logLevel string
	var development bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mediaconv daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{
				LogLevel:    strings.TrimSpace(logLevel),
				Development: development,
				Headless:    headless,
			})
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, "Run without opening windows")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().BoolVar(&development, "development", false, "Include source locations in logs")
	return cmd
}

func renderStatus(status *ipc.StatusResponse, colorize bool) []string {
	lines := renderSectionHeader("Daemon", colorize)
	if status.Running {
		lines = append(lines, renderStatusLine("Daemon", statusOK, fmt.Sprintf("Running (pid %d)", status.PID), colorize))
		lines = append(lines, renderStatusLine("API", statusInfo, status.APIBind, colorize))
		lines = append(lines, renderStatusLine("Event clients", statusInfo, fmt.Sprintf("%d", status.EventClients), colorize))
	} else {
		lines = append(lines, renderStatusLine("Daemon", statusWarn, "Not running", colorize))
	}
	lines = append(lines, renderStatusLine("Socket", statusInfo, status.SocketPath, colorize))
	lines = append(lines, renderStatusLine("Dialog backend", statusInfo, status.DialogBackend, colorize))
	lines = append(lines, "")

	lines = append(lines, renderSectionHeader("Dependencies", colorize)...)
	lines = append(lines, dependencyLines(status.Dependencies, colorize)...)
	lines = append(lines, "")

	lines = append(lines, renderSectionHeader("Directories", colorize)...)
	for _, check := range status.Checks {
		kind := statusOK
		if !check.Passed {
			kind = statusWarn
		}
		lines = append(lines, renderStatusLine(check.Name, kind, check.Detail, colorize))
	}

	if status.Running {
		lines = append(lines, "")
		lines = append(lines, renderSectionHeader("Windows", colorize)...)
		if len(status.Windows) == 0 {
			lines = append(lines, statusIndent+"No windows open")
		} else {
			rows := make([][]string, 0, len(status.Windows))
			for _, label := range status.Windows {
				rows = append(rows, []string{label})
			}
			lines = append(lines, renderTable([]string{"Label"}, rows))
		}
	}
	return lines
}

func dependencyLines(deps []ipc.DependencyStatus, colorize bool) []string {
	lines := make([]string, 0, len(deps)+1)
	missing := make([]string, 0)
	for _, dep := range deps {
		if dep.Available {
			message := "Ready"
			if dep.Command != "" {
				message = fmt.Sprintf("Ready (command: %s)", dep.Command)
			}
			lines = append(lines, renderStatusLine(dep.Name, statusOK, message, colorize))
			continue
		}

		detail := strings.TrimSpace(dep.Detail)
		if detail == "" {
			detail = "not available"
		}
		kind := statusError
		if dep.Optional {
			kind = statusWarn
		}
		lines = append(lines, renderStatusLine(dep.Name, kind, detail, colorize))
		missing = append(missing, dep.Name)
	}
	if len(missing) > 0 {
		lines = append(lines, renderStatusLine("Missing", statusWarn, strings.Join(missing, ", "), colorize))
	}
	return lines
}
