package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediaconv/internal/ipc"
	"mediaconv/internal/window"
)

func newOpenOutputCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open-output [path]",
		Short: "Reveal a directory in the system file manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
			}
			if path == "" {
				if cfg := ctx.configValue(); cfg != nil {
					path = cfg.Paths.DefaultOutputDir
				}
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.OpenOutput(path); err != nil {
					return err
				}
				if path == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No output directory configured")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", path)
				return nil
			})
		},
	}
}

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Open or focus the settings window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.OpenSettingsWindow(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Settings window requested")
				return nil
			})
		},
	}

	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Close the settings window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				closed, err := client.CloseWindow(window.SettingsLabel)
				if err != nil {
					return err
				}
				if closed {
					fmt.Fprintln(cmd.OutOrStdout(), "Settings window closed")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Settings window was not open")
				}
				return nil
			})
		},
	}
	settingsCmd.AddCommand(closeCmd)
	return settingsCmd
}

func newFFmpegCommand(ctx *commandContext) *cobra.Command {
	ffmpegCmd := &cobra.Command{
		Use:   "ffmpeg",
		Short: "ffmpeg helpers",
	}
	ffmpegCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Ask the daemon whether ffmpeg is usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				ok, err := client.CheckFFmpeg()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ffmpeg ok: %t\n", ok)
				return nil
			})
		},
	})
	return ffmpegCmd
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Start or stop a conversion",
	}

	var ffmpegPath string
	var outputDir string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Request a conversion start",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.StartConversionRequest{
				FFmpegPath: strings.TrimSpace(ffmpegPath),
				OutputDir:  strings.TrimSpace(outputDir),
			}
			if cfg := ctx.configValue(); cfg != nil {
				if req.FFmpegPath == "" {
					req.FFmpegPath = cfg.FFmpegBinary()
				}
				if req.OutputDir == "" {
					req.OutputDir = cfg.Paths.DefaultOutputDir
				}
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.StartConversion(req); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Conversion start requested")
				return nil
			})
		},
	}
	startCmd.Flags().StringVar(&ffmpegPath, "ffmpeg", "", "ffmpeg executable (defaults to ffmpeg.path)")
	startCmd.Flags().StringVar(&outputDir, "output", "", "Output directory (defaults to paths.default_output_dir)")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Request a conversion stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.StopConversion(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Conversion stop requested")
				return nil
			})
		},
	}

	convertCmd.AddCommand(startCmd, stopCmd)
	return convertCmd
}
