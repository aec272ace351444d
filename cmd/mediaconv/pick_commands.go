package main

import (
	"github.com/spf13/cobra"

	"mediaconv/internal/ipc"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Open a native picker through the daemon",
	}

	var filesJSON bool
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Pick media files and print the resulting queue items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				items, err := client.PickFiles()
				if err != nil {
					return err
				}
				return printItems(cmd, items, filesJSON)
			})
		},
	}
	filesCmd.Flags().BoolVar(&filesJSON, "json", false, "Output JSON")

	var folderJSON bool
	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Pick a folder and print the placeholder queue item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				items, err := client.PickFolder()
				if err != nil {
					return err
				}
				return printItems(cmd, items, folderJSON)
			})
		},
	}
	folderCmd.Flags().BoolVar(&folderJSON, "json", false, "Output JSON")

	var outputJSON bool
	outputCmd := &cobra.Command{
		Use:   "output",
		Short: "Pick the conversion output folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				path, err := client.PickOutput()
				if err != nil {
					return err
				}
				return printPath(cmd, path, outputJSON)
			})
		},
	}
	outputCmd.Flags().BoolVar(&outputJSON, "json", false, "Output JSON")

	var ffmpegJSON bool
	ffmpegCmd := &cobra.Command{
		Use:   "ffmpeg",
		Short: "Pick an ffmpeg executable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				path, err := client.PickFFmpeg()
				if err != nil {
					return err
				}
				return printPath(cmd, path, ffmpegJSON)
			})
		},
	}
	ffmpegCmd.Flags().BoolVar(&ffmpegJSON, "json", false, "Output JSON")

	pickCmd.AddCommand(filesCmd, folderCmd, outputCmd, ffmpegCmd)
	return pickCmd
}
