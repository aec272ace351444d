package main

import (
	"github.com/spf13/cobra"
)

const (
	groupDaemon = "daemon"
	groupUI     = "ui"
	groupLocal  = "local"
)

func newRootCommand() *cobra.Command {
	var socketFlag string
	var configFlag string

	ctx := newCommandContext(&socketFlag, &configFlag)

	rootCmd := &cobra.Command{
		Use:           "mediaconv",
		Short:         "Media conversion desktop daemon and CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Path to the mediaconv daemon socket")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupDaemon, Title: "Daemon:"},
		&cobra.Group{ID: groupUI, Title: "UI commands (sent to the daemon):"},
		&cobra.Group{ID: groupLocal, Title: "Local utilities:"},
	)
	addGrouped(rootCmd, groupDaemon, append(newDaemonCommands(ctx), newServeCommand(ctx), newLogsCommand(ctx))...)
	addGrouped(rootCmd, groupUI,
		newPickCommand(ctx),
		newOpenOutputCommand(ctx),
		newSettingsCommand(ctx),
		newFFmpegCommand(ctx),
		newConvertCommand(ctx),
	)
	addGrouped(rootCmd, groupLocal, newClassifyCommand(), newConfigCommand(ctx))

	return rootCmd
}

func addGrouped(parent *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = group
		parent.AddCommand(cmd)
	}
}
