package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediaconv/internal/queue"
)

func newClassifyCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify PATH...",
		Short: "Show the display name and media kind a path would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]queue.Item, 0, len(args))
			for _, path := range args {
				items = append(items, queue.NewItem(path, nil))
			}
			if asJSON {
				return writeJSON(cmd, items)
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{item.Name, item.Kind.Label(), item.Path})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Kind", "Path"}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return localCommand(cmd)
}
