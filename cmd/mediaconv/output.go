package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mediaconv/internal/ipc"
	"mediaconv/internal/queue"
)

const nothingSelected = "Nothing selected"

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItems(cmd *cobra.Command, items []queue.Item, asJSON bool) error {
	if items == nil {
		items = []queue.Item{}
	}
	if asJSON {
		return writeJSON(cmd, items)
	}
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, nothingSelected)
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.ID, item.Name, item.Kind.Label(), item.Path})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Name", "Kind", "Path"}, rows))
	return nil
}

func printPath(cmd *cobra.Command, path string, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, ipc.PathResponse{Path: path})
	}
	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, nothingSelected)
		return nil
	}
	fmt.Fprintln(out, path)
	return nil
}
