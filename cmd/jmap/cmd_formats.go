package main

import (
	"fmt"

	"github.com/dhamidi/jmap/format"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range format.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
