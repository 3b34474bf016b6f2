package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jmap")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "jmap",
		Short:        "Inspect and convert JVM obfuscation mappings",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newDescCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newFormatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
