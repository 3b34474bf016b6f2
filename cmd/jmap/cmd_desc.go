package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/jmap/descriptor"
	"github.com/spf13/cobra"
)

func newDescCmd() *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "desc <descriptor>...",
		Short: "Show the Java form of field and method descriptors",
		Long: `Show the Java form of field and method descriptors.

Field descriptors print their Java name and array depth. Method
descriptors print their Java signature and the local variable index of
each parameter, as used by arg rows.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, desc := range args {
				if strings.HasPrefix(desc, "(") {
					md, err := descriptor.ParseMethodDescriptor(desc)
					if err != nil {
						return fmt.Errorf("parse method descriptor: %w", err)
					}
					fmt.Fprintf(out, "%s\t%s\t%s\n", md.Descriptor(), md.JavaSignature(), lvSlots(md, static))
					continue
				}
				t, err := descriptor.ParseType(desc)
				if err != nil {
					return fmt.Errorf("parse descriptor: %w", err)
				}
				fmt.Fprintf(out, "%s\t%s\t%d\n", t.Descriptor(), t.JavaName(), t.ArrayDepth())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "number parameters of a static method")

	return cmd
}

func lvSlots(md descriptor.MethodDescriptor, static bool) string {
	slots := []string{"lv"}
	for i := range md.Params {
		slots = append(slots, strconv.Itoa(md.ArgLvIndex(i, static)))
	}
	return strings.Join(slots, " ")
}
