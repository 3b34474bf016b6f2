package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/jmap/format"
	"github.com/dhamidi/jmap/mapping"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var outputFormat string
	var outputFile string
	var classPrefix string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Write a JSON mapping dump in another format",
		Long: `Read mappings in the JSON dump format and write them out again.

If no file is provided, reads the dump from stdin. Output goes to stdout
unless -o is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open mappings: %w", err)
				}
				defer f.Close()
				in = f
			}

			tree, err := format.DecodeJSON(in)
			if err != nil {
				return err
			}
			log.Infof("read %d classes in namespaces %s -> %s", len(tree.Classes), tree.SrcNamespace, strings.Join(tree.DstNamespaces, ", "))

			var out io.Writer = cmd.OutOrStdout()
			if outputFile != "" {
				f, cerr := os.Create(outputFile)
				if cerr != nil {
					return fmt.Errorf("create output: %w", cerr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close output: %w", cerr)
					}
				}()
				out = f
			}
			bw := bufio.NewWriter(out)

			writer, err := format.NewWriter(outputFormat, bw)
			if err != nil {
				return err
			}
			var v mapping.Visitor = writer
			if classPrefix != "" {
				v = mapping.NewClassFilter(v, func(name string) bool {
					return strings.HasPrefix(name, classPrefix)
				})
			}

			if err := tree.Accept(mapping.NewChecker(v)); err != nil {
				return fmt.Errorf("write %s: %w", outputFormat, err)
			}
			return bw.Flush()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tiny2", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&classPrefix, "class-prefix", "", "only write classes whose source name has this prefix")

	return cmd
}
