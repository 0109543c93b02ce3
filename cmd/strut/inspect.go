package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strut-dev/strut/pkg/component"
	"github.com/strut-dev/strut/pkg/metadata"
)

func inspectCmd() *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "inspect <tree.yaml>",
		Short: "Resolve and print metadata for every node in a tree definition",
		Long: `Inspect loads a YAML component tree definition, runs the init
pass, and prints the resolved metadata for every node: the effective
culture, format, and every attribute of the requested kinds with
level and targeting applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := loadTreeFile(args[0])
			if err != nil {
				return err
			}
			root, err := tf.build()
			if err != nil {
				return err
			}
			if err := root.Init(); err != nil {
				return err
			}
			printNode(cmd, root, kinds, 0)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil,
		"Attribute kinds to list per node (default: culture, format)")

	return cmd
}

func printNode(cmd *cobra.Command, n *component.Node, kinds []string, depth int) {
	indent := strings.Repeat("  ", depth)
	m := n.Metadata()

	fmt.Fprintf(cmd.OutOrStdout(), "%s%s (%s)\n", indent, n.Path(), n.Type())
	fmt.Fprintf(cmd.OutOrStdout(), "%s  culture: %s\n", indent, m.Culture())
	if format, ok := m.Format(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  format: %q\n", indent, format)
	}

	for _, kind := range kinds {
		for _, a := range m.All(kind, metadata.Filter{}) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s: %+v\n", indent, kind, a)
		}
	}

	for _, c := range n.Children() {
		printNode(cmd, c, kinds, depth+1)
	}
}
