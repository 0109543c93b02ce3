package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strut",
		Short: "Component metadata tooling for strut test suites",
		Long: `Strut models a rendered UI as a tree of typed components and
resolves each component's configuration from five ordered metadata
levels. This tool inspects component tree definitions offline:

  • strut inspect  — resolve and print metadata for every node
  • strut version  — print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
