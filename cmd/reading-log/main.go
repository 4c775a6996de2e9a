package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameese/reading-log/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "reading-log",
		Short:   "A single-operator reading log service",
		Long:    "Reading Log — a bounded bookmark list served as JSON, Markdown, HTML, and RSS.",
		Version: fmt.Sprintf("%s (%s, %s)", build.Version, build.Commit, build.Branch),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
