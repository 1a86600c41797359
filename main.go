// Package main runs the repoforge tool server on stdio.
package main

import (
	"fmt"
	"os"

	"github.com/apiarycd/repoforge/internal"
	"github.com/spf13/cobra"
)

// version is set at build time.
var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "repoforge",
		Short: "Repository provisioning tools over stdio",
		Long: `repoforge serves a set of repository provisioning tools (create, clone, template merge, ` +
			`file edits, commit and push) to a tool-invocation client over standard input and output.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
					return fmt.Errorf("failed to set config path: %w", err)
				}
			}

			internal.Run()
			return nil
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
