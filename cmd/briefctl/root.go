// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for briefctl
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "briefctl",
		Short: "Offline tools for the Revy brief engine",
		Long: `briefctl runs the brief engine without the API server.

It reads quiz answers from a JSON file and prints the generated brief,
and can list the question and rule catalogs the engine ships with.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewQuestionsCommand())
	cmd.AddCommand(NewRulesCommand())

	return cmd
}
