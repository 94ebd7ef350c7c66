// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/studio-revy/revy-brief/rules"
)

// NewRulesCommand creates and returns the rules subcommand
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the guidance rule catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

func listRules(output io.Writer) error {
	rid := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow)

	section.Fprintln(output, "Base rules:")
	for _, r := range rules.Base() {
		rid.Fprintf(output, "  %-8s", r.ID)
		fmt.Fprintf(output, " %s", r.Name)
		if r.Trigger == "" {
			fmt.Fprint(output, "  (always included)")
		}
		fmt.Fprintln(output)
	}

	section.Fprintln(output, "Finish strategies:")
	for _, r := range rules.FinishStrategies() {
		rid.Fprintf(output, "  %-8s", r.ID)
		fmt.Fprintf(output, " %s\n", r.Name)
	}

	return nil
}
