// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/studio-revy/revy-brief/questions"
)

// NewQuestionsCommand creates and returns the questions subcommand
func NewQuestionsCommand() *cobra.Command {
	var withOptions bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the question catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listQuestions(cmd.OutOrStdout(), withOptions)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&withOptions, "options", false, "also list each question's options")

	return cmd
}

func listQuestions(output io.Writer, withOptions bool) error {
	qid := color.New(color.FgCyan, color.Bold)

	for _, q := range questions.All() {
		qid.Fprintf(output, "%s", q.ID)
		fmt.Fprintf(output, "  %s", q.Title)
		if q.AllowMultiple {
			fmt.Fprint(output, "  (multi-select)")
		}
		fmt.Fprintln(output)

		if withOptions {
			for _, opt := range q.Options {
				fmt.Fprintf(output, "    %-24s %s\n", opt.ID, opt.Label)
			}
		}
	}
	return nil
}
