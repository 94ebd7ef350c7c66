// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/studio-revy/revy-brief/brief"
	"github.com/studio-revy/revy-brief/models"
)

// NewGenerateCommand creates and returns the generate subcommand
func NewGenerateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate <answers.json>",
		Short: "Generate a brief from an answers file",
		Long: `Read quiz answers from a JSON file (or stdin with "-") and print the
generated brief.

The file holds the raw answer map: question ids to selected option ids.

	{
	  "home_exterior_style": ["craftsman"],
	  "rooms": ["kitchen", "primary_bath"],
	  "scope_level": ["full"]
	}

By default a readable summary is printed; --json emits the full brief.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateBrief(args[0], asJSON, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full brief as JSON")

	return cmd
}

func generateBrief(path string, asJSON bool, output io.Writer) error {
	answers, err := readAnswers(path)
	if err != nil {
		return err
	}

	b := brief.Build(answers)

	if asJSON {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}

	printBrief(output, b)
	return nil
}

func readAnswers(path string) (models.Answers, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var answers models.Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers file: %w", err)
	}
	if answers == nil {
		answers = models.Answers{}
	}
	return answers, nil
}

func printBrief(output io.Writer, b brief.Brief) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	heading.Fprintln(output, b.Text.Title)
	fmt.Fprintln(output, b.Text.Description)
	fmt.Fprintln(output)

	if b.DesignDirection != "" {
		label.Fprintf(output, "Design direction (%s):\n", b.ExteriorLabel)
		fmt.Fprintln(output, b.DesignDirection)
		fmt.Fprintln(output)
	}

	label.Fprintln(output, "Style profile:")
	for _, axis := range b.Profile.Axes {
		fmt.Fprintf(output, "  %-22s %.2f  %s\n", axis.Label, axis.Value, axis.BandLabel)
	}
	fmt.Fprintln(output)

	label.Fprintln(output, "Budget:")
	fmt.Fprintf(output, "  Complexity score: %d\n", b.Budget.Complexity)
	if b.Budget.Capacity > 0 {
		fmt.Fprintf(output, "  Capacity points:  %d\n", b.Budget.Capacity)
		fmt.Fprintf(output, "  Fit:              %s\n", b.Budget.Fit)
	}
	fmt.Fprintln(output)

	label.Fprintln(output, "Guidance:")
	for _, rule := range b.Rules {
		fmt.Fprintf(output, "  [%s] %s\n", rule.ID, rule.Name)
	}
}
