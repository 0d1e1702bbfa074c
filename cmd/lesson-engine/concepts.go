// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lesson-engine/internal/concepts"
	"github.com/pdiddy/lesson-engine/internal/normalize"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts [file]",
	Short: "List the key concepts found in text",
	Long: `Concepts runs only the extraction stage and prints each concept on its
own line: capitalized terms first, then words repeated in the text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		for _, c := range concepts.Extract(normalize.Text(text)) {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	conceptsCmd.Flags().String("text", "", "text to extract from")
	conceptsCmd.Flags().Bool("sample", false, "use the built-in sample passage")

	rootCmd.AddCommand(conceptsCmd)
}
