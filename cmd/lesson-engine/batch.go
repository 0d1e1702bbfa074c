// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lesson-engine/internal/export"
	"github.com/pdiddy/lesson-engine/internal/generate"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate study material for every text file in a directory",
	Long: `Batch reads each .txt and .md file in the input directory and writes one
result per file to the output directory (NAME-lesson.yaml by default).
Files whose output is newer than the source are skipped.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"batch.input_dir":    "input-dir",
		"batch.output_dir":   "output-dir",
		"batch.format":       "format",
		"batch.max_concepts": "max-concepts",
		"generation.seed":    "seed",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := newGenerator(cfg.Generation, false)
	opts := export.Options{MaxConcepts: cfg.Batch.MaxConcepts}
	summary, err := generate.GenerateAll(cmd.Context(), gen, cfg.Batch, opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d generated, %d skipped, %d failed\n",
		summary.Generated, summary.Skipped, summary.Failed)
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed", summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("input-dir", "input", "directory of .txt and .md sources")
	batchCmd.Flags().String("output-dir", "output", "directory for generated results")
	batchCmd.Flags().String("format", "yaml", "output format: yaml, json or text")
	batchCmd.Flags().Int("max-concepts", 0, "concepts listed in text results (0 = all)")
	batchCmd.Flags().Uint64("seed", 0, "random seed for reproducible output (0 = random)")

	rootCmd.AddCommand(batchCmd)
}
