// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/lesson-engine/internal/export"
	"github.com/pdiddy/lesson-engine/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate assignments, quiz questions and concepts from text",
	Long: `Generate reads text from a file argument, --text, the built-in --sample
passage, or standard input ("-" or no argument), and prints two assignment
prompts, three quiz questions and the key concepts found.

Empty input is valid and produces the fallback prompts and questions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"output.format":       "format",
		"output.max_concepts": "max-concepts",
		"generation.seed":     "seed",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result := newGenerator(cfg.Generation, false).Generate(text)
	logger.Debug("generated", zap.Int("concepts", len(result.ConceptsFound)))

	outPath, _ := cmd.Flags().GetString("out")
	opts := export.Options{MaxConcepts: cfg.Output.MaxConcepts}
	if outPath == "" {
		return export.Write(cmd.OutOrStdout(), cfg.Output.Format, result, opts)
	}

	// Exported documents carry the full concept list.
	if !cmd.Flags().Changed("max-concepts") {
		opts.MaxConcepts = 0
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := export.Write(f, cfg.Output.Format, result, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
	return nil
}

// readInput resolves the text to generate from, in flag order: --sample,
// --text, file argument, then standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		return generate.SampleText, nil
	}
	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		return text, nil
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}

func init() {
	generateCmd.Flags().String("text", "", "text to generate from")
	generateCmd.Flags().Bool("sample", false, "use the built-in sample passage")
	generateCmd.Flags().String("format", "text", "output format: text, yaml or json")
	generateCmd.Flags().Int("max-concepts", export.DefaultMaxConcepts, "concepts listed in text output; --out lists all unless set (0 = all)")
	generateCmd.Flags().Uint64("seed", 0, "random seed for reproducible output (0 = random)")
	generateCmd.Flags().String("out", "", "write the result to this file instead of stdout")

	rootCmd.AddCommand(generateCmd)
}
