// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/lesson-engine/internal/export"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

// sourceExtensions lists the input file types a batch run picks up.
var sourceExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// BatchSummary holds counts from a batch generation run.
type BatchSummary struct {
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the number of source files processed.
func (s BatchSummary) Total() int {
	return s.Generated + s.Skipped + s.Failed
}

// HasFailures reports whether any source file failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// GenerateAll renders a result for every .txt and .md file in cfg.InputDir
// into cfg.OutputDir. Files whose output is newer than the source are
// skipped. Per-file failures are counted and reported to w; the run only
// stops early when ctx is cancelled.
func GenerateAll(ctx context.Context, g *Generator, cfg types.BatchConfig, opts export.Options, w io.Writer) (BatchSummary, error) {
	format := cfg.Format
	if format == "" {
		format = types.FormatYAML
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	var summary BatchSummary

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || !sourceExtensions[ext] {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		srcPath := filepath.Join(cfg.InputDir, entry.Name())
		outPath := filepath.Join(cfg.OutputDir, export.Filename(name, format))

		changed, err := hasChanged(srcPath, outPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		raw, err := os.ReadFile(srcPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		result := g.Generate(string(raw))
		if err := writeResult(outPath, format, result, opts); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", name, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "generated %s (%d concepts)\n", name, len(result.ConceptsFound))
		summary.Generated++
	}

	return summary, nil
}

// hasChanged reports whether the source file is newer than the output file.
// Returns true if the output does not exist.
func hasChanged(srcPath, outPath string) (bool, error) {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return false, fmt.Errorf("stat source %s: %w", srcPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return srcInfo.ModTime().After(outInfo.ModTime()), nil
}

// writeResult renders result into path.
func writeResult(path string, format types.OutputFormat, result *types.GenerationResult, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, format, result, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
