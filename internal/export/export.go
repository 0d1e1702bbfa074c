// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a GenerationResult for people and for other tools:
// a plain-text study document, YAML, or JSON.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lesson-engine/pkg/types"
)

// DefaultMaxConcepts is how many concepts the text document lists when it is
// printed to a terminal. Documents written to files list every concept.
const DefaultMaxConcepts = 8

// ErrUnknownFormat is returned for an output format other than text, yaml or json.
var ErrUnknownFormat = errors.New("unknown output format")

// Options tunes rendering.
type Options struct {
	// MaxConcepts truncates the concept list in the text document. Zero lists all.
	MaxConcepts int
}

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatText, nil
	case types.FormatText, types.FormatYAML, types.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, yaml or json)", ErrUnknownFormat, s)
	}
}

// Write renders result to w in the given format.
func Write(w io.Writer, format types.OutputFormat, result *types.GenerationResult, opts Options) error {
	switch format {
	case types.FormatText, "":
		return Text(w, result, opts)
	case types.FormatYAML:
		return YAML(w, result)
	case types.FormatJSON:
		return JSON(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Extension returns the file extension used for a format.
func Extension(format types.OutputFormat) string {
	switch format {
	case types.FormatYAML:
		return ".yaml"
	case types.FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Filename returns the output file name for a source named base.
func Filename(base string, format types.OutputFormat) string {
	return base + "-lesson" + Extension(format)
}

// Text writes the study document: numbered assignments, each question with
// lettered options and its correct letter, then the comma-joined concepts.
func Text(w io.Writer, result *types.GenerationResult, opts Options) error {
	var b strings.Builder

	b.WriteString("# Educational Content Generated\n\n")
	b.WriteString("## Assignment Questions:\n")
	for i, a := range result.Assignments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, a)
	}

	b.WriteString("\n## Quiz Questions:\n")
	for i, q := range result.QuizQuestions {
		fmt.Fprintf(&b, "\n### Question %d: %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%s. %s\n", types.Letter(j), opt)
		}
		fmt.Fprintf(&b, "**Correct Answer: %s**\n", q.CorrectAnswer)
	}

	fmt.Fprintf(&b, "\n## Key Concepts:\n%s\n", strings.Join(DisplayConcepts(result.ConceptsFound, opts.MaxConcepts), ", "))

	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayConcepts truncates concepts to limit entries. limit <= 0 keeps all.
func DisplayConcepts(concepts []string, limit int) []string {
	if limit <= 0 || len(concepts) <= limit {
		return concepts
	}
	return concepts[:limit]
}

// YAML writes result as a YAML document.
func YAML(w io.Writer, result *types.GenerationResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// JSON writes result as indented JSON.
func JSON(w io.Writer, result *types.GenerationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
