// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lesson-engine/internal/assign"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

// execute runs the CLI with args after restoring every flag to its default,
// since cobra keeps flag values between executions in one process.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lesson-engine dev\n", out)
}

func TestGenerateEmptyTextJSON(t *testing.T) {
	out, err := execute(t, "generate", "--text", "", "--format", "json", "--seed", "5")
	require.NoError(t, err)

	var result types.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{assign.FallbackAnalysis, assign.FallbackEvaluation}, result.Assignments)
	assert.Len(t, result.QuizQuestions, 3)
	assert.Empty(t, result.ConceptsFound)
}

func TestGenerateTextFormat(t *testing.T) {
	out, err := execute(t, "generate", "--text", "Mitochondria produce energy for the cell. Mitochondria divide.", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "# Educational Content Generated")
	assert.Contains(t, out, "## Key Concepts:\nMitochondria")
}

func TestGenerateFromFileToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lesson.txt")
	require.NoError(t, os.WriteFile(src, []byte("Volcanoes erupt when magma rises. Volcanoes shape islands."), 0o644))
	dst := filepath.Join(dir, "lesson.yaml")

	_, err := execute(t, "generate", src, "--format", "yaml", "--out", dst, "--seed", "9")
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	var result types.GenerationResult
	require.NoError(t, yaml.Unmarshal(data, &result))
	assert.Contains(t, result.ConceptsFound, "Volcanoes")
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "generate", "--text", "x", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestConceptsCommand(t *testing.T) {
	out, err := execute(t, "concepts", "--text", "Darwin sailed on the Beagle.")
	require.NoError(t, err)
	assert.Equal(t, "Darwin\nBeagle\n", out)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	require.NoError(t, os.Mkdir(in, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.txt"), []byte("Glaciers carve valleys slowly."), 0o644))

	out, err := execute(t, "batch", "--input-dir", in, "--output-dir", filepath.Join(dir, "out"), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "1 generated, 0 skipped, 0 failed")
	assert.FileExists(t, filepath.Join(dir, "out", "a-lesson.json"))
}

// tenConcepts yields exactly ten capitalized concepts, Alpha through Juliet.
const tenConcepts = "Alpha walks. Bravo walks. Charlie walks. Delta walks. Echo walks. " +
	"Foxtrot walks. Golf walks. Hotel walks. India walks. Juliet walks."

func TestGenerateStdoutTruncatesConcepts(t *testing.T) {
	out, err := execute(t, "generate", "--text", tenConcepts, "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "## Key Concepts:\nAlpha, Bravo, Charlie, Delta, Echo, Foxtrot, Golf, Hotel\n")
}

func TestGenerateOutListsAllConcepts(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "lesson.txt")

	_, err := execute(t, "generate", "--text", tenConcepts, "--out", dst, "--seed", "4")
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data),
		"## Key Concepts:\nAlpha, Bravo, Charlie, Delta, Echo, Foxtrot, Golf, Hotel, India, Juliet\n"))

	_, err = execute(t, "generate", "--text", tenConcepts, "--out", dst, "--max-concepts", "2", "--seed", "4")
	require.NoError(t, err)
	data, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "## Key Concepts:\nAlpha, Bravo\n"))
}

func TestBatchTextListsAllConcepts(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	require.NoError(t, os.Mkdir(in, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "drill.txt"), []byte(tenConcepts), 0o644))

	_, err := execute(t, "batch", "--input-dir", in, "--output-dir", filepath.Join(dir, "out"), "--format", "text")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "drill-lesson.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hotel, India, Juliet\n")
}
