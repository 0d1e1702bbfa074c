// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lesson-engine/pkg/types"
)

func sampleResult() *types.GenerationResult {
	return &types.GenerationResult{
		Assignments: []string{"First prompt.", "Second prompt."},
		QuizQuestions: []types.QuizQuestion{
			{
				Question:      "Plants need ______",
				Options:       []string{"Not light", "light", "Glucose", "Stomata"},
				CorrectAnswer: "B",
				CorrectText:   "light",
			},
		},
		ConceptsFound: []string{"Glucose", "Stomata"},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleResult(), Options{}))

	want := `# Educational Content Generated

## Assignment Questions:
1. First prompt.

2. Second prompt.

## Quiz Questions:

### Question 1: Plants need ______
A. Not light
B. light
C. Glucose
D. Stomata
**Correct Answer: B**

## Key Concepts:
Glucose, Stomata
`
	assert.Equal(t, want, buf.String())
}

func TestTextTruncatesConcepts(t *testing.T) {
	result := sampleResult()
	result.ConceptsFound = []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10"}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, result, Options{MaxConcepts: DefaultMaxConcepts}))
	assert.True(t, strings.HasSuffix(buf.String(), "a1, b2, c3, d4, e5, f6, g7, h8\n"), buf.String())
}

func TestDisplayConcepts(t *testing.T) {
	c := []string{"a", "b", "c"}
	assert.Equal(t, c, DisplayConcepts(c, 0))
	assert.Equal(t, c, DisplayConcepts(c, 5))
	assert.Equal(t, []string{"a", "b"}, DisplayConcepts(c, 2))
	assert.Empty(t, DisplayConcepts(nil, 8))
}

func TestStructuredFormats(t *testing.T) {
	result := sampleResult()

	var yb bytes.Buffer
	require.NoError(t, Write(&yb, types.FormatYAML, result, Options{}))
	var fromYAML types.GenerationResult
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, *result, fromYAML)
	assert.Contains(t, yb.String(), "correct_answer: B")

	var jb bytes.Buffer
	require.NoError(t, Write(&jb, types.FormatJSON, result, Options{}))
	var fromJSON types.GenerationResult
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, *result, fromJSON)
	assert.Contains(t, jb.String(), `"concepts_found"`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{"", types.FormatText, false},
		{"text", types.FormatText, false},
		{"YAML", types.FormatYAML, false},
		{" json ", types.FormatJSON, false},
		{"latex", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.OutputFormat("pdf"), sampleResult(), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "biology-lesson.yaml", Filename("biology", types.FormatYAML))
	assert.Equal(t, "biology-lesson.json", Filename("biology", types.FormatJSON))
	assert.Equal(t, "biology-lesson.txt", Filename("biology", types.FormatText))
}
