// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/lesson-engine/internal/assign"
	"github.com/pdiddy/lesson-engine/internal/quiz"
	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

func requireWellFormed(t *testing.T, result *types.GenerationResult) {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Assignments, assign.Count)
	for _, a := range result.Assignments {
		assert.NotEmpty(t, a)
	}
	require.Len(t, result.QuizQuestions, quiz.Count)
	for _, q := range result.QuizQuestions {
		require.Len(t, q.Options, types.OptionCount)
		assert.True(t, q.Consistent(), "inconsistent question %+v", q)
	}
	assert.LessOrEqual(t, len(result.ConceptsFound), 10)
}

func TestGenerateEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t  "} {
		result := New(WithSource(random.New(1))).Generate(in)
		requireWellFormed(t, result)

		assert.Equal(t, []string{assign.FallbackAnalysis, assign.FallbackEvaluation}, result.Assignments)
		assert.Empty(t, result.ConceptsFound)
		for _, q := range result.QuizQuestions {
			assert.Equal(t, quiz.MaterialQuestion, q.Question)
			assert.Equal(t, "A", q.CorrectAnswer)
			assert.Equal(t, quiz.MaterialOptions[0], q.CorrectText)
		}
	}
}

func TestGenerateShortSentence(t *testing.T) {
	result := New(WithSource(random.New(3))).Generate("this is a test.")
	requireWellFormed(t, result)

	assert.Empty(t, result.ConceptsFound)
	for _, q := range result.QuizQuestions {
		assert.Equal(t, quiz.MaterialQuestion, q.Question)
		assert.Equal(t, "A", q.CorrectAnswer)
	}
}

func TestGenerateRepeatedConcept(t *testing.T) {
	text := `Photosynthesis converts sunlight into chemical energy.
Photosynthesis happens inside chloroplasts within plant leaves.
Scientists study   Photosynthesis to improve crops.`

	for seed := uint64(1); seed <= 20; seed++ {
		result := New(WithSource(random.New(seed))).Generate(text)
		requireWellFormed(t, result)
		assert.Contains(t, result.ConceptsFound, "Photosynthesis")

		blanks := 0
		for _, q := range result.QuizQuestions {
			if strings.Contains(q.Question, quiz.Blank) {
				blanks++
			}
		}
		assert.GreaterOrEqual(t, blanks, 1, "seed %d", seed)
	}
}

func TestGenerateSampleText(t *testing.T) {
	result := Generate(SampleText)
	requireWellFormed(t, result)
	assert.Contains(t, result.ConceptsFound, "Artificial")
	assert.NotEqual(t, assign.FallbackEvaluation, result.Assignments[1])
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := New(WithSource(random.New(77))).Generate(SampleText)
	b := New(WithSource(random.New(77))).Generate(SampleText)
	assert.Equal(t, a, b)
}

func TestGenerateLogsStages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := New(WithSource(random.New(1)), WithLogger(zap.New(core)))

	g.Generate("")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "concepts extracted", entries[0].Message)
	assert.Equal(t, "quiz synthesized", entries[1].Message)
	assert.Equal(t, int64(3), entries[1].ContextMap()["generic"])
}
