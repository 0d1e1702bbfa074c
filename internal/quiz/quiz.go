// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quiz synthesizes multiple-choice questions from normalized text.
// Questions are built from randomly chosen sentences by blanking out an
// answer word and adding distractors; when sentences run out the remaining
// slots are filled with generic template questions.
package quiz

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/pdiddy/lesson-engine/internal/normalize"
	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

const (
	// Count is the number of questions produced per call.
	Count = 3

	// minSentenceLen is the exclusive lower bound, in runes, for a sentence
	// to enter the pool.
	minSentenceLen = 20

	// attemptsPerSentence scales the retry budget with the pool size.
	attemptsPerSentence = 2
)

// Stats describes how a Synthesize call arrived at its questions.
type Stats struct {
	// Pool is the number of eligible sentences.
	Pool int

	// Attempts is the number of sentence draws made.
	Attempts int

	// Rejected counts draws that failed to build or duplicated an accepted question.
	Rejected int

	// Generic is the number of fallback questions used to fill the result.
	Generic int
}

// Pool returns the trimmed sentences of text longer than 20 runes, in order.
func Pool(text string) []string {
	var pool []string
	for _, s := range normalize.Segments(text) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minSentenceLen {
			pool = append(pool, s)
		}
	}
	return pool
}

// Synthesize returns exactly Count questions for text.
func Synthesize(rng random.Source, text string, concepts []string) []types.QuizQuestion {
	questions, _ := SynthesizeWithStats(rng, text, concepts)
	return questions
}

// SynthesizeWithStats is Synthesize that also reports how the questions were
// obtained. Sentences are drawn with replacement at most 2 × pool size times;
// a draw that fails to build or repeats an accepted question still consumes
// an attempt.
func SynthesizeWithStats(rng random.Source, text string, concepts []string) ([]types.QuizQuestion, Stats) {
	pool := Pool(text)
	stats := Stats{Pool: len(pool)}
	questions := make([]types.QuizQuestion, 0, Count)

	maxAttempts := attemptsPerSentence * len(pool)
	for attempt := 0; attempt < maxAttempts && len(questions) < Count; attempt++ {
		stats.Attempts++
		sentence := random.Pick(rng, pool)
		q, ok := Build(rng, sentence, concepts)
		if !ok || lo.ContainsBy(questions, q.Equal) {
			stats.Rejected++
			continue
		}
		questions = append(questions, q)
	}

	for len(questions) < Count {
		questions = append(questions, Generic(rng, concepts))
		stats.Generic++
	}
	return questions, stats
}
