// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assign synthesizes essay-style assignment prompts from extracted
// concepts.
package assign

import (
	"fmt"
	"strings"

	"github.com/pdiddy/lesson-engine/internal/random"
)

// Count is the number of assignments produced per call.
const Count = 2

// EssayStarters are the openers for the concept-focused analysis prompt.
var EssayStarters = []string{
	"Analyze and discuss",
	"Compare and contrast",
	"Evaluate the significance of",
	"Explain the relationship between",
	"Critically examine",
	"Describe the impact of",
	"What are the main factors that contribute to",
	"How does",
	"Why is it important to understand",
}

const (
	// FallbackAnalysis is used when no concepts were found.
	FallbackAnalysis = "Analyze the main themes presented in the provided text and discuss their significance with supporting examples."

	// FallbackEvaluation is used when fewer than two concepts were found.
	FallbackEvaluation = "Evaluate the effectiveness of the arguments presented in the text. What evidence supports the main points, and what questions remain unanswered?"
)

// Synthesize returns exactly Count prompts. The first analyzes one random
// concept with a random starter; the second compares two distinct random
// concepts. Each falls back to a fixed prompt when concepts are too few.
func Synthesize(rng random.Source, concepts []string) []string {
	assignments := make([]string, 0, Count)

	if len(concepts) > 0 {
		concept := random.Pick(rng, concepts)
		starter := random.Pick(rng, EssayStarters)
		assignments = append(assignments, Analysis(starter, concept))
	} else {
		assignments = append(assignments, FallbackAnalysis)
	}

	if len(concepts) >= 2 {
		i, j := random.Sample2(rng, len(concepts))
		assignments = append(assignments, Comparison(concepts[i], concepts[j]))
	} else {
		assignments = append(assignments, FallbackEvaluation)
	}

	return assignments
}

// Analysis renders the single-concept prompt.
func Analysis(starter, concept string) string {
	return fmt.Sprintf("%s %s as discussed in the provided material. Support your analysis with specific examples and explain its broader implications.",
		starter, strings.ToLower(concept))
}

// Comparison renders the two-concept compare-and-contrast prompt.
func Comparison(first, second string) string {
	return fmt.Sprintf("Compare and contrast %s and %s. Discuss how these concepts relate to each other and their importance in the overall context.",
		strings.ToLower(first), strings.ToLower(second))
}
