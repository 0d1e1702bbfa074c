// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"fmt"
	"strings"

	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

// ConceptOptions are the fixed options of the concept significance question.
// The first is always correct.
var ConceptOptions = []string{
	"It is a central theme",
	"It is mentioned briefly",
	"It is not relevant",
	"It contradicts the main argument",
}

// MaterialOptions are the fixed options used when no concepts exist.
// The first is always correct.
var MaterialOptions = []string{
	"The content presents a clear argument",
	"The content lacks supporting evidence",
	"The content is purely descriptive",
	"The content is contradictory",
}

// MaterialQuestion is the question text used when no concepts exist.
const MaterialQuestion = "Based on the provided material, which statement is most accurate?"

// Generic returns a template question about a random concept, or about the
// material as a whole when concepts is empty. The answer is always A.
func Generic(rng random.Source, concepts []string) types.QuizQuestion {
	text := MaterialQuestion
	options := MaterialOptions
	if len(concepts) > 0 {
		text = SignificanceQuestion(random.Pick(rng, concepts))
		options = ConceptOptions
	}
	return types.QuizQuestion{
		Question:      text,
		Options:       append([]string(nil), options...),
		CorrectAnswer: types.Letter(0),
		CorrectText:   options[0],
	}
}

// SignificanceQuestion renders the concept significance question.
func SignificanceQuestion(concept string) string {
	return fmt.Sprintf("What is the significance of %s in the provided material?", strings.ToLower(concept))
}
