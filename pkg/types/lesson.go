// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the lesson-engine pipeline:
// the generation result handed to every collaborator (CLI, exporter, HTTP
// carrier) and the configuration records for each stage.
package types

// OptionCount is the number of options on every quiz question.
const OptionCount = 4

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	// Question is the question text. Sentence-derived questions carry the
	// blank marker in place of the answer; fallback questions are descriptive.
	Question string `json:"question" yaml:"question"`

	// Options holds exactly OptionCount strings in presentation order.
	Options []string `json:"options" yaml:"options"`

	// CorrectAnswer is the letter (A-D) of the correct entry in Options.
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`

	// CorrectText is the literal correct option.
	CorrectText string `json:"correct_text" yaml:"correct_text"`
}

// Letter returns the option letter for a zero-based index (0 → "A").
func Letter(index int) string {
	return string(rune('A' + index))
}

// LetterIndex returns the zero-based index for an option letter, or -1 if the
// letter is outside A-D.
func LetterIndex(letter string) int {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] >= 'A'+OptionCount {
		return -1
	}
	return int(letter[0] - 'A')
}

// Consistent reports whether CorrectAnswer points at CorrectText in Options.
func (q QuizQuestion) Consistent() bool {
	if len(q.Options) != OptionCount {
		return false
	}
	i := LetterIndex(q.CorrectAnswer)
	return i >= 0 && q.Options[i] == q.CorrectText
}

// Equal reports whether two questions are identical field by field,
// including option order.
func (q QuizQuestion) Equal(o QuizQuestion) bool {
	if q.Question != o.Question || q.CorrectAnswer != o.CorrectAnswer || q.CorrectText != o.CorrectText {
		return false
	}
	if len(q.Options) != len(o.Options) {
		return false
	}
	for i := range q.Options {
		if q.Options[i] != o.Options[i] {
			return false
		}
	}
	return true
}

// GenerationResult is the output of one generation call. It is created fresh
// per call and owned by the caller.
type GenerationResult struct {
	// Assignments holds exactly two essay prompts.
	Assignments []string `json:"assignments" yaml:"assignments"`

	// QuizQuestions holds exactly three multiple-choice questions.
	QuizQuestions []QuizQuestion `json:"quiz_questions" yaml:"quiz_questions"`

	// ConceptsFound lists the extracted key concepts (at most ten).
	ConceptsFound []string `json:"concepts_found" yaml:"concepts_found"`
}
