// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

// Blank replaces the answer word in a sentence-derived question.
const Blank = "______"

// contextRunes is how much of the sentence the templated fallback quotes.
const contextRunes = 50

// minAnswerLen is the exclusive lower bound, in runes, for answer candidates.
const minAnswerLen = 4

// MCStarters open the templated question used when the answer cannot be
// blanked out of its sentence.
var MCStarters = []string{
	"What is",
	"Which of the following",
	"What best describes",
	"According to the text, what",
	"Which statement is true about",
	"What can be inferred about",
	"The main idea of",
	"What is the primary purpose of",
}

// connectives are long words that make poor answers.
var connectives = map[string]bool{
	"through":   true,
	"because":   true,
	"however":   true,
	"therefore": true,
	"although":  true,
}

// Build turns one sentence into a question. It reports false when the
// sentence is blank or holds no usable answer word.
func Build(rng random.Source, sentence string, concepts []string) (types.QuizQuestion, bool) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return types.QuizQuestion{}, false
	}

	candidates := lo.Filter(strings.Fields(sentence), func(w string, _ int) bool {
		return utf8.RuneCountInString(w) > minAnswerLen &&
			!connectives[strings.ToLower(w)] &&
			stripAnswer(w) != ""
	})
	if len(candidates) == 0 {
		return types.QuizQuestion{}, false
	}

	answer := stripAnswer(random.Pick(rng, candidates))

	var text string
	if strings.Contains(sentence, answer) {
		text = strings.Replace(sentence, answer, Blank, 1)
	} else {
		text = contextQuestion(random.Pick(rng, MCStarters), sentence)
	}

	options := append([]string{answer}, Distractors(answer, concepts)...)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return types.QuizQuestion{
		Question:      text,
		Options:       options,
		CorrectAnswer: types.Letter(lo.IndexOf(options, answer)),
		CorrectText:   answer,
	}, true
}

// stripAnswer removes trailing sentence punctuation from a word.
func stripAnswer(word string) string {
	return strings.TrimRight(word, ".,!?")
}

// contextQuestion renders the templated question quoting the sentence opening.
func contextQuestion(starter, sentence string) string {
	return fmt.Sprintf("%s mentioned in the following context: '%s...'?", starter, firstRunes(sentence, contextRunes))
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
