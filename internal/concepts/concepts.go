// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package concepts derives candidate key terms from normalized text using
// capitalization and frequency heuristics.
package concepts

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/pdiddy/lesson-engine/internal/normalize"
)

const (
	// MaxConcepts caps the extracted set.
	MaxConcepts = 10

	// maxFrequent caps how many frequent words join the candidates.
	maxFrequent = 5

	// minCountedLen is the exclusive lower bound on word length for a word
	// to be counted or picked as a capitalized concept.
	minCountedLen = 3

	// minFrequentLen is the exclusive lower bound for frequent-word picks.
	minFrequentLen = 4
)

// wordRun matches a maximal run of Unicode word characters. RE2's \b is
// ASCII-only, so word boundaries are found this way instead.
var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// asciiWord accepts runs made only of ASCII letters.
var asciiWord = regexp.MustCompile(`^[A-Za-z]+$`)

// capitalStoplist holds sentence openers that are capitalized but never concepts.
var capitalStoplist = map[string]bool{
	"the":   true,
	"this":  true,
	"that":  true,
	"they":  true,
	"there": true,
}

// Extract returns at most MaxConcepts key terms from normalized text.
// Capitalized words come first, in source order and original case, followed
// by up to five lowercase words that occur more than once. Duplicates are
// removed by exact string match, keeping the first occurrence.
func Extract(text string) []string {
	var capitalized []string
	freq := make(map[string]int)
	var order []string

	for _, segment := range normalize.Segments(text) {
		for _, word := range wordRun.FindAllString(segment, -1) {
			if !asciiWord.MatchString(word) || utf8.RuneCountInString(word) <= minCountedLen {
				continue
			}
			lower := strings.ToLower(word)
			if _, ok := freq[lower]; !ok {
				order = append(order, lower)
			}
			freq[lower]++

			first, _ := utf8.DecodeRuneInString(word)
			if unicode.IsUpper(first) && !capitalStoplist[lower] {
				capitalized = append(capitalized, word)
			}
		}
	}

	frequent := lo.Filter(order, func(w string, _ int) bool {
		return freq[w] > 1 && utf8.RuneCountInString(w) > minFrequentLen
	})
	if len(frequent) > maxFrequent {
		frequent = frequent[:maxFrequent]
	}

	candidates := lo.Uniq(append(capitalized, frequent...))
	if len(candidates) > MaxConcepts {
		candidates = candidates[:MaxConcepts]
	}
	return candidates
}
