// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes raw input text before any heuristic runs.
package normalize

import (
	"regexp"
	"strings"
)

// Text collapses every run of whitespace (spaces, tabs, newlines) to a single
// space and trims both ends. Empty input yields empty output.
func Text(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// sentenceBreak matches a run of sentence-ending punctuation.
var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Segments splits normalized text into sentence-like segments on runs of
// '.', '!' or '?'. Segments are returned untrimmed and may be empty.
func Segments(text string) []string {
	return sentenceBreak.Split(text, -1)
}
