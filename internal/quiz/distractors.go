// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quiz

import (
	"fmt"
	"strings"

	"github.com/pdiddy/lesson-engine/pkg/types"
)

const (
	distractorCount       = types.OptionCount - 1
	maxConceptDistractors = 2
)

// Distractors returns three wrong options for answer. Up to two concepts come
// first, in concept order; generic templates fill the rest. A candidate that
// matches the answer or an earlier distractor, ignoring case, is skipped.
func Distractors(answer string, concepts []string) []string {
	seen := map[string]bool{strings.ToLower(answer): true}
	out := make([]string, 0, distractorCount)

	add := func(s string) {
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, c := range concepts {
		if len(out) == maxConceptDistractors {
			break
		}
		add(c)
	}
	for _, g := range genericDistractors(answer) {
		if len(out) == distractorCount {
			break
		}
		add(g)
	}
	return out
}

// genericDistractors are templated wrong answers. The last entry is a reserve
// used only when an earlier one collides.
func genericDistractors(answer string) []string {
	lower := strings.ToLower(answer)
	return []string{
		fmt.Sprintf("Not %s", lower),
		fmt.Sprintf("Opposite of %s", lower),
		"None of the above",
		"All of the above",
	}
}
