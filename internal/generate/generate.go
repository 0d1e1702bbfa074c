// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the content-generation pipeline: normalize the raw
// text, extract concepts, then synthesize assignments and quiz questions
// from the shared concept list.
package generate

import (
	"go.uber.org/zap"

	"github.com/pdiddy/lesson-engine/internal/assign"
	"github.com/pdiddy/lesson-engine/internal/concepts"
	"github.com/pdiddy/lesson-engine/internal/normalize"
	"github.com/pdiddy/lesson-engine/internal/quiz"
	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

// Generator produces a GenerationResult from raw text. It is safe for
// concurrent use only if its random source is.
type Generator struct {
	rng random.Source
	log *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source every heuristic choice draws from.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.rng = src }
}

// WithLogger sets the logger used for debug tracing of each stage.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// New returns a Generator. Without options it draws from a freshly seeded
// source and logs nothing.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = random.New(0)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g
}

// Generate accepts any string, including empty or whitespace-only input,
// and always returns a complete result: two assignments, three quiz
// questions and the concepts found.
func (g *Generator) Generate(raw string) *types.GenerationResult {
	text := normalize.Text(raw)
	found := concepts.Extract(text)
	g.log.Debug("concepts extracted",
		zap.Int("text_len", len(text)),
		zap.Int("concepts", len(found)))

	assignments := assign.Synthesize(g.rng, found)

	questions, stats := quiz.SynthesizeWithStats(g.rng, text, found)
	g.log.Debug("quiz synthesized",
		zap.Int("pool", stats.Pool),
		zap.Int("attempts", stats.Attempts),
		zap.Int("rejected", stats.Rejected),
		zap.Int("generic", stats.Generic))

	return &types.GenerationResult{
		Assignments:   assignments,
		QuizQuestions: questions,
		ConceptsFound: found,
	}
}

// Generate runs the pipeline once with a fresh random source.
func Generate(raw string) *types.GenerationResult {
	return New().Generate(raw)
}
