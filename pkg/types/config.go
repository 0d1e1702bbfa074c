// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GenerationConfig holds settings for the generation pipeline.
type GenerationConfig struct {
	// Seed fixes the random source. Zero means a fresh seed per process.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// OutputFormat selects how a GenerationResult is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// OutputConfig holds settings for rendering a single result.
type OutputConfig struct {
	// Format selects the renderer: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`

	// MaxConcepts truncates the concept list printed to stdout (default 8).
	// Zero shows all. Files written with --out list every concept unless the
	// flag is given explicitly.
	MaxConcepts int `json:"max_concepts" yaml:"max_concepts"`
}

// BatchConfig holds settings for directory batch generation.
type BatchConfig struct {
	// InputDir contains the .txt and .md source files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one rendered result per source file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the renderer for written results (default yaml).
	Format OutputFormat `json:"format" yaml:"format"`

	// MaxConcepts truncates the concept list in text results. Zero (the
	// default) lists all.
	MaxConcepts int `json:"max_concepts" yaml:"max_concepts"`
}

// ServeConfig holds settings for the HTTP carrier.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout bounds reading a request (default 10s).
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout bounds writing a response (default 10s).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// MaxBodyBytes caps the request body (default 1 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Env selects the encoder: "production" logs JSON, anything else console.
	Env string `json:"env" yaml:"env"`
}

// Config groups all stage configurations.
type Config struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Batch      BatchConfig      `json:"batch" yaml:"batch"`
	Serve      ServeConfig      `json:"serve" yaml:"serve"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
