// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/lesson-engine/internal/export"
	"github.com/pdiddy/lesson-engine/internal/generate"
	"github.com/pdiddy/lesson-engine/internal/random"
	"github.com/pdiddy/lesson-engine/pkg/types"
)

func setDefaults() {
	viper.SetDefault("generation.seed", 0)
	viper.SetDefault("output.format", string(types.FormatText))
	viper.SetDefault("output.max_concepts", export.DefaultMaxConcepts)
	viper.SetDefault("batch.input_dir", "input")
	viper.SetDefault("batch.output_dir", "output")
	viper.SetDefault("batch.format", string(types.FormatYAML))
	viper.SetDefault("batch.max_concepts", 0)
	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("serve.read_timeout", "10s")
	viper.SetDefault("serve.write_timeout", "10s")
	viper.SetDefault("serve.max_body_bytes", 1<<20)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.env", "development")
}

// bindFlags binds the running command's flags to config keys. Binding
// happens at run time because several commands share keys.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("binding %s: no flag --%s", key, flag)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// loadConfig assembles the full configuration from defaults, config file,
// environment and bound flags.
func loadConfig() (types.Config, error) {
	outFormat, err := export.ParseFormat(viper.GetString("output.format"))
	if err != nil {
		return types.Config{}, fmt.Errorf("output.format: %w", err)
	}
	batchFormat, err := export.ParseFormat(viper.GetString("batch.format"))
	if err != nil {
		return types.Config{}, fmt.Errorf("batch.format: %w", err)
	}

	return types.Config{
		Generation: types.GenerationConfig{
			Seed: viper.GetUint64("generation.seed"),
		},
		Output: types.OutputConfig{
			Format:      outFormat,
			MaxConcepts: viper.GetInt("output.max_concepts"),
		},
		Batch: types.BatchConfig{
			InputDir:    viper.GetString("batch.input_dir"),
			OutputDir:   viper.GetString("batch.output_dir"),
			Format:      batchFormat,
			MaxConcepts: viper.GetInt("batch.max_concepts"),
		},
		Serve: types.ServeConfig{
			Addr:         viper.GetString("serve.addr"),
			ReadTimeout:  viper.GetDuration("serve.read_timeout"),
			WriteTimeout: viper.GetDuration("serve.write_timeout"),
			MaxBodyBytes: viper.GetInt64("serve.max_body_bytes"),
		},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			Env:   viper.GetString("log.env"),
		},
	}, nil
}

// newGenerator builds a Generator for cfg. Shared marks a generator that
// will be used from several goroutines.
func newGenerator(cfg types.GenerationConfig, shared bool) *generate.Generator {
	var src random.Source = random.New(cfg.Seed)
	if shared {
		src = random.Locked(src)
	}
	logger.Debug("generator ready", zap.Uint64("seed", cfg.Seed), zap.Bool("shared", shared))
	return generate.New(generate.WithSource(src), generate.WithLogger(logger))
}
