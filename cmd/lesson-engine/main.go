// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lesson-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/lesson-engine/internal/envfile"
	"github.com/pdiddy/lesson-engine/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the lesson-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "lesson-engine",
	Short: "Generate assignments and quiz questions from text",
	Long: `lesson-engine turns free-form text into study material: two essay-style
assignment prompts, three multiple-choice quiz questions, and the key
concepts it found.

Use generate for a single text, batch for a directory of .txt and .md
files, and serve to expose the generator as a JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		logger = log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lesson-engine.yaml or ~/.config/lesson-engine/lesson-engine.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before configuration")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	applied, err := envfile.Load(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	} else if len(applied) > 0 {
		fmt.Fprintf(os.Stderr, "Loaded env: %v\n", applied)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lesson-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lesson-engine"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("LESSON_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
