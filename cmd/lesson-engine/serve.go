// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lesson-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator as a JSON API",
	Long: `Serve starts an HTTP server with two endpoints:

  POST /v1/generate   {"text": "..."} → generation result as JSON
  GET  /health        liveness probe

It stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"serve.addr":           "addr",
		"serve.max_body_bytes": "max-body-bytes",
		"generation.seed":      "seed",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(newGenerator(cfg.Generation, true), logger, cfg.Serve)
	return srv.Run(ctx)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int64("max-body-bytes", 1<<20, "maximum request body size")
	serveCmd.Flags().Uint64("seed", 0, "random seed (0 = random)")

	rootCmd.AddCommand(serveCmd)
}
