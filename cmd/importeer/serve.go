package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rversteeg/importeer/internal/api"
	"github.com/rversteeg/importeer/internal/engine"
	"github.com/rversteeg/importeer/internal/margin"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long: `Starts the HTTP API. POST /api/v1/bpm calculates the rest-BPM for one
vehicle, POST /api/v1/analyze runs a full analysis with caller-supplied
comparables, GET /healthz reports liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		if host == "" {
			host = cfg.Server.Host
		}
		if port == 0 {
			port = cfg.Server.Port
		}

		eng := engine.NewAnalysisEngine(
			engine.WithMarginCalculator(margin.NewCalculatorWithConfig(cfg.ImportCosts, cfg.Thresholds)),
			engine.WithLogger(logger),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := api.NewServer(eng, logger)
		return server.ListenAndServe(ctx, fmt.Sprintf("%s:%d", host, port))
	},
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (default from config)")
	serveCmd.Flags().Int("port", 0, "listen port (default from config)")
}
