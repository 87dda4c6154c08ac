package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/algorithms"
	"github.com/katalvlaran/graphstudio/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the algorithm API (POST /api/run, GET /api/health, /api/algorithms, /metrics)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			sc := a.cfg.Server
			srv := server.New(algorithms.NewLocal(a.logger),
				server.WithLogger(a.logger),
				server.WithAllowedOrigin(sc.AllowedOrigin),
				server.WithRequestTimeout(sc.RequestTimeout.Std()),
				server.WithRateLimit(sc.RateLimit, sc.Burst),
				server.WithMaxBodyBytes(sc.MaxBodyBytes),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			brand.Fprintf(cmd.OutOrStdout(), "graphstudio API on %s\n", addr)
			subtle.Fprintln(cmd.OutOrStdout(), "  endpoints: /api/run, /api/algorithms, /api/health, /metrics")
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":5000\")")
	return cmd
}
