package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sanixdarker/gql-jddf/internal/app"
	"github.com/sanixdarker/gql-jddf/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveDebug     bool
	serveMaxBody   int64
	serveRateRPS   float64
	serveRateBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server exposing the translation endpoints.

Endpoints:
  POST /api/convert    convert an introspection or SDL document
  POST /api/validate   validate a JSON instance against a JDDF schema
  POST /api/merge      combine several documents into one schema
  POST /api/detect     report which format a document looks like
  GET  /api/formats    list the supported input formats
  GET  /healthz        liveness check

Examples:
  gqljddf serve
  gqljddf serve --port 9090 --debug
  curl -s --data-binary @introspection.json localhost:8080/api/convert`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use environment variable if flag not set
		port := servePort
		if !cmd.Flags().Changed("port") {
			if env := os.Getenv("GQLJDDF_PORT"); env != "" {
				p, err := strconv.Atoi(env)
				if err != nil {
					return fmt.Errorf("invalid GQLJDDF_PORT %q: %w", env, err)
				}
				port = p
			}
		}

		cfg := app.DefaultConfig()
		cfg.Port = port
		cfg.Debug = serveDebug
		cfg.MaxBodyBytes = serveMaxBody
		cfg.RateRPS = serveRateRPS
		cfg.RateBurst = serveRateBurst

		application := app.New(cfg)
		srv := server.New(application)

		// Handle graceful shutdown
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-done
			application.Logger.Info("shutting down server...")
			srv.Shutdown()
		}()

		application.Logger.Info("starting server", "port", cfg.Port)
		fmt.Printf("gqljddf API server running at http://localhost:%d\n", cfg.Port)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	defaults := app.DefaultConfig()
	serveCmd.Flags().IntVarP(&servePort, "port", "p", defaults.Port, "HTTP port to listen on (or set GQLJDDF_PORT)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().Int64Var(&serveMaxBody, "max-body", defaults.MaxBodyBytes, "Request body size limit in bytes")
	serveCmd.Flags().Float64Var(&serveRateRPS, "rate", defaults.RateRPS, "Rate limit in requests per second per client")
	serveCmd.Flags().IntVar(&serveRateBurst, "burst", defaults.RateBurst, "Rate limit burst size")

	rootCmd.AddCommand(serveCmd)
}
