package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexigrid"
	httpAdapter "github.com/aretw0/lexigrid/internal/adapters/http"
	"github.com/aretw0/lexigrid/internal/cli"
	"github.com/aretw0/lexigrid/internal/config"
	"github.com/aretw0/lexigrid/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP solve server",
	Long: `Starts an HTTP server exposing the solver as a JSON API: POST /solve,
GET /healthz and Prometheus metrics on GET /metrics. A dictionary loaded
at startup serves requests that carry no word list of their own.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))

		port := cfg.Port
		if cmd.Flags().Changed("port") || port == "" {
			port, _ = cmd.Flags().GetString("port")
		}
		dictPath := cfg.Dictionary
		if cmd.Flags().Changed("dictionary") {
			dictPath, _ = cmd.Flags().GetString("dictionary")
		}

		var dictionary []string
		if dictPath != "" {
			dictionary, err = cli.LoadWords(dictPath)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			logger.Info("dictionary loaded", "path", dictPath, "words", len(dictionary))
		}

		handler := httpAdapter.NewHandler(httpAdapter.Options{
			Dictionary:    dictionary,
			Strategy:      lexigrid.Strategy(cfg.Strategy),
			Workers:       cfg.Workers,
			MinWordLength: cfg.MinWordLength,
			Logger:        logger,
		})

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting lexigrid server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("lexigrid server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringP("dictionary", "d", "", "Word list preloaded for requests without words")
}
