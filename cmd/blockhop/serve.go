package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/server"
)

var (
	flagAddr   string
	flagStatic string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BlockHop HTTP API",
	Long: `Start an HTTP server exposing the level catalog and trace execution
for a browser front end.

Endpoints:
  GET  /api/levels              - Level catalog with lock state
  GET  /api/levels/{id}         - Full level detail
  POST /api/levels/{id}/run     - Run a block program, returns the trace
  GET  /api/levels/{id}/stream  - WebSocket streaming one step per frame
  GET  /api/progress            - Persisted progress

Examples:
  blockhop serve
  blockhop serve --addr :9090
  blockhop serve --static ./web`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagStatic, "static", "", "Directory of static files for the browser UI")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAddr != "" {
		cfg.Server.Addr = flagAddr
	}
	if flagStatic != "" {
		cfg.Server.StaticDir = flagStatic
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockhop",
	})

	catalog, err := openCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load levels", "error", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open progress database", "error", err)
	}
	defer store.Close()

	srv := server.New(catalog, store, logger, cfg.Server.StaticDir)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "addr", cfg.Server.Addr, "levels", catalog.Len())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", "error", err)
		}
	}
}
