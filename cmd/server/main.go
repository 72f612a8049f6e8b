package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidkimai/promptpad/internal/config"
	"github.com/davidkimai/promptpad/internal/logger"
	ws "github.com/davidkimai/promptpad/internal/websocket"
)

func main() {
	logger.Info("starting promptpad server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// start websocket hub
	go srv.hub.Run()

	// periodically push momentum snapshots to trending subscribers
	snapshotCtx, snapshotCancel := context.WithCancel(context.Background())
	go srv.broadcastTrendingSnapshots(snapshotCtx)

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// stop the snapshot broadcaster
	snapshotCancel()

	// notify websocket clients and close connections first
	srv.hub.Shutdown()

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}

// items per trending snapshot broadcast
const snapshotSize = 10

func (s *Server) broadcastTrendingSnapshots(ctx context.Context) {
	interval := time.Duration(s.config.TrendingSnapshotSecs) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if s.hub.GetClientCount() == 0 {
				continue
			}

			items := s.engine.Trending(snapshotSize)
			if len(items) == 0 {
				continue
			}

			entries := make([]ws.TrendingEntry, 0, len(items))
			for _, item := range items {
				entries = append(entries, ws.TrendingEntry{
					PromptID: item.ItemID,
					Momentum: item.Momentum,
				})
			}

			s.hub.BroadcastTrending(entries)
		}
	}
}
