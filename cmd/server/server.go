package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidkimai/promptpad/internal/category"
	"github.com/davidkimai/promptpad/internal/config"
	"github.com/davidkimai/promptpad/internal/feed"
	"github.com/davidkimai/promptpad/internal/logger"
	"github.com/davidkimai/promptpad/internal/residue"
	ws "github.com/davidkimai/promptpad/internal/websocket"
	"github.com/davidkimai/promptpad/promptpad/notifications"
	"github.com/davidkimai/promptpad/promptpad/prompts"
)

const viralCallbackTimeout = 5 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// hosted poolers offer few connections, keep the pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	categorizer := category.NewKeyword()
	analyzer := residue.NewAnalyzer()

	promptRepo := prompts.NewRepository(db, categorizer, analyzer)
	notifier := notifications.New(db)

	engine, err := feed.NewEngine(feedConfig(cfg), promptRepo, promptRepo, categorizer)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create feed engine: %w", err)
	}

	hub := ws.NewHub()

	// a viral crossing notifies the creator and fans out to trending
	// subscribers; both are off the interaction request path
	engine.OnViral(func(crossing feed.ViralCrossing) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), viralCallbackTimeout)
			defer cancel()

			if _, err := notifier.CreateViral(ctx, crossing); err != nil {
				logger.ErrorErr(err, "failed to persist viral notification",
					"prompt_id", crossing.ItemID,
					"creator_id", crossing.CreatorID,
				)
			}

			hub.BroadcastViral(ws.ViralPayload{
				PromptID:  crossing.ItemID,
				CreatorID: crossing.CreatorID,
				RemixRate: crossing.RemixRate,
				Momentum:  crossing.Momentum,
			})
		}()
	})

	router := gin.Default()

	server := &Server{
		db:         db,
		config:     cfg,
		promptRepo: promptRepo,
		notifier:   notifier,
		engine:     engine,
		hub:        hub,
		router:     router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// applies environment overrides on top of the ranking defaults
func feedConfig(cfg *config.Config) feed.Config {
	fc := feed.DefaultConfig()

	if cfg.ViralThreshold > 0 {
		fc.ViralRemixThreshold = cfg.ViralThreshold
	}

	if cfg.ExplorationFraction > 0 {
		fc.ExplorationFraction = cfg.ExplorationFraction
	}

	if cfg.CandidateOverfetch > 0 {
		fc.OverfetchFactor = cfg.CandidateOverfetch
	}

	if cfg.MaxPerCreator > 0 {
		fc.MaxPerCreator = cfg.MaxPerCreator
	}

	if cfg.MaxPerCategory > 0 {
		fc.MaxPerCategory = cfg.MaxPerCategory
	}

	return fc
}
