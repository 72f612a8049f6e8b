package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidkimai/promptpad/internal/config"
	"github.com/davidkimai/promptpad/internal/feed"
	ws "github.com/davidkimai/promptpad/internal/websocket"
	"github.com/davidkimai/promptpad/promptpad/notifications"
	"github.com/davidkimai/promptpad/promptpad/prompts"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	config     *config.Config
	promptRepo *prompts.Repository
	notifier   *notifications.Service
	engine     *feed.Engine
	hub        *ws.Hub
	router     *gin.Engine
}
