package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbPingTimeout = 2 * time.Second

type Response struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

// Handler reports liveness plus database reachability. A failing ping
// degrades the status in the body but still answers 200, so monitors can
// tell "up but degraded" from "down".
func Handler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:   "healthy",
			Service:  "promptpad",
			Version:  "1.0.0",
			Database: "ok",
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// PingHandler responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
