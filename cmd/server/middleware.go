package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/davidkimai/promptpad/internal/logger"
)

// requests per minute per client IP
const defaultRateLimit = "120-M"

// CORSMiddleware allows browser clients from the configured origins
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if envOrigins := os.Getenv("ALLOWED_ORIGINS"); envOrigins != "" {
		origins := strings.Split(envOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}

		corsConfig.AllowOrigins = origins
	} else {
		// development fallback
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}

// RateLimitMiddleware applies a per-IP request budget across the API
func RateLimitMiddleware() gin.HandlerFunc {
	format := os.Getenv("RATE_LIMIT")
	if format == "" {
		format = defaultRateLimit
	}

	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Warn("invalid RATE_LIMIT value, using default",
			"value", format,
			"default", defaultRateLimit,
		)

		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit) //nolint:errcheck // constant format
	}

	store := memory.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate))
}
