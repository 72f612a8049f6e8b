package websocket

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/davidkimai/promptpad/internal/logger"
)

// CheckOrigin validates the Origin header for upgrade requests. Outside
// production everything passes so local tooling and the tui can connect;
// in production the origin must appear in ALLOWED_ORIGINS.
func CheckOrigin(r *http.Request) bool {
	if os.Getenv("ENVIRONMENT") != "production" {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		logger.Warn("websocket upgrade without origin header")
		return false
	}

	allowed := allowedOrigins()
	if slices.Contains(allowed, origin) {
		return true
	}

	logger.Warn("websocket origin rejected", "origin", origin, "allowed", allowed)

	return false
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}

	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return origins
}

// GenerateClientID returns a random 32-char hex subscriber id.
func GenerateClientID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
