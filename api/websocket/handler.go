package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/davidkimai/promptpad/internal/errors"
	"github.com/davidkimai/promptpad/internal/logger"
	ws "github.com/davidkimai/promptpad/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     ws.CheckOrigin,
}

// TrendingHandler upgrades the connection and subscribes it to viral
// events and momentum snapshots.
func TrendingHandler(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ipAddress := c.ClientIP()

		if ok, reason := hub.CanAcceptConnection(ipAddress); !ok {
			errors.TooManyRequests(c, reason)
			return
		}

		clientID, err := ws.GenerateClientID()
		if err != nil {
			errors.InternalError(c, "failed to generate client id", err)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// upgrader already wrote the HTTP error response
			logger.ErrorErr(err, "websocket upgrade failed",
				"ip_address", ipAddress,
			)
			return
		}

		hub.TrackIPConnection(ipAddress)

		client := ws.NewClient(clientID, ipAddress, conn, hub)
		hub.Register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
