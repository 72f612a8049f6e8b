package websocket

import (
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/davidkimai/promptpad/internal/logger"
)

func NewHub() *Hub {
	return &Hub{
		clients:       make(map[string]*Client),
		Register:      make(chan *Client),
		Unregister:    make(chan *Client),
		shutdown:      make(chan struct{}),
		ipConnections: make(map[string]int),
		limiter:       rate.NewLimiter(rate.Limit(snapshotRateLimit), snapshotBurst),
	}
}

// starts the hub's main loop
func (h *Hub) Run() {
	h.running.Store(true)
	defer h.running.Store(false)

	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case <-h.shutdown:
			h.closeAllConnections()
			return
		}
	}
}

// registerClient adds a subscriber to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	logger.Info("trending subscriber registered",
		"client_id", client.ID,
		"subscriber_count", len(h.clients),
	)
}

// removes a subscriber from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.ID]; !exists {
		return
	}

	delete(h.clients, client.ID)
	client.Close()

	if client.IPAddress != "" {
		h.ipConnections[client.IPAddress]--

		if h.ipConnections[client.IPAddress] <= 0 {
			delete(h.ipConnections, client.IPAddress)
		}
	}

	logger.Info("trending subscriber unregistered",
		"client_id", client.ID,
		"subscriber_count", len(h.clients),
	)
}

// BroadcastViral fans a viral crossing out to every subscriber. Viral
// events are rare and never throttled.
func (h *Hub) BroadcastViral(payload ViralPayload) {
	msg, err := NewMessage(TypeViral, payload)
	if err != nil {
		logger.ErrorErr(err, "failed to create viral message",
			"prompt_id", payload.PromptID,
		)
		return
	}

	h.broadcast(msg)
}

// BroadcastTrending sends a momentum snapshot to every subscriber,
// subject to the hub's rate limit. Returns false when throttled.
func (h *Hub) BroadcastTrending(items []TrendingEntry) bool {
	if !h.limiter.Allow() {
		logger.Debug("trending snapshot throttled")
		return false
	}

	msg, err := NewMessage(TypeTrendingSnapshot, TrendingSnapshotPayload{Items: items})
	if err != nil {
		logger.ErrorErr(err, "failed to create trending snapshot message")
		return false
	}

	h.broadcast(msg)
	return true
}

func (h *Hub) broadcast(msg *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sequence++
	msg.Sequence = h.sequence

	for clientID, client := range h.clients {
		if err := client.Send(msg); err != nil {
			logger.ErrorErr(err, "failed to send message to subscriber",
				"client_id", clientID,
			)
		}
	}
}

// returns the number of connected subscribers
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Shutdown() {
	if h.running.Load() {
		close(h.shutdown)
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()

	logger.Info("notifying trending subscribers of server shutdown")

	shutdownMsg, err := NewMessage(TypeServerShutdown, ServerShutdownPayload{
		Reason: "server is shutting down for maintenance",
	})
	if err == nil {
		for _, client := range h.clients {
			if sendErr := client.Send(shutdownMsg); sendErr != nil {
				logger.ErrorErr(sendErr, "failed to send shutdown notification",
					"client_id", client.ID,
				)
			}
		}
	}

	h.mu.Unlock()

	// give clients time to receive the shutdown message
	time.Sleep(500 * time.Millisecond)

	h.mu.Lock()
	defer h.mu.Unlock()

	logger.Info("closing all websocket connections")

	for clientID, client := range h.clients {
		client.Close()
		logger.Debug("closed subscriber", "client_id", clientID)
	}

	h.clients = make(map[string]*Client)
	h.ipConnections = make(map[string]int)
}

// checks if a new connection should be allowed based on limits
func (h *Hub) CanAcceptConnection(ipAddress string) (bool, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := h.ipConnections[ipAddress]
	if count >= maxConnectionsPerIP {
		return false, "Maximum connections per IP address exceeded"
	}

	return true, ""
}

// increments the connection count for an IP address
func (h *Hub) TrackIPConnection(ipAddress string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ipConnections[ipAddress]++
}

// decrements the connection count for an IP address
func (h *Hub) UntrackIPConnection(ipAddress string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ipConnections[ipAddress]--

	if h.ipConnections[ipAddress] <= 0 {
		delete(h.ipConnections, ipAddress)
	}
}

// NewMessage builds a hub message with a marshaled payload.
func NewMessage(messageType string, payload any) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Timestamp: time.Now(),
		Payload:   raw,
	}, nil
}
