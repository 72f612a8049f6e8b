// Package websocket implements the live trending hub: a flat set of
// subscriber connections that receive viral-crossing events and periodic
// momentum snapshots. Clients are consumers; the only message they send
// is ping.
package websocket

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// message type constants for websocket communication
const (
	// is sent when an item first crosses the viral threshold
	TypeViral = "viral"

	// is sent periodically with the current momentum leaders
	TypeTrendingSnapshot = "trending_snapshot"

	// is sent when an error occurs
	TypeError = "error"

	// is sent by clients to keep the connection alive
	TypePing = "ping"

	// is sent by server in response to ping
	TypePong = "pong"

	// is sent by server before shutdown
	TypeServerShutdown = "server_shutdown"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// maximum message size allowed from peer; subscribers only send pings
	maxMessageSize = 4 * 1024
)

// hub connection limit constants
const (
	maxConnectionsPerIP = 10

	// snapshot broadcasts per second across all clients
	snapshotRateLimit = 2
	snapshotBurst     = 4
)

// errors
var (
	ErrConnectionClosed = errors.New("connection closed")
)

// represents a websocket message with typed payload
type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Sequence  uint64          `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// contains a viral threshold crossing
type ViralPayload struct {
	PromptID  string  `json:"prompt_id"`
	CreatorID string  `json:"creator_id"`
	RemixRate float64 `json:"remix_rate"`
	Momentum  float64 `json:"momentum"`
}

// contains the current momentum leaders
type TrendingSnapshotPayload struct {
	Items []TrendingEntry `json:"items"`
}

// one entry of a trending snapshot
type TrendingEntry struct {
	PromptID string  `json:"prompt_id"`
	Momentum float64 `json:"momentum"`
}

// contains information about server shutdown
type ServerShutdownPayload struct {
	Reason string `json:"reason"`
}

// represents a websocket subscriber connection
type Client struct {
	// unique identifier for this client
	ID string

	// IP address of the client (for connection tracking)
	IPAddress string

	// websocket connection
	conn *websocket.Conn

	// hub reference
	hub *Hub

	// buffered channel of outbound messages
	send chan []byte

	// mutex for thread-safe operations
	mu sync.RWMutex

	// flag indicating if client is closed
	closed bool
}

// maintains the set of subscribers and fans trend events out to them
type Hub struct {
	// registered clients by client ID
	clients map[string]*Client

	// register requests from clients
	Register chan *Client

	// unregister requests from clients
	Unregister chan *Client

	// mutex for thread-safe access to clients
	mu sync.RWMutex

	// flag indicating if hub is running; written by Run, read by Shutdown
	running atomic.Bool

	// channel to signal shutdown
	shutdown chan struct{}

	// connection tracking: IP address -> count of connections
	ipConnections map[string]int

	// sequence number for message ordering
	sequence uint64

	// throttles snapshot broadcasts; viral events bypass it
	limiter *rate.Limiter
}
