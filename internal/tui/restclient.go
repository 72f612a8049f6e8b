package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for API requests
const requestTimeout = 10 * time.Second

// items requested per feed page
const feedPageSize = 20

// manages HTTP requests to the promptpad REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new REST client
func NewClient() *Client {
	endpoint := os.Getenv("PROMPTPAD_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// fetches a ranked feed page for a user
func (c *Client) GetFeed(ctx context.Context, userID string, count int) ([]FeedItem, error) {
	url := fmt.Sprintf("%s/api/v1/feed?user_id=%s&count=%s", c.endpoint, userID, strconv.Itoa(count))

	var result feedResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	return result.Items, nil
}

// fetches the current momentum leaders
func (c *Client) GetTrending(ctx context.Context, limit int) ([]TrendingItem, error) {
	url := fmt.Sprintf("%s/api/v1/trending?limit=%s", c.endpoint, strconv.Itoa(limit))

	var result trendingResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	return result.Items, nil
}

// reports one interaction back to the engine
func (c *Client) RecordInteraction(ctx context.Context, userID, promptID, kind string) error {
	payload := interactionRequest{
		UserID:   userID,
		PromptID: promptID,
		Kind:     kind,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/interactions", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck // error body is best-effort
		return decodeError(resp.StatusCode, body)
	}

	return nil
}

// returns a tea.Cmd that loads the feed
func (c *Client) LoadFeedCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		items, err := c.GetFeed(ctx, userID, feedPageSize)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return FeedLoadedMsg{items: items}
	}
}

// returns a tea.Cmd that loads the trending list
func (c *Client) LoadTrendingCmd(limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		items, err := c.GetTrending(ctx, limit)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return TrendingLoadedMsg{items: items}
	}
}

// returns a tea.Cmd that records one interaction
func (c *Client) RecordInteractionCmd(userID, promptID, kind string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.RecordInteraction(ctx, userID, promptID, kind); err != nil {
			return ErrorMsg{err: err}
		}

		return InteractionRecordedMsg{promptID: promptID, kind: kind}
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func decodeError(status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
	}

	return fmt.Errorf("request failed with status %d: %s", status, string(body))
}

// REST API request/response types

type feedResponse struct {
	UserID string     `json:"user_id"`
	Count  int        `json:"count"`
	Items  []FeedItem `json:"items"`
}

type trendingResponse struct {
	Items []TrendingItem `json:"items"`
}

type interactionRequest struct {
	UserID   string `json:"user_id"`
	PromptID string `json:"prompt_id"`
	Kind     string `json:"kind"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
