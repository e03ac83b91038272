package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// GameSense REST endpoints, relative to the daemon address.
const (
	gameMetadataEndpoint  = "/game_metadata"
	registerEventEndpoint = "/register_game_event"
	bindEventEndpoint     = "/bind_game_event"
	gameEventEndpoint     = "/game_event"
)

// GameSenseClient implements ports.GameSense over HTTP.
//
// Only transport failures are returned as errors. The daemon's response
// status and body are ignored apart from a debug log line per request.
type GameSenseClient struct {
	baseURL string
	client  ports.HTTPClient
	logger  ports.Logger
}

// NewGameSenseClient creates a client for the daemon at baseURL
// (e.g. "http://127.0.0.1:51248").
func NewGameSenseClient(baseURL string, client ports.HTTPClient, logger ports.Logger) *GameSenseClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &GameSenseClient{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// RegisterGame posts game metadata.
func (c *GameSenseClient) RegisterGame(ctx context.Context, md domain.GameMetadata) error {
	return c.post(ctx, gameMetadataEndpoint, md)
}

// RegisterEvent posts an event registration.
func (c *GameSenseClient) RegisterEvent(ctx context.Context, reg domain.EventRegistration) error {
	return c.post(ctx, registerEventEndpoint, reg)
}

// BindEvent posts an event binding.
func (c *GameSenseClient) BindEvent(ctx context.Context, binding domain.EventBinding) error {
	return c.post(ctx, bindEventEndpoint, binding)
}

// SendEvent posts a game event.
func (c *GameSenseClient) SendEvent(ctx context.Context, ev domain.GameEvent) error {
	return c.post(ctx, gameEventEndpoint, ev)
}

func (c *GameSenseClient) post(ctx context.Context, endpoint string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", endpoint, err)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	// Drain so the keep-alive connection can be reused for the next frame.
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug("gamesense response",
		ports.String("endpoint", endpoint),
		ports.Int("status", resp.StatusCode),
		ports.Bool("ok", resp.StatusCode/100 == 2),
		ports.String("request_size", humanize.Bytes(uint64(len(body)))),
	)
	return nil
}

var _ ports.GameSense = (*GameSenseClient)(nil)
