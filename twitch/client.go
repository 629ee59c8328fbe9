package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Twitch Kraken API root.
const DefaultBaseURL = "https://api.twitch.tv/kraken"

// acceptHeader pins the API to version 3.
const acceptHeader = "application/vnd.twitchtv.v3+json"

// Client is a readonly client for the Twitch Kraken API.
//
// By using it you agree to follow the Twitch API Terms of Service. This
// library is in no way affiliated with, authorized, maintained, sponsored
// or endorsed by Twitch or any of its affiliates or subsidiaries.
type Client struct {
	baseURL    string
	clientID   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Twitch client.
//
// clientID may be empty for anonymous access, but setting one is highly
// recommended to avoid being rate limited by Twitch.
func NewClient(baseURL, clientID string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:  baseURL,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	if clientID == "" {
		logger.Warn().Msg("No client ID configured, requests may be rate limited by Twitch")
	}

	return client, nil
}

// doRequest performs a GET against the API and returns the response body.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	if c.clientID != "" {
		req.Header.Set("Client-ID", c.clientID)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("url", requestURL).
		Msg("Making Twitch API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// newAPIError builds an APIError, pulling the message out of the standard
// Twitch error body ({"error": ..., "status": ..., "message": ...}) when
// one is present.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var errBody struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = errBody.Error
		}
	}

	return apiErr
}

// TestConnection verifies the API root is reachable with the configured
// client ID.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.BasicInfo(ctx); err != nil {
		return fmt.Errorf("failed to connect to Twitch: %w", err)
	}
	return nil
}

// TopGames returns games sorted by number of current viewers on Twitch,
// most popular first.
func (c *Client) TopGames(ctx context.Context, params TopGamesParams) (*TopGames, error) {
	body, err := c.doRequest(ctx, "/games/top", params.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to get top games: %w", err)
	}

	var topGames TopGames
	if err := json.Unmarshal(body, &topGames); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Int("total", topGames.Total).
		Int("count", len(topGames.Top)).
		Msg("Retrieved top games from Twitch")

	return &topGames, nil
}

// Ingests returns the list of RTMP ingest points.
func (c *Client) Ingests(ctx context.Context) (*Ingests, error) {
	body, err := c.doRequest(ctx, "/ingests", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingests: %w", err)
	}

	var ingests Ingests
	if err := json.Unmarshal(body, &ingests); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ingests, nil
}

// BasicInfo returns basic information about the API and the authorization
// status of the caller.
func (c *Client) BasicInfo(ctx context.Context) (*BasicInfo, error) {
	body, err := c.doRequest(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get basic info: %w", err)
	}

	var info BasicInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &info, nil
}

// Stream returns the stream object of a single channel.
// The contained stream is nil when the channel is offline.
func (c *Client) Stream(ctx context.Context, channel string) (*ChannelStream, error) {
	body, err := c.doRequest(ctx, "/streams/"+url.PathEscape(channel), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream for %s: %w", channel, err)
	}

	var channelStream ChannelStream
	if err := json.Unmarshal(body, &channelStream); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &channelStream, nil
}

// Streams returns live streams matching the query parameters, sorted by
// number of viewers descending.
func (c *Client) Streams(ctx context.Context, params StreamsParams) (*Streams, error) {
	body, err := c.doRequest(ctx, "/streams", params.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to get streams: %w", err)
	}

	var streams Streams
	if err := json.Unmarshal(body, &streams); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().
		Int("total", streams.Total).
		Int("count", len(streams.Streams)).
		Msg("Retrieved streams from Twitch")

	return &streams, nil
}

// FeaturedStreams returns the list of featured (promoted) streams.
func (c *Client) FeaturedStreams(ctx context.Context, params FeaturedStreamsParams) (*FeaturedStreams, error) {
	body, err := c.doRequest(ctx, "/streams/featured", params.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to get featured streams: %w", err)
	}

	var featured FeaturedStreams
	if err := json.Unmarshal(body, &featured); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &featured, nil
}

// StreamsSummary returns a summary of current streams.
func (c *Client) StreamsSummary(ctx context.Context, params StreamsSummaryParams) (*StreamsSummary, error) {
	body, err := c.doRequest(ctx, "/streams/summary", params.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to get streams summary: %w", err)
	}

	var summary StreamsSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &summary, nil
}

// Channel returns the channel object for the given channel name.
func (c *Client) Channel(ctx context.Context, channel string) (*Channel, error) {
	body, err := c.doRequest(ctx, "/channels/"+url.PathEscape(channel), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channel, err)
	}

	var ch Channel
	if err := json.Unmarshal(body, &ch); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ch, nil
}
