package twitch

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamsForChannels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		channel := strings.TrimPrefix(r.URL.Path, "/streams/")
		switch channel {
		case "live_channel":
			w.Write([]byte(`{
				"_links": {},
				"stream": {"_id": 1, "viewers": 42, "channel": {"name": "live_channel"}}
			}`))
		case "offline_channel":
			w.Write([]byte(`{"_links": {}, "stream": null}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Not Found", "status": 404, "message": "unknown channel"}`))
		}
	})

	results, err := client.StreamsForChannels(context.Background(), []string{
		"live_channel",
		"offline_channel",
		"missing_channel",
	})
	require.NoError(t, err)

	// The failing channel is skipped, not fatal.
	require.Len(t, results, 2)
	require.Contains(t, results, "live_channel")
	require.Contains(t, results, "offline_channel")
	assert.True(t, results["live_channel"].IsLive())
	assert.Equal(t, 42, results["live_channel"].Stream.Viewers)
	assert.False(t, results["offline_channel"].IsLive())
}

func TestStreamsForChannelsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty channel list")
	})

	results, err := client.StreamsForChannels(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStreamsForChannelsCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_links": {}, "stream": null}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.StreamsForChannels(ctx, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
