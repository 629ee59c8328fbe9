package twitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsEncodeEmpty(t *testing.T) {
	// An empty query string lets Twitch apply its own defaults.
	assert.Empty(t, TopGamesParams{}.Values().Encode())
	assert.Empty(t, StreamsParams{}.Values().Encode())
	assert.Empty(t, FeaturedStreamsParams{}.Values().Encode())
	assert.Empty(t, StreamsSummaryParams{}.Values().Encode())
}

func TestTopGamesParams(t *testing.T) {
	t.Run("single param", func(t *testing.T) {
		params := TopGamesParams{}.WithLimit(10)
		assert.Equal(t, "limit=10", params.Values().Encode())
	})

	t.Run("multiple params", func(t *testing.T) {
		params := TopGamesParams{}.WithOffset(5).WithLimit(10)
		assert.Equal(t, "limit=10&offset=5", params.Values().Encode())
	})

	t.Run("zero offset is kept", func(t *testing.T) {
		params := TopGamesParams{}.WithOffset(0)
		assert.Equal(t, "offset=0", params.Values().Encode())
	})
}

func TestStreamsParams(t *testing.T) {
	t.Run("game is escaped", func(t *testing.T) {
		params := StreamsParams{}.WithGame("StarCraft II: Heart of the Swarm")
		assert.Equal(t, "game=StarCraft+II%3A+Heart+of+the+Swarm", params.Values().Encode())
	})

	t.Run("channels are joined", func(t *testing.T) {
		params := StreamsParams{}.
			WithChannel("test_channel").
			WithChannel("test_channel2")
		assert.Equal(t, "channel=test_channel%2Ctest_channel2", params.Values().Encode())
	})

	t.Run("empty channel list clears the param", func(t *testing.T) {
		params := StreamsParams{}.
			WithChannel("test_channel").
			WithChannels(nil)
		assert.Empty(t, params.Values().Encode())
	})

	t.Run("stream type", func(t *testing.T) {
		params := StreamsParams{}.WithStreamType(StreamTypeAll)
		assert.Equal(t, "stream_type=all", params.Values().Encode())
	})

	t.Run("all params", func(t *testing.T) {
		params := StreamsParams{}.
			WithGame("Dota 2").
			WithChannel("a").
			WithOffset(0).
			WithLimit(2).
			WithClientID("app-id").
			WithStreamType(StreamTypeLive)
		assert.Equal(t,
			"channel=a&client_id=app-id&game=Dota+2&limit=2&offset=0&stream_type=live",
			params.Values().Encode())
	})
}

func TestStreamsSummaryParams(t *testing.T) {
	params := StreamsSummaryParams{}.WithGame("StarCraft II: Heart of the Swarm")
	assert.Equal(t, "game=StarCraft+II%3A+Heart+of+the+Swarm", params.Values().Encode())
}

func TestParamsAreImmutable(t *testing.T) {
	base := StreamsParams{}.WithGame("Dota 2")

	derived := base.
		WithChannel("a").
		WithLimit(5)

	assert.Equal(t, "game=Dota+2", base.Values().Encode())
	assert.Equal(t, "channel=a&game=Dota+2&limit=5", derived.Values().Encode())
}

func TestStreamTypeString(t *testing.T) {
	assert.Equal(t, "all", StreamTypeAll.String())
	assert.Equal(t, "playlist", StreamTypePlaylist.String())
	assert.Equal(t, "live", StreamTypeLive.String())
}
