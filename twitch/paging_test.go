package twitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaging(t *testing.T) {
	tests := []struct {
		name       string
		link       string
		wantOK     bool
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "offset and limit",
			link:       "https://api.twitch.tv/kraken/games/top?limit=10&offset=30",
			wantOK:     true,
			wantOffset: 30,
			wantLimit:  10,
		},
		{
			name:       "missing offset means first page",
			link:       "https://api.twitch.tv/kraken/games/top?limit=10",
			wantOK:     true,
			wantOffset: 0,
			wantLimit:  10,
		},
		{
			name:   "no limit",
			link:   "https://api.twitch.tv/kraken/streams/summary",
			wantOK: false,
		},
		{
			name:   "empty link",
			link:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paging, ok := ParsePaging(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOffset, paging.Offset)
				assert.Equal(t, tt.wantLimit, paging.Limit)
			}
		})
	}
}

func TestNewPaging(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		paging, err := NewPaging(10, 25)
		require.NoError(t, err)
		assert.Equal(t, 10, paging.Offset)
		assert.Equal(t, 25, paging.Limit)
		assert.Equal(t, 35, paging.NextOffset())
	})

	t.Run("limit too small", func(t *testing.T) {
		_, err := NewPaging(0, 0)
		assert.ErrorIs(t, err, ErrInvalidPaging)
	})

	t.Run("limit too large", func(t *testing.T) {
		_, err := NewPaging(0, 101)
		assert.ErrorIs(t, err, ErrInvalidPaging)
	})
}

func TestTopGamesPaging(t *testing.T) {
	topGames := &TopGames{
		Links: Links{
			"self": "https://api.twitch.tv/kraken/games/top?limit=10&offset=0",
			"next": "https://api.twitch.tv/kraken/games/top?limit=10&offset=10",
		},
		Total: 25,
	}

	paging, ok := topGames.Paging()
	require.True(t, ok)
	assert.Equal(t, 0, paging.Offset)
	assert.Equal(t, 10, paging.Limit)
	assert.True(t, topGames.HasNext())

	params, err := topGames.NextParams()
	require.NoError(t, err)
	assert.Equal(t, "limit=10&offset=10", params.Values().Encode())
}

func TestTopGamesHasNextOnLastPage(t *testing.T) {
	topGames := &TopGames{
		Links: Links{
			"self": "https://api.twitch.tv/kraken/games/top?limit=10&offset=20",
		},
		Total: 25,
	}

	assert.False(t, topGames.HasNext())
}

func TestStreamsPaging(t *testing.T) {
	streams := &Streams{
		Links: Links{
			"self": "https://api.twitch.tv/kraken/streams?limit=25&offset=0&stream_type=live",
		},
		Total: 100,
	}

	paging, ok := streams.Paging()
	require.True(t, ok)
	assert.Equal(t, 25, paging.Limit)
	assert.True(t, streams.HasNext())
}
