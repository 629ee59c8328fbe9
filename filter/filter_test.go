package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitchctl/twitchctl/twitch"
)

func testStream(name, game string, viewers int) twitch.Stream {
	return twitch.Stream{
		Game:    game,
		Viewers: viewers,
		Channel: twitch.Channel{
			Name:        name,
			DisplayName: name,
			Partner:     viewers > 1000,
			Followers:   int64(viewers) * 10,
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "valid expression",
			expression: `Viewers > 100`,
		},
		{
			name:       "valid with helper",
			expression: `contains(Game, "starcraft")`,
		},
		{
			name:       "empty expression",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: `Viewers >`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		stream     twitch.Stream
		want       bool
	}{
		{
			name:       "viewer threshold matches",
			expression: `Viewers >= 2000`,
			stream:     testStream("big", "Dota 2", 2000),
			want:       true,
		},
		{
			name:       "viewer threshold misses",
			expression: `Viewers >= 2000`,
			stream:     testStream("small", "Dota 2", 10),
			want:       false,
		},
		{
			name:       "case-insensitive contains",
			expression: `contains(Game, "dota")`,
			stream:     testStream("x", "Dota 2", 1),
			want:       true,
		},
		{
			name:       "regexp match",
			expression: `matches("^test_", Name)`,
			stream:     testStream("test_channel", "", 1),
			want:       true,
		},
		{
			name:       "combined clauses",
			expression: `Partner && Viewers > 1000 && Game == "Dota 2"`,
			stream:     testStream("pro", "Dota 2", 5000),
			want:       true,
		},
		{
			name:       "followers field",
			expression: `Followers >= 50000`,
			stream:     testStream("popular", "", 5000),
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(tt.stream)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterStreams(t *testing.T) {
	streams := []twitch.Stream{
		testStream("a", "Dota 2", 5000),
		testStream("b", "StarCraft II", 200),
		testStream("c", "Dota 2", 50),
	}

	f, err := Compile(`Game == "Dota 2" && Viewers >= 100`)
	require.NoError(t, err)

	matched, err := f.FilterStreams(streams)
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].Channel.Name)
}

func TestFilterStreamsPreservesOrder(t *testing.T) {
	streams := []twitch.Stream{
		testStream("first", "Dota 2", 300),
		testStream("second", "Dota 2", 200),
		testStream("third", "Dota 2", 100),
	}

	f, err := Compile(`Viewers >= 150`)
	require.NoError(t, err)

	matched, err := f.FilterStreams(streams)
	require.NoError(t, err)

	require.Len(t, matched, 2)
	assert.Equal(t, "first", matched[0].Channel.Name)
	assert.Equal(t, "second", matched[1].Channel.Name)
}

func TestHoursLiveHelper(t *testing.T) {
	stream := testStream("x", "", 1)
	stream.CreatedAt = "2015-02-12T04:42:31Z"

	f, err := Compile(`hoursLive(CreatedAt) > 1`)
	require.NoError(t, err)

	got, err := f.Match(stream)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHoursLiveHelperBadTimestamp(t *testing.T) {
	stream := testStream("x", "", 1)
	stream.CreatedAt = "not-a-timestamp"

	f, err := Compile(`hoursLive(CreatedAt) == 0.0`)
	require.NoError(t, err)

	got, err := f.Match(stream)
	require.NoError(t, err)
	assert.True(t, got)
}
