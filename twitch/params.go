package twitch

import (
	"net/url"
	"strconv"
	"strings"
)

// StreamType narrows a streams query to a certain kind of broadcast.
type StreamType string

const (
	// StreamTypeAll includes every stream.
	StreamTypeAll StreamType = "all"
	// StreamTypePlaylist includes only playlists.
	StreamTypePlaylist StreamType = "playlist"
	// StreamTypeLive includes only live streams.
	StreamTypeLive StreamType = "live"
)

// String returns the query string value for the stream type.
func (st StreamType) String() string {
	return string(st)
}

// TopGamesParams holds the optional parameters for Client.TopGames.
//
// The zero value requests the API defaults. With* methods take a copy and
// return it modified, so a params value handed to another caller can never
// be changed underneath it:
//
//	params := twitch.TopGamesParams{}.
//		WithOffset(40).
//		WithLimit(20)
type TopGamesParams struct {
	offset *int
	limit  *int
}

// WithOffset sets the pagination offset. Twitch defaults to 0 if not set.
func (p TopGamesParams) WithOffset(offset int) TopGamesParams {
	p.offset = &offset
	return p
}

// WithLimit sets the maximum number of objects in the result.
// Twitch defaults to 10 if not set, the maximum is 100.
func (p TopGamesParams) WithLimit(limit int) TopGamesParams {
	p.limit = &limit
	return p
}

// Values encodes the set parameters as a URL query.
func (p TopGamesParams) Values() url.Values {
	values := url.Values{}
	if p.offset != nil {
		values.Set("offset", strconv.Itoa(*p.offset))
	}
	if p.limit != nil {
		values.Set("limit", strconv.Itoa(*p.limit))
	}
	return values
}

// StreamsParams holds the optional parameters for Client.Streams.
//
//	params := twitch.StreamsParams{}.
//		WithGame("StarCraft II: Heart of the Swarm").
//		WithStreamType(twitch.StreamTypeLive).
//		WithLimit(20)
type StreamsParams struct {
	game       string
	channels   []string
	offset     *int
	limit      *int
	clientID   string
	streamType StreamType
}

// WithGame restricts results to streams categorized under the game.
func (p StreamsParams) WithGame(game string) StreamsParams {
	p.game = game
	return p
}

// WithChannel adds a channel to the channel list.
// Can be called multiple times to build up a list.
func (p StreamsParams) WithChannel(channel string) StreamsParams {
	channels := make([]string, 0, len(p.channels)+1)
	channels = append(channels, p.channels...)
	channels = append(channels, channel)
	p.channels = channels
	return p
}

// WithChannels replaces the channel list. An empty slice clears the list so
// the API default (all channels) applies again.
func (p StreamsParams) WithChannels(channels []string) StreamsParams {
	p.channels = append([]string(nil), channels...)
	return p
}

// WithOffset sets the pagination offset. Twitch defaults to 0 if not set.
func (p StreamsParams) WithOffset(offset int) StreamsParams {
	p.offset = &offset
	return p
}

// WithLimit sets the maximum number of objects in the result.
// Twitch defaults to 25 if not set, the maximum is 100.
func (p StreamsParams) WithLimit(limit int) StreamsParams {
	p.limit = &limit
	return p
}

// WithClientID restricts results to streams from applications of the
// given client ID.
func (p StreamsParams) WithClientID(clientID string) StreamsParams {
	p.clientID = clientID
	return p
}

// WithStreamType restricts results to a certain stream type.
func (p StreamsParams) WithStreamType(streamType StreamType) StreamsParams {
	p.streamType = streamType
	return p
}

// Values encodes the set parameters as a URL query.
func (p StreamsParams) Values() url.Values {
	values := url.Values{}
	if p.game != "" {
		values.Set("game", p.game)
	}
	if len(p.channels) > 0 {
		values.Set("channel", strings.Join(p.channels, ","))
	}
	if p.offset != nil {
		values.Set("offset", strconv.Itoa(*p.offset))
	}
	if p.limit != nil {
		values.Set("limit", strconv.Itoa(*p.limit))
	}
	if p.clientID != "" {
		values.Set("client_id", p.clientID)
	}
	if p.streamType != "" {
		values.Set("stream_type", p.streamType.String())
	}
	return values
}

// FeaturedStreamsParams holds the optional parameters for
// Client.FeaturedStreams.
//
// Note that the number of promoted streams varies from day to day, and
// there is no guarantee on how many streams will be promoted at a given
// time.
type FeaturedStreamsParams struct {
	offset *int
	limit  *int
}

// WithOffset sets the pagination offset. Twitch defaults to 0 if not set.
func (p FeaturedStreamsParams) WithOffset(offset int) FeaturedStreamsParams {
	p.offset = &offset
	return p
}

// WithLimit sets the maximum number of objects in the result.
// Twitch defaults to 25 if not set, the maximum is 100.
func (p FeaturedStreamsParams) WithLimit(limit int) FeaturedStreamsParams {
	p.limit = &limit
	return p
}

// Values encodes the set parameters as a URL query.
func (p FeaturedStreamsParams) Values() url.Values {
	values := url.Values{}
	if p.offset != nil {
		values.Set("offset", strconv.Itoa(*p.offset))
	}
	if p.limit != nil {
		values.Set("limit", strconv.Itoa(*p.limit))
	}
	return values
}

// StreamsSummaryParams holds the optional parameters for
// Client.StreamsSummary.
type StreamsSummaryParams struct {
	game string
}

// WithGame restricts the summary to streams categorized under the game.
func (p StreamsSummaryParams) WithGame(game string) StreamsSummaryParams {
	p.game = game
	return p
}

// Values encodes the set parameters as a URL query.
func (p StreamsSummaryParams) Values() url.Values {
	values := url.Values{}
	if p.game != "" {
		values.Set("game", p.game)
	}
	return values
}
