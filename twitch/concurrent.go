package twitch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps the number of in-flight requests for fan-out calls.
const DefaultConcurrency = 10

// StreamsForChannels fetches the stream objects for multiple channels
// concurrently. Channels that fail to resolve are logged and omitted from
// the result, so the map only fails as a whole when the context is
// cancelled.
func (c *Client) StreamsForChannels(ctx context.Context, channels []string) (map[string]*ChannelStream, error) {
	results := make(map[string]*ChannelStream, len(channels))
	if len(channels) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	var mu sync.Mutex

	for _, channel := range channels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			channelStream, err := c.Stream(ctx, channel)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("channel", channel).
					Msg("Failed to get stream, skipping channel")
				return nil
			}

			mu.Lock()
			results[channel] = channelStream
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
