package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitchctl/twitchctl/twitch"
)

var (
	streamsGame     string
	streamsChannels []string
	streamsType     string
	streamsLimit    int
	streamsOffset   int

	featuredLimit  int
	featuredOffset int

	summaryGame string
)

// streamsCmd represents the streams command
var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "List live streams",
	Long: `List live streams sorted by number of viewers descending.

Results can be narrowed server-side with --game, --channel and --type, and
client-side with an expression passed via --filter or a named preset from
the config file, e.g.:

  twitchctl streams --game "Dota 2" --filter 'Viewers > 1000 && Partner'`,
	RunE: runStreams,
}

// featuredCmd represents the streams featured command
var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured (promoted) streams",
	RunE:  runFeatured,
}

// summaryCmd represents the streams summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a summary of current streams",
	RunE:  runSummary,
}

// streamCmd represents the stream command
var streamCmd = &cobra.Command{
	Use:   "stream <channel>...",
	Short: "Show the live status of one or more channels",
	Long: `Show the stream object of the given channels. Multiple channels are
fetched concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStream,
}

func init() {
	rootCmd.AddCommand(streamsCmd)
	rootCmd.AddCommand(streamCmd)
	streamsCmd.AddCommand(featuredCmd)
	streamsCmd.AddCommand(summaryCmd)

	streamsCmd.Flags().StringVarP(&streamsGame, "game", "g", "", "only streams categorized under this game")
	streamsCmd.Flags().StringSliceVarP(&streamsChannels, "channel", "c", nil, "only streams from these channels (repeatable)")
	streamsCmd.Flags().StringVarP(&streamsType, "type", "t", "", "stream type: all, playlist or live")
	streamsCmd.Flags().IntVarP(&streamsLimit, "limit", "l", 0, "maximum number of streams (default from config)")
	streamsCmd.Flags().IntVar(&streamsOffset, "offset", 0, "pagination offset")
	streamsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	streamsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	featuredCmd.Flags().IntVarP(&featuredLimit, "limit", "l", 0, "maximum number of streams (default from config)")
	featuredCmd.Flags().IntVar(&featuredOffset, "offset", 0, "pagination offset")

	summaryCmd.Flags().StringVarP(&summaryGame, "game", "g", "", "only streams categorized under this game")
}

func runStreams(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	streamFilter, err := compileFilter()
	if err != nil {
		return err
	}

	limit := streamsLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	params := twitch.StreamsParams{}.
		WithLimit(limit).
		WithOffset(streamsOffset)
	if streamsGame != "" {
		params = params.WithGame(streamsGame)
	}
	if len(streamsChannels) > 0 {
		params = params.WithChannels(streamsChannels)
	}
	if streamsType != "" {
		switch streamsType {
		case "all", "playlist", "live":
			params = params.WithStreamType(twitch.StreamType(streamsType))
		default:
			return fmt.Errorf("invalid stream type: %s (must be all, playlist or live)", streamsType)
		}
	}

	streams, err := twitchClient.Streams(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to get streams: %w", err)
	}

	listed := streams.Streams
	if streamFilter != nil {
		listed, err = streamFilter.FilterStreams(listed)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(listed)
	}

	if len(listed) == 0 {
		fmt.Println("No streams found.")
		return nil
	}

	printStreamTable(listed)
	fmt.Printf("Showing %d of %d streams\n", len(listed), streams.Total)

	return nil
}

func runFeatured(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	limit := featuredLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	params := twitch.FeaturedStreamsParams{}.
		WithLimit(limit).
		WithOffset(featuredOffset)

	featured, err := twitchClient.FeaturedStreams(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to get featured streams: %w", err)
	}

	if jsonOutput {
		return printJSON(featured)
	}

	if len(featured.Featured) == 0 {
		fmt.Println("No featured streams found.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 85))
	fmt.Printf("%-40s %-25s %10s %8s\n", "TITLE", "CHANNEL", "VIEWERS", "SPONSOR")
	fmt.Println(strings.Repeat("━", 85))

	for _, fs := range featured.Featured {
		title := fs.Title
		if len(title) > 38 {
			title = title[:35] + "..."
		}
		sponsored := ""
		if fs.Sponsored {
			sponsored = "yes"
		}
		fmt.Printf("%-40s %-25s %10d %8s\n", title, fs.Stream.Channel.Name, fs.Stream.Viewers, sponsored)
	}
	fmt.Println(strings.Repeat("━", 85))

	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	params := twitch.StreamsSummaryParams{}
	if summaryGame != "" {
		params = params.WithGame(summaryGame)
	}

	summary, err := twitchClient.StreamsSummary(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to get streams summary: %w", err)
	}

	if jsonOutput {
		return printJSON(summary)
	}

	scope := "all games"
	if summaryGame != "" {
		scope = summaryGame
	}
	fmt.Printf("Streams summary (%s)\n", scope)
	fmt.Printf("  Channels: %d\n", summary.Channels)
	fmt.Printf("  Viewers:  %d\n", summary.Viewers)

	return nil
}

func runStream(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	results, err := twitchClient.StreamsForChannels(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to get streams: %w", err)
	}

	if jsonOutput {
		return printJSON(results)
	}

	// Stable output order regardless of completion order.
	channels := make([]string, 0, len(results))
	for channel := range results {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	for _, channel := range channels {
		cs := results[channel]
		if !cs.IsLive() {
			fmt.Printf("%s: offline\n", channel)
			continue
		}
		stream := cs.Stream
		fmt.Printf("%s: live, playing %s for %d viewers (since %s)\n",
			channel, stream.Game, stream.Viewers, stream.CreatedAt)
	}

	for _, channel := range args {
		if _, ok := results[channel]; !ok {
			fmt.Printf("%s: not found\n", channel)
		}
	}

	return nil
}

// printStreamTable renders streams in the shared table layout
func printStreamTable(streams []twitch.Stream) {
	fmt.Println(strings.Repeat("━", 85))
	fmt.Printf("%-25s %-35s %10s %6s\n", "CHANNEL", "GAME", "VIEWERS", "FPS")
	fmt.Println(strings.Repeat("━", 85))

	for _, s := range streams {
		game := s.Game
		if len(game) > 33 {
			game = game[:30] + "..."
		}
		fmt.Printf("%-25s %-35s %10d %6.0f\n", s.Channel.Name, game, s.Viewers, s.AverageFPS)
	}
	fmt.Println(strings.Repeat("━", 85))
}
