package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitchctl/twitchctl/twitch"
)

var (
	gamesLimit  int
	gamesOffset int
)

// gamesCmd represents the games command
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the top games by viewer count",
	Long:  `List games sorted by number of current viewers on Twitch, most popular first.`,
	RunE:  runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)

	gamesCmd.Flags().IntVarP(&gamesLimit, "limit", "l", 0, "maximum number of games (default from config)")
	gamesCmd.Flags().IntVar(&gamesOffset, "offset", 0, "pagination offset")
}

func runGames(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	limit := gamesLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	params := twitch.TopGamesParams{}.
		WithLimit(limit).
		WithOffset(gamesOffset)

	topGames, err := twitchClient.TopGames(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to get top games: %w", err)
	}

	if jsonOutput {
		return printJSON(topGames)
	}

	if len(topGames.Top) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 78))
	fmt.Printf("%-4s %-45s %12s %12s\n", "#", "GAME", "VIEWERS", "CHANNELS")
	fmt.Println(strings.Repeat("━", 78))

	for i, info := range topGames.Top {
		name := info.Game.Name
		if len(name) > 43 {
			name = name[:40] + "..."
		}
		fmt.Printf("%-4d %-45s %12d %12d\n", gamesOffset+i+1, name, info.Viewers, info.Channels)
	}
	fmt.Println(strings.Repeat("━", 78))
	fmt.Printf("Showing %d of %d games\n", len(topGames.Top), topGames.Total)

	return nil
}
