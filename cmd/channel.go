package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twitchctl/twitchctl/twitch"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel <name>",
	Short: "Show details of a channel",
	Args:  cobra.ExactArgs(1),
	RunE:  runChannel,
}

func init() {
	rootCmd.AddCommand(channelCmd)
}

func runChannel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	name := args[0]

	channel, err := twitchClient.Channel(ctx, name)
	if err != nil {
		var apiErr *twitch.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return fmt.Errorf("channel %q does not exist", name)
		}
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if jsonOutput {
		return printJSON(channel)
	}

	fmt.Printf("Channel: %s (%s)\n", channel.GetDisplayName(), channel.URL)
	if channel.Status != "" {
		fmt.Printf("  Status:    %s\n", channel.Status)
	}
	if channel.Game != "" {
		fmt.Printf("  Game:      %s\n", channel.Game)
	}
	fmt.Printf("  Language:  %s\n", channel.Language)
	fmt.Printf("  Partner:   %t\n", channel.Partner)
	fmt.Printf("  Views:     %d\n", channel.Views)
	fmt.Printf("  Followers: %d\n", channel.Followers)
	fmt.Printf("  Created:   %s\n", channel.CreatedAt)

	return nil
}
