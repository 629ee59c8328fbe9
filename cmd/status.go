package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show API reachability and token status",
	Long: `Query the API root and report whether the API is reachable and whether
the request was authenticated.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	info, err := twitchClient.BasicInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach the Twitch API: %w", err)
	}

	if jsonOutput {
		return printJSON(info)
	}

	fmt.Printf("API:   %s (reachable)\n", cfg.Twitch.URL)

	if info.Token.Valid {
		fmt.Printf("Token: valid, user %s\n", info.Token.UserName)
		if info.Token.Authorization != nil {
			fmt.Printf("Scopes: %s\n", strings.Join(info.Token.Authorization.Scopes, ", "))
		}
	} else {
		fmt.Println("Token: none (anonymous access)")
	}

	return nil
}
