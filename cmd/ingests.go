package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ingestsCmd represents the ingests command
var ingestsCmd = &cobra.Command{
	Use:   "ingests",
	Short: "List RTMP ingest points",
	Long: `List the RTMP ingest points. Directing an RTMP stream with your stream
key injected into the URL template broadcasts your content live on Twitch.`,
	RunE: runIngests,
}

func init() {
	rootCmd.AddCommand(ingestsCmd)
}

func runIngests(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ingests, err := twitchClient.Ingests(ctx)
	if err != nil {
		return fmt.Errorf("failed to get ingests: %w", err)
	}

	if jsonOutput {
		return printJSON(ingests)
	}

	if len(ingests.Ingests) == 0 {
		fmt.Println("No ingest points found.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 95))
	fmt.Printf("%-30s %-12s %-8s %s\n", "NAME", "AVAILABLE", "DEFAULT", "URL TEMPLATE")
	fmt.Println(strings.Repeat("━", 95))

	for _, ingest := range ingests.Ingests {
		def := ""
		if ingest.Default {
			def = "yes"
		}
		fmt.Printf("%-30s %-12.1f %-8s %s\n", ingest.Name, ingest.Availability, def, ingest.URLTemplate)
	}
	fmt.Println(strings.Repeat("━", 95))

	return nil
}
