// Package twitch provides a readonly client for the Twitch Kraken REST API.
//
// The client issues HTTP GET requests against the fixed API base URL and
// deserializes the JSON responses into typed result structs. Requests carry
// an Accept header pinning API version 3 and, when configured, a Client-ID
// header identifying the calling application.
//
// # Usage
//
// Create a client with the default base URL and your client ID:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := twitch.NewClient(twitch.DefaultBaseURL, "your-client-id", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	topGames, err := client.TopGames(ctx, twitch.TopGamesParams{}.WithLimit(10))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, info := range topGames.Top {
//		fmt.Printf("%s: %d viewers\n", info.Game.Name, info.Viewers)
//	}
//
// # Parameters
//
// Endpoints with query parameters take a params value built with chainable
// With* methods. Each method returns a modified copy, so params values are
// safe to share and reuse:
//
//	base := twitch.StreamsParams{}.WithGame("Dota 2")
//	firstPage := base.WithLimit(25)
//	secondPage := firstPage.WithOffset(25)
//
// Unset parameters are omitted from the query string so the API applies
// its own defaults.
//
// # Pagination
//
// Paginated results expose the offset/limit they were queried with via
// their Paging method, parsed from the "self" link Twitch embeds in the
// response. Walking pages feeds the next offset back into a params value:
//
//	games, err := client.TopGames(ctx, twitch.TopGamesParams{})
//	for err == nil && games.HasNext() {
//		var params twitch.TopGamesParams
//		params, err = games.NextParams()
//		if err != nil {
//			break
//		}
//		games, err = client.TopGames(ctx, params)
//	}
//
// # Errors
//
// Network failures and JSON decode failures are returned wrapped. Non-2xx
// responses are returned as *APIError, which classifies the status code:
//
//	var apiErr *twitch.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown channel
//	}
package twitch
