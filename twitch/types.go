package twitch

// Links holds the "_links" objects Twitch embeds in most responses,
// mapping a relation name (e.g. "self", "next") to a URL.
type Links map[string]string

// Self returns the link with key "self", or an empty string.
func (l Links) Self() string {
	return l["self"]
}

// Next returns the link with key "next", or an empty string.
func (l Links) Next() string {
	return l["next"]
}

// ImageLinks holds the URLs for the different sizes of an image.
type ImageLinks struct {
	Large    string `json:"large"`
	Medium   string `json:"medium"`
	Small    string `json:"small"`
	Template string `json:"template"`
}

// TopGames is the response of the /games/top endpoint: games sorted by
// number of current viewers, most popular first.
type TopGames struct {
	Links Links      `json:"_links"`
	Total int        `json:"_total"`
	Top   []GameInfo `json:"top"`
}

// GameInfo pairs a game with its current viewer and channel counts.
type GameInfo struct {
	Viewers  int  `json:"viewers"`
	Channels int  `json:"channels"`
	Game     Game `json:"game"`
}

// Game describes a game category (e.g. "StarCraft II: Heart of the Swarm").
type Game struct {
	Links       Links      `json:"_links"`
	ID          int64      `json:"_id"`
	GiantbombID int64      `json:"giantbomb_id"`
	Name        string     `json:"name"`
	Box         ImageLinks `json:"box"`
	Logo        ImageLinks `json:"logo"`
}

// Streams is the response of the /streams endpoint: live streams matching
// the query parameters, sorted by viewers descending.
type Streams struct {
	Total   int      `json:"_total"`
	Streams []Stream `json:"streams"`
	Links   Links    `json:"_links"`
}

// Stream represents a live video broadcast on a channel.
type Stream struct {
	ID          int64      `json:"_id"`
	Game        string     `json:"game"`
	Viewers     int        `json:"viewers"`
	AverageFPS  float64    `json:"average_fps"`
	Delay       int        `json:"delay"`
	VideoHeight int        `json:"video_height"`
	IsPlaylist  bool       `json:"is_playlist"`
	CreatedAt   string     `json:"created_at"`
	Channel     Channel    `json:"channel"`
	Preview     ImageLinks `json:"preview"`
	Links       Links      `json:"_links"`
}

// FeaturedStreams is the response of the /streams/featured endpoint.
type FeaturedStreams struct {
	Links    Links            `json:"_links"`
	Featured []FeaturedStream `json:"featured"`
}

// FeaturedStream is a promoted stream with its spotlight metadata.
type FeaturedStream struct {
	Text      string `json:"text"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	Sponsored bool   `json:"sponsored"`
	Priority  int    `json:"priority"`
	Scheduled bool   `json:"scheduled"`
	Stream    Stream `json:"stream"`
}

// ChannelStream is the response of the /streams/{channel} endpoint.
// Stream is nil when the channel is offline.
type ChannelStream struct {
	Links  Links   `json:"_links"`
	Stream *Stream `json:"stream"`
}

// IsLive reports whether the channel is currently broadcasting.
func (cs *ChannelStream) IsLive() bool {
	return cs.Stream != nil
}

// StreamsSummary is the response of the /streams/summary endpoint.
type StreamsSummary struct {
	Viewers  int   `json:"viewers"`
	Channels int   `json:"channels"`
	Links    Links `json:"_links"`
}

// Channel describes a Twitch channel: the home location for a user's
// content, including display information, status and follower counts.
type Channel struct {
	ID                           int64  `json:"_id"`
	Name                         string `json:"name"`
	DisplayName                  string `json:"display_name"`
	Game                         string `json:"game"`
	Status                       string `json:"status"`
	Mature                       bool   `json:"mature"`
	Delay                        int    `json:"delay"`
	Language                     string `json:"language"`
	BroadcasterLanguage          string `json:"broadcaster_language"`
	CreatedAt                    string `json:"created_at"`
	UpdatedAt                    string `json:"updated_at"`
	Logo                         string `json:"logo"`
	Banner                       string `json:"banner"`
	VideoBanner                  string `json:"video_banner"`
	Background                   string `json:"background"`
	ProfileBanner                string `json:"profile_banner"`
	ProfileBannerBackgroundColor string `json:"profile_banner_background_color"`
	Partner                      bool   `json:"partner"`
	URL                          string `json:"url"`
	Views                        int64  `json:"views"`
	Followers                    int64  `json:"followers"`
	Links                        Links  `json:"_links"`
}

// GetDisplayName returns the best available display name for the channel.
func (c *Channel) GetDisplayName() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// Ingests is the response of the /ingests endpoint.
type Ingests struct {
	Links   Links    `json:"_links"`
	Ingests []Ingest `json:"ingests"`
}

// Ingest is an RTMP ingest point. Directing an RTMP stream with the stream
// key injected into URLTemplate broadcasts the content live on Twitch.
type Ingest struct {
	ID           int64   `json:"_id"`
	Name         string  `json:"name"`
	Availability float64 `json:"availability"`
	Default      bool    `json:"default"`
	URLTemplate  string  `json:"url_template"`
}

// BasicInfo is the response of the API root: basic information about the
// API and the authentication status of the caller.
type BasicInfo struct {
	Token Token `json:"token"`
	Links Links `json:"_links"`
}

// Token describes the authentication status of the current request.
type Token struct {
	Valid         bool           `json:"valid"`
	UserName      string         `json:"user_name"`
	Authorization *Authorization `json:"authorization"`
}

// Authorization holds the scopes and timestamps of a valid token.
// It is nil for unauthenticated access.
type Authorization struct {
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}
