package client

import "time"

// Author is the embedded article byline.
type Author struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Category is the team or topic bucket an article belongs to.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Post is an article summary as list endpoints return it.
type Post struct {
	ID            uint      `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
	Views         int64     `json:"views"`
	Score         int       `json:"score"`
	HasAudio      bool      `json:"has_audio"`
	AudioURL      string    `json:"audio_url,omitempty"`
	AudioDuration int       `json:"audio_duration,omitempty"`
	Author        *Author   `json:"author,omitempty"`
	Category      *Category `json:"category,omitempty"`
}

// ArticleContent is the full article shape GetArticle returns. Author,
// Category, Views, and RelatedPosts are always populated; the client fills
// defaults when the server omits them.
type ArticleContent struct {
	ID             uint      `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt"`
	Content        string    `json:"content"`
	FeaturedImage  string    `json:"featured_image,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	Views          int64     `json:"views"`
	Score          int       `json:"score"`
	HasAudio       bool      `json:"has_audio"`
	AudioURL       string    `json:"audio_url,omitempty"`
	AudioDuration  int       `json:"audio_duration,omitempty"`
	SEOTitle       string    `json:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty"`
	Author         Author    `json:"author"`
	Category       Category  `json:"category"`
	RelatedPosts   []Post    `json:"related_posts"`
}

// FeedMeta is the feed response metadata block.
type FeedMeta struct {
	Total         int64 `json:"total"`
	Viewed        int   `json:"viewed"`
	Authenticated bool  `json:"authenticated"`
}

// FeedResponse is the aggregated homepage payload. An empty feed is a valid
// success value; Featured may be null.
type FeedResponse struct {
	Featured     *Post             `json:"featured"`
	Headlines    []Post            `json:"headlines"`
	TeamSections map[string][]Post `json:"team_sections"`
	Trending     []Post            `json:"trending"`
	Meta         FeedMeta          `json:"meta"`
}

// FeedOptions personalizes the feed. A nil or zero options value means the
// plain anonymous feed.
type FeedOptions struct {
	ViewedIDs       []uint   `json:"viewed_ids"`
	TeamPreferences []string `json:"team_preferences"`
}

// TeamArticlesPage is one page of a team's article list.
type TeamArticlesPage struct {
	Posts   []Post `json:"posts"`
	Page    int    `json:"page"`
	HasMore bool   `json:"has_more"`
}

// PageOptions selects a page of a list endpoint. Zero fields are omitted
// from the query string so the server applies its own defaults.
type PageOptions struct {
	Page  int
	Limit int
}

// SearchResponse holds search hits.
type SearchResponse struct {
	Results []Post `json:"results"`
	Total   int64  `json:"total"`
}

// ChatMessage is one room message. ContentType discriminates text from gif.
type ChatMessage struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	UserID      uint      `json:"user_id"`
	User        *Author   `json:"user,omitempty"`
	Content     string    `json:"content"`
	ContentType string    `json:"content_type"`
	GifURL      string    `json:"gif_url,omitempty"`
	ReplyToID   string    `json:"reply_to_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatPage is one page of room history. HasMore is the only pagination
// signal; there is no total count.
type ChatPage struct {
	Messages []ChatMessage `json:"messages"`
	HasMore  bool          `json:"has_more"`
}

// ChatHistoryOptions paginates room history. Before is the created_at of the
// oldest message already held, treated as an opaque cursor.
type ChatHistoryOptions struct {
	Before string
	Limit  int
}

// SendChatOptions carries the optional fields of a chat message. The client
// does not validate the combination; a gif URL with a text content type is
// the server's call.
type SendChatOptions struct {
	ContentType string
	GifURL      string
	ReplyToID   string
}

// PollOption is one poll choice with its running tally.
type PollOption struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Votes int64  `json:"votes"`
}

// Poll is a reader poll. UserOptionID is set when the authenticated caller
// has voted.
type Poll struct {
	ID           uint         `json:"id"`
	Question     string       `json:"question"`
	Active       bool         `json:"active"`
	Options      []PollOption `json:"options"`
	TotalVotes   int64        `json:"total_votes"`
	UserOptionID *uint        `json:"user_option_id,omitempty"`
}

// TeamInfo is one entry of the covered team enumeration.
type TeamInfo struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	League string `json:"league"`
	Color  string `json:"color,omitempty"`
}

// FeatureFlags toggles app surfaces remotely.
type FeatureFlags struct {
	Chat      bool `json:"chat"`
	GM        bool `json:"gm"`
	MockDraft bool `json:"mock_draft"`
	Audio     bool `json:"audio"`
}

// AdConfig is the ad placement configuration.
type AdConfig struct {
	Enabled          bool   `json:"enabled"`
	BannerUnit       string `json:"banner_unit,omitempty"`
	InterstitialUnit string `json:"interstitial_unit,omitempty"`
}

// MobileConfig is the admin-editable app configuration. Every field is
// optional from the client's point of view; the shape evolves between app
// releases.
type MobileConfig struct {
	Features      FeatureFlags `json:"features"`
	Ads           AdConfig     `json:"ads"`
	MinAppVersion string       `json:"min_app_version,omitempty"`
	Teams         []TeamInfo   `json:"teams,omitempty"`
}

// RosterPlayer is one roster entry on a team page.
type RosterPlayer struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Height   string `json:"height,omitempty"`
	Weight   int    `json:"weight,omitempty"`
	College  string `json:"college,omitempty"`
}

// Roster is a team's active roster.
type Roster struct {
	Team    string         `json:"team"`
	Season  string         `json:"season"`
	Players []RosterPlayer `json:"players"`
}

// ScheduleGame is one scheduled or completed game.
type ScheduleGame struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Home     bool   `json:"home"`
	Venue    string `json:"venue,omitempty"`
	Result   string `json:"result,omitempty"`
}

// Schedule is a team's season schedule.
type Schedule struct {
	Team   string         `json:"team"`
	Season string         `json:"season"`
	Games  []ScheduleGame `json:"games"`
}

// StatLeader is a per-category team leader line.
type StatLeader struct {
	Category string `json:"category"`
	Player   string `json:"player"`
	Value    string `json:"value"`
}

// TeamStats is a team's season stat block. Totals is an open map because the
// tracked columns differ per sport.
type TeamStats struct {
	Team     string             `json:"team"`
	Season   string             `json:"season"`
	Record   string             `json:"record"`
	Standing string             `json:"standing,omitempty"`
	Leaders  []StatLeader       `json:"leaders,omitempty"`
	Totals   map[string]float64 `json:"totals,omitempty"`
}
