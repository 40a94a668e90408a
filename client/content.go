package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// GetFeed fetches the homepage feed. A nil opts issues a plain GET; supplying
// viewed ids or team preferences switches to a personalization POST. An empty
// feed is a valid result, never an error.
func (c *Client) GetFeed(ctx context.Context, opts *FeedOptions) (*FeedResponse, error) {
	var feed FeedResponse
	if opts != nil && (len(opts.ViewedIDs) > 0 || len(opts.TeamPreferences) > 0) {
		if err := c.do(ctx, http.MethodPost, "/api/feed", nil, opts, &feed); err != nil {
			return nil, err
		}
		return &feed, nil
	}
	if err := c.do(ctx, http.MethodGet, "/api/feed", nil, nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// rawArticle is the server post representation before defaulting. Pointer
// fields distinguish "absent" from zero values.
type rawArticle struct {
	ID             uint       `json:"id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content"`
	FeaturedImage  string     `json:"featured_image"`
	PublishedAt    time.Time  `json:"published_at"`
	Views          *int64     `json:"views"`
	Score          int        `json:"score"`
	HasAudio       bool       `json:"has_audio"`
	AudioURL       string     `json:"audio_url"`
	AudioDuration  int        `json:"audio_duration"`
	SEOTitle       string     `json:"seo_title"`
	SEODescription string     `json:"seo_description"`
	Author         *Author    `json:"author"`
	Category       *Category  `json:"category"`
	RelatedPosts   []Post     `json:"related_posts"`
}

// GetArticle fetches one article by numeric id or slug and remaps the raw
// post into ArticleContent, substituting defaults for missing author,
// category, views, and related posts. Partial upstream payloads must not
// make this throw; absent fields become defaults.
func (c *Client) GetArticle(ctx context.Context, id string) (*ArticleContent, error) {
	var raw rawArticle
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}

	article := &ArticleContent{
		ID:             raw.ID,
		Slug:           raw.Slug,
		Title:          raw.Title,
		Excerpt:        raw.Excerpt,
		Content:        raw.Content,
		FeaturedImage:  raw.FeaturedImage,
		PublishedAt:    raw.PublishedAt,
		Score:          raw.Score,
		HasAudio:       raw.HasAudio,
		AudioURL:       raw.AudioURL,
		AudioDuration:  raw.AudioDuration,
		SEOTitle:       raw.SEOTitle,
		SEODescription: raw.SEODescription,
		Author:         Author{ID: 0, DisplayName: "Staff"},
		Category:       Category{Slug: "news", Name: "News"},
		RelatedPosts:   []Post{},
	}
	if raw.Views != nil {
		article.Views = *raw.Views
	}
	if raw.Author != nil {
		article.Author = *raw.Author
	}
	if raw.Category != nil {
		article.Category = *raw.Category
	}
	if raw.RelatedPosts != nil {
		article.RelatedPosts = raw.RelatedPosts
	}
	return article, nil
}

// GetTeamArticles lists one page of a team's articles. Zero fields in opts
// are left out of the query string entirely; absent means absent, the server
// picks its own defaults.
func (c *Client) GetTeamArticles(ctx context.Context, team string, opts *PageOptions) (*TeamArticlesPage, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
	}

	var page TeamArticlesPage
	if err := c.do(ctx, http.MethodGet, "/api/team/"+url.PathEscape(team), query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RecordView reports an article view. Fire and forget; callers should not
// block UI on its completion.
func (c *Client) RecordView(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPost, "/api/views/"+strconv.FormatUint(uint64(id), 10), nil, nil, nil)
}

// Search runs a full-text article search.
func (c *Client) Search(ctx context.Context, q string) (*SearchResponse, error) {
	query := url.Values{}
	query.Set("q", q)

	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "/api/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAudioArticle fetches one audio article by slug. Unlike the playlist
// helpers below, failures propagate normally.
func (c *Client) GetAudioArticle(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/audio/"+url.PathEscape(slug), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetNextAudioArticle returns the playlist entry after the given slug. Every
// failure, transport or server, is swallowed into a nil return with a log
// line; callers cannot distinguish "end of playlist" from "request failed".
func (c *Client) GetNextAudioArticle(ctx context.Context, afterSlug string) *Post {
	query := url.Values{}
	query.Set("after", afterSlug)

	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/audio/next", query, nil, &post); err != nil {
		c.logger.Warn("next audio article unavailable", zap.String("after", afterSlug), zap.Error(err))
		return nil
	}
	return &post
}

// GetFirstAudioArticle returns a starting point for the audio playlist: the
// newest audio article for a team when one is given, otherwise the first
// audio article in the recent feed. Like GetNextAudioArticle it never
// returns an error; any failure yields nil.
func (c *Client) GetFirstAudioArticle(ctx context.Context, team string) *Post {
	if team != "" {
		page, err := c.GetTeamArticles(ctx, team, nil)
		if err != nil {
			c.logger.Warn("first audio article unavailable", zap.String("team", team), zap.Error(err))
			return nil
		}
		return firstAudioPost(page.Posts)
	}

	feed, err := c.GetFeed(ctx, nil)
	if err != nil {
		c.logger.Warn("first audio article unavailable", zap.Error(err))
		return nil
	}
	candidates := feed.Headlines
	if feed.Featured != nil {
		candidates = append([]Post{*feed.Featured}, candidates...)
	}
	return firstAudioPost(candidates)
}

func firstAudioPost(posts []Post) *Post {
	for i := range posts {
		if posts[i].HasAudio {
			return &posts[i]
		}
	}
	return nil
}
