package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetChatMessages fetches room history, newest first. Pass the returned
// ChatPage.HasMore back through opts.Before to page further; there is no
// total count to paginate against.
func (c *Client) GetChatMessages(ctx context.Context, room string, opts *ChatHistoryOptions) (*ChatPage, error) {
	query := url.Values{}
	query.Set("room", room)
	if opts != nil {
		if opts.Before != "" {
			query.Set("before", opts.Before)
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
	}

	var page ChatPage
	if err := c.do(ctx, http.MethodGet, "/api/chat/messages", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// sendChatRequest always serializes every key; the server sees the full
// shape whether or not the optional fields carry values.
type sendChatRequest struct {
	RoomID      string `json:"roomId"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	GifURL      string `json:"gifUrl"`
	ReplyToID   string `json:"replyToId"`
}

// SendChatMessage posts a message into a room and returns the stored
// message. ContentType defaults to "text"; a gif URL without a gif content
// type is sent as-is for the server to interpret or reject.
func (c *Client) SendChatMessage(ctx context.Context, room, content string, opts *SendChatOptions) (*ChatMessage, error) {
	req := sendChatRequest{
		RoomID:      room,
		Content:     content,
		ContentType: "text",
	}
	if opts != nil {
		if opts.ContentType != "" {
			req.ContentType = opts.ContentType
		}
		req.GifURL = opts.GifURL
		req.ReplyToID = opts.ReplyToID
	}

	var msg ChatMessage
	if err := c.do(ctx, http.MethodPost, "/api/chat/messages", nil, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AskAI sends one reader question and returns the complete answer. No
// streaming; the whole reply arrives in one response body.
func (c *Client) AskAI(ctx context.Context, query string) (string, error) {
	var resp struct {
		Answer string `json:"answer"`
	}
	err := c.do(ctx, http.MethodPost, "/api/ask-ai", nil, map[string]string{"query": query}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

// GetPoll fetches a poll with its current tallies.
func (c *Client) GetPoll(ctx context.Context, pollID uint) (*Poll, error) {
	var poll Poll
	if err := c.do(ctx, http.MethodGet, "/api/polls/"+strconv.FormatUint(uint64(pollID), 10), nil, nil, &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

// VotePoll casts a vote and returns the server's post-vote poll state as the
// authoritative tally. No idempotency guard here; whether a second vote
// overwrites or is rejected is the server's rule.
func (c *Client) VotePoll(ctx context.Context, pollID, optionID uint) (*Poll, error) {
	var poll Poll
	err := c.do(ctx, http.MethodPost, "/api/polls/"+strconv.FormatUint(uint64(pollID), 10)+"/vote",
		nil, map[string]uint{"option_id": optionID}, &poll)
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// GetMobileConfig fetches the remote app configuration. Treat every field as
// optional; the shape is admin-editable and evolves between releases.
func (c *Client) GetMobileConfig(ctx context.Context) (*MobileConfig, error) {
	var cfg MobileConfig
	if err := c.do(ctx, http.MethodGet, "/api/mobile/config", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetRoster fetches a team's roster page.
func (c *Client) GetRoster(ctx context.Context, team string) (*Roster, error) {
	var roster Roster
	if err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(team)+"/roster", nil, nil, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// GetSchedule fetches a team's season schedule.
func (c *Client) GetSchedule(ctx context.Context, team string) (*Schedule, error) {
	var schedule Schedule
	if err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(team)+"/schedule", nil, nil, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetStats fetches a team's season stat block.
func (c *Client) GetStats(ctx context.Context, team string) (*TeamStats, error) {
	var stats TeamStats
	if err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(team)+"/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
