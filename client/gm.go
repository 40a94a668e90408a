package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// GMClient covers the trade simulator surface under /api/gm. Obtain one via
// Client.GM; it shares the parent's base URL, token, and request helper.
type GMClient struct {
	c *Client
}

// GMPlayer is a tradeable roster entry with contract fields.
type GMPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Overall  int    `json:"overall"`
	Salary   int64  `json:"salary"`
	Years    int    `json:"years"`
}

// GMDraftPick is a tradeable future pick.
type GMDraftPick struct {
	Year  int `json:"year"`
	Round int `json:"round"`
}

// OpponentTeam is a trade partner with its tradeable assets.
type OpponentTeam struct {
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	CapSpace int64         `json:"cap_space"`
	Players  []GMPlayer    `json:"players"`
	Picks    []GMDraftPick `json:"picks"`
}

// CapData is the salary-cap snapshot for the user's team.
type CapData struct {
	Season   string `json:"season"`
	CapSpace int64  `json:"cap_space"`
	CapTotal int64  `json:"cap_total"`
}

// GradeResult is the server's verdict on a proposed trade. Grade is a 0-100
// integer; the client does not validate the range.
type GradeResult struct {
	Grade    int    `json:"grade"`
	Verdict  string `json:"verdict"`
	Analysis string `json:"analysis"`
}

// LeaderboardEntry is one row of the trade leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	DisplayName string `json:"display_name"`
	Team        string `json:"team"`
	BestGrade   int    `json:"best_grade"`
	Trades      int64  `json:"trades"`
}

// GMSession is saved simulator state. Roster and Picks are opaque documents
// the server stores and returns as sent.
type GMSession struct {
	ID        string          `json:"id"`
	Team      string          `json:"team"`
	CapSpace  int64           `json:"cap_space"`
	Roster    json.RawMessage `json:"roster"`
	Picks     json.RawMessage `json:"picks"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetRoster fetches the user team's tradeable roster.
func (g *GMClient) GetRoster(ctx context.Context, team string) ([]GMPlayer, error) {
	var resp struct {
		Players []GMPlayer `json:"players"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/teams/"+url.PathEscape(team)+"/roster", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

// GetOpponents fetches the trade partners and their assets.
func (g *GMClient) GetOpponents(ctx context.Context, team string) ([]OpponentTeam, error) {
	var resp struct {
		Opponents []OpponentTeam `json:"opponents"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/teams/"+url.PathEscape(team)+"/opponents", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Opponents, nil
}

// GetPicks fetches the user team's owned draft picks.
func (g *GMClient) GetPicks(ctx context.Context, team string) ([]GMDraftPick, error) {
	var resp struct {
		Picks []GMDraftPick `json:"picks"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/teams/"+url.PathEscape(team)+"/picks", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Picks, nil
}

// GetCap fetches the salary-cap snapshot.
func (g *GMClient) GetCap(ctx context.Context, team string) (*CapData, error) {
	var data CapData
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/teams/"+url.PathEscape(team)+"/cap", nil, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type gradeTradeRequest struct {
	Team      string          `json:"team"`
	SessionID string          `json:"session_id,omitempty"`
	Trade     json.RawMessage `json:"trade"`
}

// GradeTrade submits a trade document for grading. trade is serialized as
// built by the caller; the server and its model own the verdict.
func (g *GMClient) GradeTrade(ctx context.Context, team string, trade json.RawMessage, sessionID string) (*GradeResult, error) {
	req := gradeTradeRequest{Team: team, SessionID: sessionID, Trade: trade}

	var result GradeResult
	if err := g.c.do(ctx, http.MethodPost, "/api/gm/trade/grade", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLeaderboard fetches the trade leaderboard, optionally filtered to one
// team.
func (g *GMClient) GetLeaderboard(ctx context.Context, team string) ([]LeaderboardEntry, error) {
	query := url.Values{}
	if team != "" {
		query.Set("team", team)
	}

	var resp struct {
		Entries []LeaderboardEntry `json:"entries"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/leaderboard", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// SaveSession creates or updates saved simulator state. Leave session.ID
// empty to create; the returned session carries the assigned id.
func (g *GMClient) SaveSession(ctx context.Context, session *GMSession) (*GMSession, error) {
	var saved GMSession
	if err := g.c.do(ctx, http.MethodPost, "/api/gm/sessions", nil, session, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListSessions fetches the caller's saved sessions, newest first.
func (g *GMClient) ListSessions(ctx context.Context) ([]GMSession, error) {
	var resp struct {
		Sessions []GMSession `json:"sessions"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/sessions", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// GetSession fetches one saved session by id.
func (g *GMClient) GetSession(ctx context.Context, id string) (*GMSession, error) {
	var session GMSession
	if err := g.c.do(ctx, http.MethodGet, "/api/gm/sessions/"+url.PathEscape(id), nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
