package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Mock draft status values.
const (
	DraftInProgress = "in_progress"
	DraftCompleted  = "completed"
)

// MockDraftClient covers the mock draft surface under /api/gm/draft. Obtain
// one via Client.MockDraft. Unlike every other wrapper, a 401 here comes
// back wrapping ErrAuthRequired so callers can redirect to a login flow.
type MockDraftClient struct {
	c *Client
}

// DraftPick is one slot on the draft board. While the draft is in progress
// exactly one pick is flagged current; the server enforces that, the client
// trusts it.
type DraftPick struct {
	Round      int    `json:"round"`
	Overall    int    `json:"overall"`
	Team       string `json:"team"`
	ProspectID string `json:"prospect_id,omitempty"`
	IsUser     bool   `json:"is_user"`
	IsCurrent  bool   `json:"is_current"`
}

// MockDraft is one simulated draft run.
type MockDraft struct {
	ID          string      `json:"id"`
	Team        string      `json:"team"`
	Status      string      `json:"status"`
	CurrentPick int         `json:"current_pick"`
	Rounds      int         `json:"rounds"`
	Grade       int         `json:"grade,omitempty"`
	GradeLetter string      `json:"grade_letter,omitempty"`
	Summary     string      `json:"summary,omitempty"`
	Picks       []DraftPick `json:"picks"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Prospect is one draft-eligible player.
type Prospect struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	College  string  `json:"college"`
	Rank     int     `json:"rank"`
	Grade    float64 `json:"grade"`
}

// DraftGrade is the post-draft report card.
type DraftGrade struct {
	Grade       int    `json:"grade"`
	GradeLetter string `json:"grade_letter"`
	Summary     string `json:"summary"`
}

// TeamEligibility reports which covered teams hold picks in the current
// draft year.
type TeamEligibility struct {
	Year   int      `json:"year"`
	Rounds int      `json:"rounds"`
	Teams  []string `json:"teams"`
}

// do delegates to the parent client and rewrites 401 into ErrAuthRequired.
func (m *MockDraftClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	err := m.c.do(ctx, method, path, query, body, out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrAuthRequired, apiErr.Message)
	}
	return err
}

type startDraftRequest struct {
	Team   string `json:"team"`
	Rounds int    `json:"rounds,omitempty"`
}

// Start creates a draft for the given team. rounds <= 0 means the full
// draft. The returned board already has CPU picks advanced to the user's
// first slot.
func (m *MockDraftClient) Start(ctx context.Context, team string, rounds int) (*MockDraft, error) {
	var draft MockDraft
	if err := m.do(ctx, http.MethodPost, "/api/gm/draft/start", nil, startDraftRequest{Team: team, Rounds: rounds}, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Get fetches the draft board.
func (m *MockDraftClient) Get(ctx context.Context, id string) (*MockDraft, error) {
	var draft MockDraft
	if err := m.do(ctx, http.MethodGet, "/api/gm/drafts/"+url.PathEscape(id), nil, nil, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Pick selects a prospect on the user's current slot and returns the board
// after the CPU teams have made their following picks.
func (m *MockDraftClient) Pick(ctx context.Context, id, prospectID string) (*MockDraft, error) {
	var draft MockDraft
	err := m.do(ctx, http.MethodPost, "/api/gm/drafts/"+url.PathEscape(id)+"/pick",
		nil, map[string]string{"prospect_id": prospectID}, &draft)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Prospects fetches the draft-eligible pool ordered by rank.
func (m *MockDraftClient) Prospects(ctx context.Context) ([]Prospect, error) {
	var resp struct {
		Prospects []Prospect `json:"prospects"`
	}
	if err := m.do(ctx, http.MethodGet, "/api/gm/draft/prospects", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prospects, nil
}

// Eligibility fetches which teams can run a draft this year.
func (m *MockDraftClient) Eligibility(ctx context.Context) (*TeamEligibility, error) {
	var eligibility TeamEligibility
	if err := m.do(ctx, http.MethodGet, "/api/gm/draft/eligibility", nil, nil, &eligibility); err != nil {
		return nil, err
	}
	return &eligibility, nil
}

// Grade requests the report card for a completed draft.
func (m *MockDraftClient) Grade(ctx context.Context, id string) (*DraftGrade, error) {
	var grade DraftGrade
	if err := m.do(ctx, http.MethodPost, "/api/gm/drafts/"+url.PathEscape(id)+"/grade", nil, nil, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}
