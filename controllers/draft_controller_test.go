package controllers

import (
	"testing"

	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/sportsdata"
)

func testProspects() []sportsdata.Prospect {
	return []sportsdata.Prospect{
		{ID: "p1", Name: "Top QB", Rank: 1},
		{ID: "p2", Name: "Edge", Rank: 2},
		{ID: "p3", Name: "Tackle", Rank: 3},
		{ID: "p4", Name: "Corner", Rank: 4},
		{ID: "p5", Name: "Receiver", Rank: 5},
		{ID: "p6", Name: "Safety", Rank: 6},
	}
}

func testBoard(userTeam string, order []string, rounds int) *models.MockDraft {
	draft := &models.MockDraft{Team: userTeam, Status: models.DraftInProgress, Rounds: rounds}
	overall := 0
	for r := 1; r <= rounds; r++ {
		for _, slug := range order {
			overall++
			draft.Picks = append(draft.Picks, models.MockDraftPick{
				Round:    r,
				Overall:  overall,
				TeamSlug: slug,
				IsUser:   slug == userTeam,
			})
		}
	}
	return draft
}

func TestAdvanceStopsAtUserPick(t *testing.T) {
	d := &DraftController{}
	draft := testBoard("bears", []string{"packers", "lions", "bears"}, 1)

	d.advance(draft, testProspects())

	if draft.Status != models.DraftInProgress {
		t.Fatalf("status = %s", draft.Status)
	}
	if draft.CurrentPick != 3 {
		t.Errorf("current_pick = %d, want 3", draft.CurrentPick)
	}
	// CPU teams take best available in rank order.
	if draft.Picks[0].ProspectID != "p1" || draft.Picks[1].ProspectID != "p2" {
		t.Errorf("cpu picks = %q, %q", draft.Picks[0].ProspectID, draft.Picks[1].ProspectID)
	}

	current := 0
	for _, p := range draft.Picks {
		if p.IsCurrent {
			current++
		}
	}
	if current != 1 {
		t.Errorf("flagged current picks = %d, want exactly 1", current)
	}
}

func TestAdvanceCompletesDraft(t *testing.T) {
	d := &DraftController{}
	draft := testBoard("bears", []string{"packers", "bears", "lions"}, 1)

	d.advance(draft, testProspects())
	// User picks at slot 2, then the remaining CPU slot runs out the board.
	draft.Picks[1].ProspectID = "p4"
	draft.Picks[1].IsCurrent = false
	d.advance(draft, testProspects())

	if draft.Status != models.DraftCompleted {
		t.Errorf("status = %s, want completed", draft.Status)
	}
	if draft.CurrentPick != 0 {
		t.Errorf("current_pick = %d, want 0", draft.CurrentPick)
	}
	for _, p := range draft.Picks {
		if p.ProspectID == "" {
			t.Errorf("pick %d left unfilled", p.Overall)
		}
		if p.IsCurrent {
			t.Errorf("pick %d still flagged current after completion", p.Overall)
		}
	}
}

func TestAdvanceSkipsTakenProspects(t *testing.T) {
	d := &DraftController{}
	draft := testBoard("bears", []string{"packers", "lions", "bears"}, 1)
	draft.Picks[0].ProspectID = "p1"

	d.advance(draft, testProspects())

	if draft.Picks[1].ProspectID != "p2" {
		t.Errorf("second pick = %q, want p2", draft.Picks[1].ProspectID)
	}
}

func TestAdvanceCompletesWhenPoolRunsOut(t *testing.T) {
	d := &DraftController{}
	// 30-slot board, 6-prospect pool: the pool drains long before the
	// user's second slot at overall 13.
	order := []string{"raiders", "giants", "bears", "titans", "jets", "panthers", "saints", "packers", "vikings", "lions"}
	draft := testBoard("bears", order, 3)
	prospects := testProspects()

	d.advance(draft, prospects)
	if draft.CurrentPick != 3 {
		t.Fatalf("current_pick = %d, want 3", draft.CurrentPick)
	}
	draft.Picks[2].ProspectID = "p3"
	draft.Picks[2].IsCurrent = false
	d.advance(draft, prospects)

	if draft.Status != models.DraftCompleted {
		t.Fatalf("status = %s, want completed once the pool is empty", draft.Status)
	}
	if draft.CurrentPick != 0 {
		t.Errorf("current_pick = %d, want 0", draft.CurrentPick)
	}
	filled := 0
	for _, p := range draft.Picks {
		if p.IsCurrent {
			t.Errorf("pick %d flagged current after completion", p.Overall)
		}
		if p.ProspectID != "" {
			filled++
		}
	}
	if filled != len(prospects) {
		t.Errorf("filled picks = %d, want %d", filled, len(prospects))
	}
	if grade, letter := gradeDraft(draft, prospects); grade != 75 || letter != "C" {
		// One pick at slot 3 with rank 3 is exactly slot value.
		t.Errorf("grade = %d %s, want 75 C", grade, letter)
	}
}

func TestGradeDraftRewardsValue(t *testing.T) {
	prospects := testProspects()

	steal := &models.MockDraft{Picks: []models.MockDraftPick{
		{Overall: 6, IsUser: true, ProspectID: "p1"}, // rank 1 at slot 6
	}}
	grade, letter := gradeDraft(steal, prospects)
	if grade <= 75 {
		t.Errorf("steal grade = %d, want above baseline", grade)
	}
	if letter == "F" {
		t.Errorf("steal letter = %s", letter)
	}

	reach := &models.MockDraft{Picks: []models.MockDraftPick{
		{Overall: 1, IsUser: true, ProspectID: "p6"}, // rank 6 at slot 1
	}}
	reachGrade, _ := gradeDraft(reach, prospects)
	if reachGrade >= grade {
		t.Errorf("reach grade %d should be below steal grade %d", reachGrade, grade)
	}
}

func TestGradeDraftNoPicksIsBaseline(t *testing.T) {
	grade, letter := gradeDraft(&models.MockDraft{}, testProspects())
	if grade != 75 || letter != "C" {
		t.Errorf("empty draft grade = %d %s, want 75 C", grade, letter)
	}
}

func TestBestAvailableExhaustedPool(t *testing.T) {
	taken := map[string]bool{}
	prospects := testProspects()
	for range prospects {
		id := bestAvailable(prospects, taken)
		if id == "" {
			t.Fatal("pool exhausted early")
		}
		taken[id] = true
	}
	if id := bestAvailable(prospects, taken); id != "" {
		t.Errorf("bestAvailable on empty pool = %q, want empty", id)
	}
}
