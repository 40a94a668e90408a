package controllers

import (
	"encoding/json"
	"testing"
)

func TestGradeTradeHeuristicEvenOnUnknownShape(t *testing.T) {
	grade := gradeTradeHeuristic(json.RawMessage(`{"something":"else"}`))
	if grade.Grade != 50 || grade.Verdict != "Even" {
		t.Errorf("grade = %d %s, want 50 Even", grade.Grade, grade.Verdict)
	}

	grade = gradeTradeHeuristic(json.RawMessage(`not json`))
	if grade.Grade != 50 {
		t.Errorf("grade on invalid json = %d, want 50", grade.Grade)
	}
}

func TestGradeTradeHeuristicRewardsSurplus(t *testing.T) {
	win := gradeTradeHeuristic(json.RawMessage(`{
		"sent_players": [{"id":"a","overall":70}],
		"received_players": [{"id":"b","overall":90}]
	}`))
	if win.Grade <= 50 {
		t.Errorf("surplus trade grade = %d, want above 50", win.Grade)
	}

	loss := gradeTradeHeuristic(json.RawMessage(`{
		"sent_players": [{"id":"a","overall":95}],
		"received_players": [{"id":"b","overall":60}]
	}`))
	if loss.Grade >= 50 {
		t.Errorf("deficit trade grade = %d, want below 50", loss.Grade)
	}
	if loss.Grade < 0 || win.Grade > 100 {
		t.Errorf("grades out of range: %d, %d", loss.Grade, win.Grade)
	}
}

func TestGradeTradeHeuristicValuesEarlyPicks(t *testing.T) {
	early := gradeTradeHeuristic(json.RawMessage(`{"received_picks":[{"year":2026,"round":1}]}`))
	late := gradeTradeHeuristic(json.RawMessage(`{"received_picks":[{"year":2026,"round":7}]}`))
	if early.Grade <= late.Grade {
		t.Errorf("round 1 grade %d should beat round 7 grade %d", early.Grade, late.Grade)
	}
}
