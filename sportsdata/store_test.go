package sportsdata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreLoadsRoster(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rosters/bears.yaml", `
team: bears
season: "2025"
players:
  - number: 18
    name: Caleb Williams
    position: QB
    age: 23
`)

	s := New(dir)
	roster, err := s.Roster("bears")
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}
	if roster.Team != "bears" || roster.Season != "2025" {
		t.Errorf("roster header = %+v", roster)
	}
	if len(roster.Players) != 1 || roster.Players[0].Name != "Caleb Williams" {
		t.Errorf("players = %+v", roster.Players)
	}
}

func TestStoreCachesLoadedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rosters/bulls.yaml", "team: bulls\nseason: \"2025\"\nplayers: []\n")

	s := New(dir)
	first, err := s.Roster("bulls")
	if err != nil {
		t.Fatalf("Roster() error = %v", err)
	}

	// Removing the file must not matter once it is cached.
	os.Remove(filepath.Join(dir, "rosters/bulls.yaml"))
	second, err := s.Roster("bulls")
	if err != nil {
		t.Fatalf("Roster() after remove error = %v", err)
	}
	if first != second {
		t.Error("expected the cached pointer on the second load")
	}
}

func TestStoreMissingFile(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Roster("bears"); err == nil {
		t.Error("expected error for missing roster file")
	}
}

func TestStoreLoadsGMData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gm/bears.yaml", `
team: bears
season: "2025"
cap_space: 25000000
cap_total: 255000000
players:
  - id: p1
    name: Montez Sweat
    position: DE
    age: 28
    overall: 88
    salary: 24500000
    years: 2
picks:
  - year: 2026
    round: 1
opponents:
  - slug: packers
    name: Green Bay Packers
    cap_space: 12000000
    players: []
    picks: []
`)

	s := New(dir)
	data, err := s.GM("bears")
	if err != nil {
		t.Fatalf("GM() error = %v", err)
	}
	if data.CapSpace != 25000000 || data.CapTotal != 255000000 {
		t.Errorf("cap = %d/%d", data.CapSpace, data.CapTotal)
	}
	if len(data.Players) != 1 || data.Players[0].Overall != 88 {
		t.Errorf("players = %+v", data.Players)
	}
	if len(data.Opponents) != 1 || data.Opponents[0].Slug != "packers" {
		t.Errorf("opponents = %+v", data.Opponents)
	}
}

func TestStoreLoadsProspectsAndDraftOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prospects.yaml", `
prospects:
  - id: qb1
    name: Arch Manning
    position: QB
    college: Texas
    rank: 1
    grade: 7.5
  - id: ed1
    name: Edge Guy
    position: EDGE
    college: Ohio State
    rank: 2
    grade: 7.2
`)
	writeFile(t, dir, "draft_order.yaml", `
year: 2026
rounds: 2
order: [bears, packers, lions]
`)

	s := New(dir)
	prospects, err := s.Prospects()
	if err != nil {
		t.Fatalf("Prospects() error = %v", err)
	}
	if len(prospects) != 2 || prospects[0].ID != "qb1" {
		t.Errorf("prospects = %+v", prospects)
	}

	order, err := s.DraftOrder()
	if err != nil {
		t.Fatalf("DraftOrder() error = %v", err)
	}
	if order.Year != 2026 || order.Rounds != 2 || len(order.Order) != 3 {
		t.Errorf("order = %+v", order)
	}
}
