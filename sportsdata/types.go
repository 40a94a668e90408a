package sportsdata

// Player is one roster entry.
type Player struct {
	Number   int    `yaml:"number" json:"number"`
	Name     string `yaml:"name" json:"name"`
	Position string `yaml:"position" json:"position"`
	Age      int    `yaml:"age" json:"age"`
	Height   string `yaml:"height" json:"height,omitempty"`
	Weight   int    `yaml:"weight" json:"weight,omitempty"`
	College  string `yaml:"college" json:"college,omitempty"`
}

// Roster is a team's active roster for a season.
type Roster struct {
	Team    string   `yaml:"team" json:"team"`
	Season  string   `yaml:"season" json:"season"`
	Players []Player `yaml:"players" json:"players"`
}

// ScheduleGame is one scheduled or completed game.
type ScheduleGame struct {
	Date     string `yaml:"date" json:"date"`
	Opponent string `yaml:"opponent" json:"opponent"`
	Home     bool   `yaml:"home" json:"home"`
	Venue    string `yaml:"venue" json:"venue,omitempty"`
	Result   string `yaml:"result" json:"result,omitempty"` // e.g. "W 24-17", empty when upcoming
}

// Schedule is a team's season schedule.
type Schedule struct {
	Team   string         `yaml:"team" json:"team"`
	Season string         `yaml:"season" json:"season"`
	Games  []ScheduleGame `yaml:"games" json:"games"`
}

// StatLeader is a per-category team leader line.
type StatLeader struct {
	Category string `yaml:"category" json:"category"`
	Player   string `yaml:"player" json:"player"`
	Value    string `yaml:"value" json:"value"`
}

// TeamStats is a team's season stat block. Totals stays an open map because
// the tracked columns differ per sport and evolve with the data files.
type TeamStats struct {
	Team     string             `yaml:"team" json:"team"`
	Season   string             `yaml:"season" json:"season"`
	Record   string             `yaml:"record" json:"record"`
	Standing string             `yaml:"standing" json:"standing,omitempty"`
	Leaders  []StatLeader       `yaml:"leaders" json:"leaders,omitempty"`
	Totals   map[string]float64 `yaml:"totals" json:"totals,omitempty"`
}

// GMPlayer is a roster entry with the contract fields the trade simulator
// bargains with.
type GMPlayer struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Position string `yaml:"position" json:"position"`
	Age      int    `yaml:"age" json:"age"`
	Overall  int    `yaml:"overall" json:"overall"` // 0-99 ability rating
	Salary   int64  `yaml:"salary" json:"salary"`   // annual cap hit, dollars
	Years    int    `yaml:"years" json:"years"`
}

// GMDraftPick is a tradeable future pick.
type GMDraftPick struct {
	Year  int `yaml:"year" json:"year"`
	Round int `yaml:"round" json:"round"`
}

// OpponentTeam is a trade partner with its tradeable assets.
type OpponentTeam struct {
	Slug     string        `yaml:"slug" json:"slug"`
	Name     string        `yaml:"name" json:"name"`
	CapSpace int64         `yaml:"cap_space" json:"cap_space"`
	Players  []GMPlayer    `yaml:"players" json:"players"`
	Picks    []GMDraftPick `yaml:"picks" json:"picks"`
}

// GMData is the full trade-simulator dataset for one covered team.
type GMData struct {
	Team      string         `yaml:"team" json:"team"`
	Season    string         `yaml:"season" json:"season"`
	CapSpace  int64          `yaml:"cap_space" json:"cap_space"`
	CapTotal  int64          `yaml:"cap_total" json:"cap_total"`
	Players   []GMPlayer     `yaml:"players" json:"players"`
	Picks     []GMDraftPick  `yaml:"picks" json:"picks"`
	Opponents []OpponentTeam `yaml:"opponents" json:"opponents"`
}

// Prospect is one draft-eligible player in the static pool.
type Prospect struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Position string  `yaml:"position" json:"position"`
	College  string  `yaml:"college" json:"college"`
	Rank     int     `yaml:"rank" json:"rank"`
	Grade    float64 `yaml:"grade" json:"grade"` // scouting grade, 5.0-8.0 scale
}

type prospectFile struct {
	Prospects []Prospect `yaml:"prospects"`
}

// DraftOrder is the pick order for the mock draft: Order lists the team slug
// holding each overall pick, first round first, repeated per round.
type DraftOrder struct {
	Year   int      `yaml:"year" json:"year"`
	Rounds int      `yaml:"rounds" json:"rounds"`
	Order  []string `yaml:"order" json:"order"`
}
