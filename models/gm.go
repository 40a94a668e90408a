package models

import "time"

// GMSession is one user's saved trade-simulator state for a team. Roster and
// picks are stored as the JSON documents the client sent; the server does not
// reinterpret them between saves.
type GMSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Team      string    `gorm:"size:32;index;not null" json:"team"`
	CapSpace  int64     `json:"cap_space"`
	Roster    string    `gorm:"type:text" json:"-"`
	Picks     string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GMTrade records a graded trade proposal. Grade is whatever the LLM (or the
// heuristic fallback) returned; the 0-100 range is clamped server-side.
type GMTrade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	SessionID string    `gorm:"size:36;index" json:"session_id,omitempty"`
	Team      string    `gorm:"size:32;index;not null" json:"team"`
	Payload   string    `gorm:"type:text" json:"-"`
	Grade     int       `gorm:"not null" json:"grade"`
	Verdict   string    `gorm:"size:64" json:"verdict"`
	Analysis  string    `gorm:"type:text" json:"analysis"`
	CreatedAt time.Time `json:"created_at"`
}
