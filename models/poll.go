package models

import "time"

// Poll is a reader poll. TotalVotes and UserOptionID are computed per
// request; the stored row only owns the question and lifecycle flags.
type Poll struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Question  string       `gorm:"size:512;not null" json:"question"`
	Active    bool         `gorm:"default:true" json:"active"`
	Options   []PollOption `gorm:"constraint:OnDelete:CASCADE;" json:"options"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`

	TotalVotes   int64 `gorm:"-" json:"total_votes"`
	UserOptionID *uint `gorm:"-" json:"user_option_id,omitempty"`
}

// PollOption is one choice with its running tally.
type PollOption struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PollID   uint   `gorm:"index;not null" json:"-"`
	Label    string `gorm:"size:255;not null" json:"label"`
	Position int    `gorm:"default:0" json:"-"`
	Votes    int64  `gorm:"default:0" json:"votes"`
}

// PollVote records one user's choice. The unique index makes a re-vote an
// overwrite rather than a second ballot; the server owns that rule, clients
// just send votes.
type PollVote struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PollID    uint      `gorm:"index:idx_vote_poll_user,unique;not null" json:"poll_id"`
	UserID    uint      `gorm:"index:idx_vote_poll_user,unique;not null" json:"user_id"`
	OptionID  uint      `gorm:"not null" json:"option_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
