package models

import "time"

// Mock draft lifecycle states.
const (
	DraftInProgress = "in_progress"
	DraftCompleted  = "completed"
)

// MockDraft is one simulated draft run. While Status is in_progress exactly
// one pick carries IsCurrent, and CurrentPick mirrors its overall number;
// every mutation path re-establishes that pair together.
type MockDraft struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Team        string          `gorm:"size:32;not null" json:"team"`
	Status      string          `gorm:"size:16;index;not null" json:"status"`
	CurrentPick int             `json:"current_pick"`
	Rounds      int             `json:"rounds"`
	Grade       int             `json:"grade,omitempty"`
	GradeLetter string          `gorm:"size:4" json:"grade_letter,omitempty"`
	Summary     string          `gorm:"type:text" json:"summary,omitempty"`
	Picks       []MockDraftPick `gorm:"foreignKey:DraftID;constraint:OnDelete:CASCADE;" json:"picks"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"-"`
}

// MockDraftPick is one slot in the draft order. ProspectID references the
// static prospect pool; it stays empty until the slot is picked.
type MockDraftPick struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	DraftID    string `gorm:"size:36;index;not null" json:"-"`
	Round      int    `gorm:"not null" json:"round"`
	Overall    int    `gorm:"not null" json:"overall"`
	TeamSlug   string `gorm:"size:32;not null" json:"team"`
	ProspectID string `gorm:"size:64" json:"prospect_id,omitempty"`
	IsUser     bool   `gorm:"default:false" json:"is_user"`
	IsCurrent  bool   `gorm:"default:false" json:"is_current"`
}
