package models

import "time"

// Chat message content types. The server stores whatever discriminator the
// client sent; anything other than "gif" renders as text.
const (
	ChatContentText = "text"
	ChatContentGIF  = "gif"
)

// ChatMessage is one message in a team/topic chat room. IDs are UUIDs so the
// id doubles as an opaque pagination cursor together with CreatedAt.
type ChatMessage struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Room        string    `gorm:"size:64;index:idx_chat_room_created;not null" json:"room_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content     string    `gorm:"type:text" json:"content"`
	ContentType string    `gorm:"size:16;default:'text'" json:"content_type"`
	GifURL      string    `gorm:"size:512" json:"gif_url,omitempty"`
	ReplyToID   string    `gorm:"size:36" json:"reply_to_id,omitempty"`
	CreatedAt   time.Time `gorm:"index:idx_chat_room_created" json:"created_at"`
}
