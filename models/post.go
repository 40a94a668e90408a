package models

import "time"

// Category groups posts by team or topic. Team categories use the slugs from
// the config team enumeration; everything else falls under general slugs
// like "news".
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Slug string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Name string `gorm:"size:128;not null" json:"name"`
}

// Post represents a published article. The JSON shape is the raw server
// "post" representation that mobile clients consume; list endpoints omit
// Content by selecting summary columns.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Slug          string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Excerpt       string    `gorm:"size:512" json:"excerpt"`
	Content       string    `gorm:"type:text" json:"content,omitempty"`
	FeaturedImage string    `gorm:"size:512" json:"featured_image,omitempty"`
	PublishedAt   time.Time `gorm:"index" json:"published_at"`
	Views         int64     `gorm:"default:0" json:"views"`
	// Score is the editorial importance/ranking weight used when assembling
	// the feed. Higher sorts earlier within a section.
	Score          int    `gorm:"default:0;index" json:"score"`
	HasAudio       bool   `gorm:"default:false;index" json:"has_audio"`
	AudioURL       string `gorm:"size:512" json:"audio_url,omitempty"`
	AudioDuration  int    `json:"audio_duration,omitempty"`
	SEOTitle       string `gorm:"size:255" json:"seo_title,omitempty"`
	SEODescription string `gorm:"size:512" json:"seo_description,omitempty"`

	AuthorID   *uint     `gorm:"index" json:"-"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID *uint     `gorm:"index" json:"-"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ArticleView stores aggregated view counts per day and post, reported by
// clients through POST /api/views/:id.
type ArticleView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"index:idx_view_date_post,unique;type:date;not null" json:"date"`
	PostID    uint      `gorm:"index;index:idx_view_date_post,unique;not null" json:"post_id"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
