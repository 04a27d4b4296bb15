package models

import (
	"time"

	"gorm.io/gorm"
)

// Post content is HTML rendered from markdown at write time. Source keeps the
// markdown the author typed so edits start from it rather than from HTML.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"size:1024"`
	Content  string    `json:"content" gorm:"type:text"`
	Source   string    `json:"-" gorm:"type:text"`
	Datetime time.Time `json:"datetime" gorm:"index"`
	AuthorID uint      `json:"author_id" gorm:"not null;index"`
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate stamps the creation time once; edits never touch it.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Datetime.IsZero() {
		p.Datetime = time.Now()
	}
	return nil
}

// IsAuthoredBy reports whether userID may mutate the post.
func (p *Post) IsAuthoredBy(userID uint) bool {
	return userID != 0 && p.AuthorID == userID
}

// EditableContent prefills the edit form. Posts stored without a markdown
// source fall back to their HTML.
func (p *Post) EditableContent() string {
	if p.Source != "" {
		return p.Source
	}
	return p.Content
}

type PostForm struct {
	Title   string `form:"title" binding:"max=1024"`
	Content string `form:"content"`
}

// Page is one slice of the listing plus the navigation flags.
type Page struct {
	Posts      []Post
	Page       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	Count      int64
}
