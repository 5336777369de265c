package models

import (
	"time"

	"gorm.io/gorm"
)

// Post status values
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post represents a blog post
type Post struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title      string `gorm:"type:varchar(255);not null;column:title" json:"title" validate:"required"`
	Slug       string `gorm:"type:varchar(255);not null;uniqueIndex:posts_ux1;column:slug" json:"slug"`
	Content    string `gorm:"type:text;not null;column:content" json:"content" validate:"required"`
	Excerpt    string `gorm:"type:varchar(500);not null;default:'';column:excerpt" json:"excerpt"`
	CoverImage string `gorm:"type:varchar(1024);not null;default:'';column:cover_image" json:"cover_image"`
	AuthorID   int64  `gorm:"not null;index;column:author_id" json:"author_id"`
	Category   string `gorm:"type:varchar(64);not null;default:'';column:category" json:"category"`
	Status     string `gorm:"type:varchar(16);not null;default:'published';column:status" json:"status" validate:"oneof=draft published"`
	Views      int64  `gorm:"not null;default:0;column:views" json:"views"`

	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	Author *User     `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Tags   []PostTag `gorm:"foreignKey:PostID;references:ID" json:"tags,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// Validate checks the post against its field constraints
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeSave stamps timestamps before the row is persisted
func (p *Post) BeforeSave(tx *gorm.DB) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}

// TagNames flattens the tag rows into plain strings
func (p *Post) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Tag
	}
	return names
}

// PostTag represents a post-to-tag mapping
type PostTag struct {
	PostID int64  `gorm:"primaryKey;column:post_id" json:"post_id"`
	Tag    string `gorm:"type:varchar(32);primaryKey;column:tag" json:"tag"`
}

// TableName specifies the table name for PostTag
func (PostTag) TableName() string {
	return "post_tags"
}

// PostLike represents one user's like on a post. The composite primary
// key is what keeps the likes set free of duplicate users.
type PostLike struct {
	PostID    int64     `gorm:"primaryKey;column:post_id" json:"post_id"`
	UserID    int64     `gorm:"primaryKey;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}
