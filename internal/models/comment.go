package models

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. A null parent marks a
// top-level comment; replies reference their parent comment on the
// same post. Threads render two levels deep only.
type Comment struct {
	ID       int64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PostID   int64         `gorm:"not null;index;column:post_id" json:"post_id"`
	UserID   int64         `gorm:"not null;column:user_id" json:"user_id"`
	Content  string        `gorm:"type:text;not null;column:content" json:"content" validate:"required"`
	ParentID sql.NullInt64 `gorm:"index;column:parent_id" json:"-"`

	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	Parent  *Comment  `gorm:"foreignKey:ParentID;references:ID" json:"-"`
	Replies []Comment `gorm:"foreignKey:ParentID;references:ID" json:"replies,omitempty"`
	User    *User     `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// Validate checks the comment against its field constraints
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeSave stamps timestamps before the row is persisted
func (c *Comment) BeforeSave(tx *gorm.DB) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return nil
}

// IsTopLevel reports whether the comment roots a thread
func (c *Comment) IsTopLevel() bool {
	return !c.ParentID.Valid
}
