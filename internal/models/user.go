package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author or commenter. Credentials and
// session handling live in the auth subsystem; this table only carries
// the profile fields the content API reads and writes.
type User struct {
	ID     int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name   string `gorm:"type:varchar(100);not null;column:name" json:"name" validate:"required"`
	Email  string `gorm:"type:varchar(255);not null;uniqueIndex:users_ux1;column:email" json:"email" validate:"required,email"`
	Bio    string `gorm:"type:varchar(500);not null;default:'';column:bio" json:"bio"`
	Avatar string `gorm:"type:varchar(1024);not null;default:'';column:avatar" json:"avatar"`
	Role   string `gorm:"type:varchar(16);not null;default:'user';column:role" json:"role"`

	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Validate checks the user against its field constraints
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeSave stamps timestamps before the row is persisted
func (u *User) BeforeSave(tx *gorm.DB) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}
