package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixed roles. Content ownership is tracked per role, not per user:
// the application serves exactly one papa, one maman and one admin.
const (
	RolePapa  = "papa"
	RoleMaman = "maman"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null" json:"type"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session maps an opaque bearer token to a user until ExpiresAt.
// Rows past their expiry are inert; they are removed lazily on lookup
// and by the periodic sweep in the server.
type Session struct {
	Token     string    `gorm:"size:64;primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Session) TableName() string {
	return "user_sessions"
}
