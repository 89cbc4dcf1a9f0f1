package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	UserTypeParent = "parent"
	UserTypeTutor  = "tutor"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	First        string    `json:"first" gorm:"not null"`
	Last         string    `json:"last" gorm:"not null"`
	Age          int       `json:"age" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	UserType     string    `json:"userType" gorm:"not null"`
	UserLang     string    `json:"userLang"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the server-side record behind an opaque session token. Data
// carries a serialized snapshot of the identity the session was minted for,
// mirroring the session-store schema (session id, expiry, data blob).
type Session struct {
	Token     string         `json:"token" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"not null;index"`
	ExpiresAt time.Time      `json:"expiresAt" gorm:"not null"`
	Data      datatypes.JSON `json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SessionData is what gets stored in the session Data blob.
type SessionData struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}
