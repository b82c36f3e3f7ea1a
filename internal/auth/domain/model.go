// Package domain contains core types for owner authentication.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User represents a restaurant owner account.
type User struct {
	ID                  snowflake.ID `gorm:"primaryKey"`
	ExternalID          string       `gorm:"column:external_id;type:text;not null;uniqueIndex"`
	Email               string       `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash        *string      `gorm:"type:text"`
	LastPasswordChanged *time.Time   `gorm:"column:last_password_changed"`
	CreatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session represents a persisted login session. The raw token is never
// stored, only its hash.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"column:user_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }
