package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	CreateOwner(ctx context.Context, req CreateOwnerRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
	Owner(ctx context.Context, id snowflake.ID) (*User, error)
}

type CreateOwnerRequest struct {
	Email    string
	Password string
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	UserID    snowflake.ID
	SessionID snowflake.ID
	RawToken  string
	ExpiresAt time.Time
}
