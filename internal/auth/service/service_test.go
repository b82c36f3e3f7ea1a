package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	authdomain "github.com/smallbiznis/carta/internal/auth/domain"
	"github.com/smallbiznis/carta/internal/auth/repository"
	"github.com/smallbiznis/carta/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (authdomain.Service, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&authdomain.User{}, &authdomain.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo, sessionRepo := repository.New(dbConn)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(zap.NewNop(), repo, sessionRepo, node), dbConn
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateOwner(context.Background(), authdomain.CreateOwnerRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}

	_, err = svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if err != authdomain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateOwnerExternalIDUUID(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.CreateOwner(context.Background(), authdomain.CreateOwnerRequest{
		Email:    "bob@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	if user.ExternalID == "" {
		t.Fatal("expected external id")
	}
	if _, err := uuid.Parse(user.ExternalID); err != nil {
		t.Fatalf("expected external id UUID, got %v", err)
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.CreateOwner(context.Background(), authdomain.CreateOwnerRequest{
		Email:    "carol@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "carol@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	session, err := svc.Authenticate(context.Background(), result.RawToken)
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}
	if session.UserID != user.ID {
		t.Fatalf("expected session for user %v, got %v", user.ID, session.UserID)
	}
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, dbConn := newTestService(t)

	if _, err := svc.CreateOwner(context.Background(), authdomain.CreateOwnerRequest{
		Email:    "dave@example.com",
		Password: "strong-password",
	}); err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "dave@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	expired := time.Now().UTC().Add(-time.Hour)
	if err := dbConn.Model(&authdomain.Session{}).
		Where("id = ?", result.SessionID).
		Update("expires_at", expired).Error; err != nil {
		t.Fatalf("failed to expire session: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != authdomain.ErrSessionExpired {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateOwner(context.Background(), authdomain.CreateOwnerRequest{
		Email:    "erin@example.com",
		Password: "strong-password",
	}); err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "erin@example.com",
		Password: "strong-password",
	})
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}

	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("failed to logout: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != authdomain.ErrSessionRevoked {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}

	// Logging out again is a no-op.
	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("expected repeated logout to succeed, got %v", err)
	}
}
