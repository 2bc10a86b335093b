package services

import (
	"context"
	"time"

	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/upstream"
)

// SessionService is the service for interactions with the sessions of logged in users
type SessionService interface {
	CreateSession(ctx context.Context, login upstream.LoginResult) (*entities.Session, error)

	GetSession(ctx context.Context, id string) (*entities.Session, error)
	GetSessionsForEmail(ctx context.Context, email string) ([]entities.Session, error)

	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsForEmail(ctx context.Context, email string) error
}

// NewSessionFromLogin builds the session with the given id for a backend login made at now
func NewSessionFromLogin(id string, login upstream.LoginResult, now time.Time, lifetime time.Duration) entities.Session {
	return entities.Session{
		ID:            id,
		Email:         login.Email,
		Name:          login.Name,
		Roles:         role.FromStrings(login.Roles),
		EmployeeID:    login.EmployeeID.String(),
		UpstreamToken: login.Token,
		CreatedAt:     now,
		ExpiresAt:     now.Add(lifetime),
	}
}
