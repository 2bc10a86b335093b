package entities

import (
	"time"

	"github.com/unicsmcr/bizdash/config/role"
)

type SessionField string

const (
	SessionID            SessionField = "_id"
	SessionEmail         SessionField = "email"
	SessionName          SessionField = "name"
	SessionRoles         SessionField = "roles"
	SessionEmployeeID    SessionField = "employee_id"
	SessionUpstreamToken SessionField = "upstream_token"
	SessionCreatedAt     SessionField = "created_at"
	SessionExpiresAt     SessionField = "expires_at"
)

// Session is the struct to store sessions of logged in users.
// UpstreamToken is the token issued by the REST backend and never leaves the server.
type Session struct {
	ID            string          `json:"id" bson:"_id"`
	Email         string          `json:"email" bson:"email"`
	Name          string          `json:"name,omitempty" bson:"name,omitempty"`
	Roles         []role.UserRole `json:"roles" bson:"roles"`
	EmployeeID    string          `json:"employeeId,omitempty" bson:"employee_id,omitempty"`
	UpstreamToken string          `json:"-" bson:"upstream_token"`
	CreatedAt     time.Time       `json:"createdAt" bson:"created_at"`
	ExpiresAt     time.Time       `json:"expiresAt" bson:"expires_at"`
}

// Expired checks whether the session is no longer valid at the given time
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
