package v1

import (
	"time"

	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
)

type loginRes struct {
	models.Response
	Token      string          `json:"token"`
	Email      string          `json:"email"`
	Roles      []role.UserRole `json:"roles"`
	EmployeeID string          `json:"employeeId,omitempty"`
	Redirect   string          `json:"redirect"`
}

type sessionSummary struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name,omitempty"`
	Roles      []role.UserRole `json:"roles"`
	EmployeeID string          `json:"employeeId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	Redirect   string          `json:"redirect"`
}

func newSessionSummary(session entities.Session) sessionSummary {
	return sessionSummary{
		ID:         session.ID,
		Email:      session.Email,
		Name:       session.Name,
		Roles:      session.Roles,
		EmployeeID: session.EmployeeID,
		CreatedAt:  session.CreatedAt,
		ExpiresAt:  session.ExpiresAt,
		Redirect:   role.LandingPath(session.Roles),
	}
}

type getSessionRes struct {
	models.Response
	Session sessionSummary `json:"session"`
}

type getSessionsRes struct {
	models.Response
	Sessions []sessionSummary `json:"sessions"`
}

type getModulesRes struct {
	models.Response
	Modules []common.ModuleResources `json:"modules"`
}

type getDashboardRes struct {
	models.Response
	Counts []services.Count `json:"counts"`
}

type listResourceRes struct {
	models.Response
	resources.Page
	Fields []resources.Field `json:"fields"`
}

type getResourceItemRes struct {
	models.Response
	Item entities.Record      `json:"item"`
	View []resources.ViewItem `json:"view"`
}
