package common

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
)

const AuthHeaderName = "Authorization"

// Credentials are the login details submitted by a user
type Credentials struct {
	Email    string
	Password string
	// Employee selects the employee login of the backend
	Employee bool
}

// StartSession logs in to the backend with the given credentials, stores a new
// session and returns it together with its signed token
func StartSession(ctx context.Context, client upstream.Client, sessionService services.SessionService,
	authorizer authorization.Authorizer, credentials Credentials) (*entities.Session, string, error) {
	login := client.Login
	if credentials.Employee {
		login = client.EmployeeLogin
	}

	result, err := login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not log in to backend")
	}

	session, err := sessionService.CreateSession(ctx, *result)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not create session")
	}

	token, err := authorizer.CreateSessionToken(*session)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not create session token")
	}

	return session, token, nil
}

// AuthToken returns the session token of the request from the Authorization header,
// or from the auth cookie when the header is not set
func AuthToken(ctx *gin.Context, cookieName string) string {
	if header := strings.TrimSpace(ctx.GetHeader(AuthHeaderName)); len(header) > 0 {
		return header
	}

	token, err := ctx.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetAuthCookie stores the session token in the auth cookie for the lifetime of the session
func SetAuthCookie(ctx *gin.Context, cfg *config.AppConfig, token string) {
	ctx.SetCookie(cfg.Auth.CookieName, token, int(cfg.Auth.SessionLifetime), "/", "", cfg.Auth.SecureCookie, true)
}

// ClearAuthCookie removes the auth cookie
func ClearAuthCookie(ctx *gin.Context, cfg *config.AppConfig) {
	ctx.SetCookie(cfg.Auth.CookieName, "", -1, "/", "", cfg.Auth.SecureCookie, true)
}

// VisibleResources returns the resources of the catalog the session can open.
// Employee scoped resources are left out for sessions without an employee id.
func VisibleResources(catalog *resources.Catalog, session entities.Session) []resources.Resource {
	var visible []resources.Resource
	for _, resource := range catalog.VisibleTo(session.Roles) {
		if resource.EmployeeScoped && len(session.EmployeeID) == 0 {
			continue
		}
		visible = append(visible, resource)
	}
	return visible
}

// ModuleResources is a module together with the resources of it the session can open
type ModuleResources struct {
	resources.Module
	Resources []resources.Resource `json:"resources"`
}

// VisibleModules returns the modules the session can open that have at least one visible resource
func VisibleModules(catalog *resources.Catalog, session entities.Session) []ModuleResources {
	visible := VisibleResources(catalog, session)

	modules := []ModuleResources{}
	for _, module := range resources.Modules {
		if !module.AllowedFor(session.Roles) {
			continue
		}

		var moduleResources []resources.Resource
		for _, resource := range visible {
			if resource.Module == module.Name {
				moduleResources = append(moduleResources, resource)
			}
		}
		if len(moduleResources) == 0 {
			continue
		}

		modules = append(modules, ModuleResources{
			Module:    module,
			Resources: moduleResources,
		})
	}
	return modules
}
