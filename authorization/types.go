package authorization

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// RouterResource is implemented by routers whose handlers are protected by the Authorizer
type RouterResource interface {
	// GetAuthToken returns the session token sent with the request
	GetAuthToken(ctx *gin.Context) string
	// HandleUnauthorized responds to a request without a valid session
	HandleUnauthorized(ctx *gin.Context)
	// HandleForbidden responds to a request whose session lacks the required role
	HandleForbidden(ctx *gin.Context)
}

// SessionClaims are the claims of a session token. The token id is the session id
// and the subject is the email of the session.
type SessionClaims struct {
	jwt.StandardClaims
}
