package authorization

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/entities"
)

const sessionContextKey = "bizdash_session"

// SetSession stores the session of the request in ctx
func SetSession(ctx *gin.Context, session entities.Session) {
	ctx.Set(sessionContextKey, session)
}

// SessionFromContext returns the session stored by WithAuthMiddleware
func SessionFromContext(ctx *gin.Context) (entities.Session, bool) {
	value, exists := ctx.Get(sessionContextKey)
	if !exists {
		return entities.Session{}, false
	}
	session, ok := value.(entities.Session)
	return session, ok
}
