package authorization

import (
	"context"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/environment"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/utils"
	"go.uber.org/zap"
)

var jwtSigningMethod = jwt.SigningMethodHS256

const bearerPrefix = "Bearer "

// Authorizer provides an interface for issuing session tokens and verifying them on every request
type Authorizer interface {
	// CreateSessionToken creates a signed token referring to the given session.
	// The token expires together with the session.
	CreateSessionToken(session entities.Session) (string, error)
	// GetSessionFromToken verifies the token and loads the live session it refers to.
	// Will return services.ErrInvalidToken if the token is invalid or its session is gone.
	GetSessionFromToken(ctx context.Context, token string) (*entities.Session, error)
	// WithAuthMiddleware wraps handler so that it is only called for requests with a valid session
	WithAuthMiddleware(router RouterResource, handler gin.HandlerFunc) gin.HandlerFunc
}

// NewAuthorizer creates an Authorizer that signs tokens with JWT_SECRET
func NewAuthorizer(logger *zap.Logger, env *environment.Env, timeProvider utils.TimeProvider,
	sessionService services.SessionService) Authorizer {
	return &authorizer{
		logger:         logger,
		env:            env,
		timeProvider:   timeProvider,
		sessionService: sessionService,
	}
}

type authorizer struct {
	logger         *zap.Logger
	env            *environment.Env
	timeProvider   utils.TimeProvider
	sessionService services.SessionService
}

func (a *authorizer) secret() ([]byte, error) {
	secret := a.env.Get(environment.JWTSecret)
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return []byte(secret), nil
}

func (a *authorizer) CreateSessionToken(session entities.Session) (string, error) {
	secret, err := a.secret()
	if err != nil {
		return "", err
	}
	if len(session.ID) == 0 {
		return "", services.ErrInvalidID
	}

	token := jwt.NewWithClaims(jwtSigningMethod, SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        session.ID,
			Subject:   session.Email,
			IssuedAt:  a.timeProvider.Now().Unix(),
			ExpiresAt: session.ExpiresAt.Unix(),
		},
	})

	return token.SignedString(secret)
}

func (a *authorizer) GetSessionFromToken(ctx context.Context, token string) (*entities.Session, error) {
	secret, err := a.secret()
	if err != nil {
		return nil, err
	}

	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), bearerPrefix))
	if len(token) == 0 {
		return nil, errors.Wrap(services.ErrInvalidToken, "token is empty")
	}

	var claims SessionClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(parsed *jwt.Token) (interface{}, error) {
		if parsed.Method != jwtSigningMethod {
			return nil, errors.Errorf("unexpected signing method %s", parsed.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(services.ErrInvalidToken, err.Error())
	}
	if len(claims.Id) == 0 {
		return nil, errors.Wrap(services.ErrInvalidToken, "token has no session id")
	}

	session, err := a.sessionService.GetSession(ctx, claims.Id)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrNotFound, services.ErrSessionExpired, services.ErrInvalidID:
			return nil, errors.Wrap(services.ErrInvalidToken, err.Error())
		default:
			return nil, errors.Wrap(err, "could not get session")
		}
	}
	if session.Email != claims.Subject {
		return nil, errors.Wrap(services.ErrInvalidToken, "token subject does not match session")
	}

	return session, nil
}

func (a *authorizer) WithAuthMiddleware(router RouterResource, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := router.GetAuthToken(ctx)
		if len(token) == 0 {
			router.HandleUnauthorized(ctx)
			return
		}

		session, err := a.GetSessionFromToken(ctx.Request.Context(), token)
		if err != nil {
			if errors.Cause(err) == services.ErrInvalidToken {
				a.logger.Debug("invalid session token", zap.Error(err))
			} else {
				a.logger.Error("could not verify session token", zap.Error(err))
			}
			router.HandleUnauthorized(ctx)
			return
		}

		SetSession(ctx, *session)
		handler(ctx)
	}
}

// RequireRoles wraps handler so that it is only called when the session stored by
// WithAuthMiddleware has at least one of roles. ADMIN satisfies every role.
func RequireRoles(router RouterResource, handler gin.HandlerFunc, roles ...role.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := SessionFromContext(ctx)
		if !ok {
			router.HandleUnauthorized(ctx)
			return
		}
		if !role.HasAny(session.Roles, roles...) {
			router.HandleForbidden(ctx)
			return
		}

		handler(ctx)
	}
}
